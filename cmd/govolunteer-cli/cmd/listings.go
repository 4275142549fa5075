package cmd

import (
	"fmt"
	"log"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type article struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	ImageUrl string `json:"imageUrl"`
	Excerpt  string `json:"excerpt"`
}

type categorySection struct {
	Category string    `json:"category"`
	Articles []article `json:"articles"`
}

func init() {
	rootCmd.AddCommand(
		listingCmd("news", "Lists the scraped volunteer diary articles."),
		listingCmd("clubs", "Lists the scraped clubs, teams and groups."),
		listingCmd("chuong-trinh-chien-dich-du-an", "Lists the scraped programs, campaigns and projects."),
		listingCmd("skills", "Lists the scraped skill articles."),
		listingCmd("ideas", "Lists the scraped volunteer ideas."),
	)
}

func listingCmd(route, short string) *cobra.Command {
	return &cobra.Command{
		Use:   route,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			var sections []categorySection
			res, err := client.R().
				SetContext(cmd.Context()).
				SetResult(&sections).
				Get(fmt.Sprintf("%s/%s", baseUrl, route))
			if err != nil {
				log.Fatal(err)
			}
			if res.IsError() {
				log.Fatalf("%s: %s", res.Status(), res.String())
			}

			t := newTable()
			t.AppendHeader(table.Row{"Category", "Title", "Link"})
			for _, section := range sections {
				for _, a := range section.Articles {
					t.AppendRow(table.Row{section.Category, a.Title, a.Link})
				}
				t.AppendSeparator()
			}
			t.Render()
		},
	}
}
