package cmd

import (
	"fmt"
	"log"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type lookupResponse struct {
	Activities   []map[string]string `json:"activities"`
	Certificates []map[string]string `json:"certificates"`
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <fullName> <citizenId>",
	Short: "Looks up a volunteer's activity and certificate rows.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var result lookupResponse
		res, err := client.R().
			SetContext(cmd.Context()).
			SetBody(map[string]string{
				"fullName":  args[0],
				"citizenId": args[1],
			}).
			SetResult(&result).
			Post(fmt.Sprintf("%s/lookup", baseUrl))
		if err != nil {
			log.Fatal(err)
		}
		if res.IsError() {
			log.Fatalf("%s: %s", res.Status(), res.String())
		}

		renderRows("Activities", result.Activities)
		renderRows("Certificates", result.Certificates)
	},
}

func renderRows(title string, rows []map[string]string) {
	fmt.Println(title)
	if len(rows) == 0 {
		fmt.Println("  (none)")
		return
	}

	headers := make([]string, 0, len(rows[0]))
	for h := range rows[0] {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	t := newTable()
	headerRow := table.Row{}
	for _, h := range headers {
		headerRow = append(headerRow, h)
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		r := make(table.Row, 0, len(headers))
		for _, h := range headers {
			r = append(r, row[h])
		}
		t.AppendRow(r)
	}
	t.Render()
}
