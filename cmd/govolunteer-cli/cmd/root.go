package cmd

import (
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var baseUrl string

var client = resty.New()

var rootCmd = &cobra.Command{
	Use:   "govolunteer-cli",
	Short: "govolunteer-cli is a terminal interface for the GoVolunteer aggregation API.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&baseUrl, "base-url", "http://localhost:8000",
		"Address of the running GoVolunteer API server.",
	)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
