package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/eringen/blogseed"
)

func newGenerateCmd(c *cli) *cobra.Command {
	var (
		input         string
		sqlOut        string
		jsonOut       string
		tableName        string
		excerptLength int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the SQL seed script and JSON mirror from the CSV export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if input != "" {
				cfg.InputPath = input
			}
			if sqlOut != "" {
				cfg.SQLPath = sqlOut
			}
			if jsonOut != "" {
				cfg.JSONPath = jsonOut
			}
			if tableName != "" {
				cfg.Table = tableName
			}
			if excerptLength > 0 {
				cfg.ExcerptLength = excerptLength
			}

			res, err := blogseed.Run(cmd.Context(), cfg, c.logger)
			if err != nil {
				return err
			}
			printSummary(cmd, res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "CSV export to read")
	cmd.Flags().StringVar(&sqlOut, "sql-out", "", "SQL script to write")
	cmd.Flags().StringVar(&jsonOut, "json-out", "", "JSON mirror to write")
	cmd.Flags().StringVar(&tableName, "table", "", "target table name")
	cmd.Flags().IntVar(&excerptLength, "excerpt-length", 0, "excerpt length in characters")
	return cmd
}

func printSummary(cmd *cobra.Command, res blogseed.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"#", "Slug", "Category", "Length"})
	for _, p := range res.Posts {
		t.AppendRow(table.Row{p.Index, p.Slug, p.Category, utf8.RuneCountInString(p.Content)})
	}
	t.AppendFooter(table.Row{"", "Total", len(res.Posts), ""})
	t.SetStyle(table.StyleRounded)
	t.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "SQL:  %s\nJSON: %s\n", res.SQLPath, res.JSONPath)
}
