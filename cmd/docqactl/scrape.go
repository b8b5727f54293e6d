package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ashwinyue/docqa/internal/dataset"
	"github.com/ashwinyue/docqa/internal/service/scrape"
)

// scrapeCmd 抓取单个 URL 并追加到 raw.jsonl
var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape one page and append the raw record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		scraper := scrape.New(30 * time.Second)
		rec := scraper.Scrape(cmd.Context(), args[0])

		out := datasetPath(cfg, dataset.RawFile)
		if err := dataset.AppendJSONL(out, []*scrape.Record{rec}); err != nil {
			return err
		}

		if rec.OK {
			fmt.Fprintln(cmd.OutOrStdout(), "true ok")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "false %s\n", rec.Reason)
		}
		return nil
	},
}
