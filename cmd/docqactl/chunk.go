package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashwinyue/docqa/internal/dataset"
	"github.com/ashwinyue/docqa/internal/service/chunker"
	"github.com/ashwinyue/docqa/internal/service/scrape"
)

// chunkCmd 将 raw.jsonl 切分为 token 窗口并追加到 chunks.jsonl
var chunkCmd = &cobra.Command{
	Use:   "chunk",
	Short: "Chunk scraped raw records into token windows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tokenizer, err := chunker.NewTiktokenTokenizer()
		if err != nil {
			return err
		}
		ck, err := chunker.New(tokenizer,
			cfg.Chunker.MinTokens, cfg.Chunker.MaxTokens, cfg.Chunker.Stride)
		if err != nil {
			return err
		}

		records, err := dataset.ReadJSONL[*scrape.Record](datasetPath(cfg, dataset.RawFile))
		if err != nil {
			return err
		}

		out := datasetPath(cfg, dataset.ChunksFile)
		total := 0
		for _, rec := range records {
			if !rec.OK {
				continue
			}
			chunks := ck.Split(rec.Text, rec.URL)
			if len(chunks) == 0 {
				continue
			}
			if err := dataset.AppendJSONL(out, chunks); err != nil {
				return err
			}
			total += len(chunks)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "chunked %d\n", total)
		return nil
	},
}
