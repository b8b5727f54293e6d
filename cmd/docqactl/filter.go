package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashwinyue/docqa/internal/dataset"
	"github.com/ashwinyue/docqa/internal/service/qafilter"
)

// filterCmd 校验自动生成的 QA 记录，通过的原样写入过滤集
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Validate autogenerated QA records and write the filtered set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		lines, err := dataset.ReadLines(datasetPath(cfg, dataset.AutogenFile))
		if err != nil {
			return err
		}

		f := qafilter.New()
		var kept []string
		for _, line := range lines {
			if f.AcceptLine([]byte(line)) {
				kept = append(kept, line)
			}
		}

		out := datasetPath(cfg, dataset.FilteredFile)
		if err := dataset.WriteLines(out, kept); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "kept %d\n", len(kept))
		return nil
	},
}
