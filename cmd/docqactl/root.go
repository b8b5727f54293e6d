package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ashwinyue/docqa/internal/config"
)

var (
	cfgFile    string
	datasetDir string
)

// rootCmd docqactl 根命令
var rootCmd = &cobra.Command{
	Use:           "docqactl",
	Short:         "DocQA dataset pipeline tool",
	Long:          "docqactl runs the offline DocQA pipeline steps: scrape pages, chunk raw text, filter generated QA records and upload chunk files to the review API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&datasetDir, "dataset-dir", "", "dataset directory (overrides config)")

	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(chunkCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(uploadCmd)
}

// loadConfig 加载配置，命令行覆盖数据集目录
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if datasetDir != "" {
		cfg.Dataset.Dir = datasetDir
	}
	return cfg, nil
}

// datasetPath 拼接数据集目录下的文件路径
func datasetPath(cfg *config.Config, rel string) string {
	return filepath.Join(cfg.Dataset.Dir, rel)
}
