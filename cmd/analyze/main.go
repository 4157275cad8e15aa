// Command analyze reports how many harvested postings mention each
// technology keyword.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/LouYuanbo1/campusjobs/internal/config"
	"github.com/LouYuanbo1/campusjobs/internal/logging"
	"github.com/LouYuanbo1/campusjobs/internal/service/analyze"
	"github.com/spf13/cobra"
)

var (
	corpusDir string
	workers   int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:          "analyze",
	Short:        "统计岗位文档中的技术关键词",
	SilenceUsage: true,
	RunE:         runAnalyze,
}

func init() {
	rootCmd.Flags().StringVarP(&corpusDir, "dir", "d", config.DefaultOutputDir, "岗位文档目录")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", analyze.DefaultWorkers, "并发读取文件数")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	level := "info"
	if verbose {
		level = "debug"
	}
	logger := logging.New(os.Stderr, level, false)
	slog.SetDefault(logger)

	docs, err := analyze.LoadCorpus(cmd.Context(), corpusDir, workers, logger)
	if err != nil {
		return err
	}
	logger.Debug("语料加载完成", "dir", corpusDir, "documents", len(docs))

	return analyze.WriteReport(cmd.OutOrStdout(), analyze.Aggregate(docs))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
