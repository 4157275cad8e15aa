// Command harvest collects campus job postings page by page through a
// browser session and writes one markdown document per posting.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// 默认配置,--config 可以覆盖
//
//go:embed appconfig/appconfig.json
var appConfig []byte

var opts options

var rootCmd = &cobra.Command{
	Use:          "harvest",
	Short:        "采集字节跳动校招岗位",
	Long:         "逐页打开岗位列表,捕获每页的岗位api响应,整理成markdown文档保存到输出目录.",
	SilenceUsage: true,
	RunE:         runHarvest,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "配置文件路径(默认使用内置配置)")
	f.StringVar(&opts.driver, "driver", "", "浏览器驱动: chromedp 或 rod")
	f.StringVarP(&opts.outputDir, "out", "o", "", "输出目录")
	f.IntVar(&opts.limit, "limit", 0, "每页岗位数")
	f.StringVarP(&opts.url, "url", "u", "", "岗位列表页URL")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "输出调试日志")
	f.BoolVar(&opts.resetIndex, "reset-index", false, "开始前删除并重建搜索索引")
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
