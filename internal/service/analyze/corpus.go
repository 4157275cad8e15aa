package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 8

// LoadCorpus 读取dir下所有.md文件,按文件名排序.
// 读取失败的文件跳过,不计入总数;目录本身不存在时返回错误.
func LoadCorpus(ctx context.Context, dir string, workers int, logger *slog.Logger) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("读取语料目录失败: %w", err)
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}

	loaded := make([]*Document, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				logger.Warn("读取文档失败,已跳过", "file", name, "error", err)
				return nil
			}
			loaded[i] = &Document{Name: name, Content: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(loaded))
	for _, d := range loaded {
		if d != nil {
			docs = append(docs, *d)
		}
	}
	return docs, nil
}
