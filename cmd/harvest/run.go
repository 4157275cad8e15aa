package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/LouYuanbo1/campusjobs/internal/config"
	"github.com/LouYuanbo1/campusjobs/internal/domain/model"
	"github.com/LouYuanbo1/campusjobs/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/campusjobs/internal/infra/embedding"
	"github.com/LouYuanbo1/campusjobs/internal/infra/persistence"
	"github.com/LouYuanbo1/campusjobs/internal/infra/persistence/es"
	"github.com/LouYuanbo1/campusjobs/internal/infra/persistence/file"
	"github.com/LouYuanbo1/campusjobs/internal/logging"
	"github.com/LouYuanbo1/campusjobs/internal/normalize"
	"github.com/LouYuanbo1/campusjobs/internal/service/harvest"
	"github.com/LouYuanbo1/campusjobs/internal/textproc/htmltext"
	"github.com/spf13/cobra"
)

func runHarvest(cmd *cobra.Command, _ []string) error {
	cfg, err := opts.loadConfig(appConfig)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.NoColor)
	slog.SetDefault(logger)
	ctx := cmd.Context()

	fileStore, err := file.Open(cfg.Store.OutputDir)
	if err != nil {
		return err
	}
	defer fileStore.Close()
	stores := []persistence.Store{fileStore}

	var esClient es.TypedEsClient[*model.PostingDoc]
	if cfg.Elasticsearch.Enabled {
		esClient, err = setupIndex(ctx, cfg, logger)
		if err != nil {
			return err
		}
		var embedder embedding.Embedder
		if cfg.Embedder.Enabled {
			if embedder, err = embedding.InitEmbedder(ctx, cfg); err != nil {
				return err
			}
		}
		stores = append(stores, es.NewDocStore(esClient, embedder, logger))
	}

	crawler, err := newCrawler(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer crawler.Close()

	svc := harvest.InitHarvestService(
		crawler,
		normalize.NewNormalizer(htmltext.NewConverter()),
		persistence.Multi(stores...),
		logger,
	)
	result, runErr := svc.Run(ctx, harvestParam(cfg))
	if result != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Scraping completed. Total jobs collected: %d\n", result.Collected)
		fmt.Fprintf(cmd.OutOrStdout(), "Documents saved to %s\n", fileStore.Dir())
	}

	if esClient != nil {
		// 中止时也统计已经写入的部分
		if n, err := esClient.CountDocs(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("统计索引文档数失败", "error", err)
		} else {
			logger.Info("索引文档数", "count", n)
		}
	}
	return runErr
}

func setupIndex(ctx context.Context, cfg *config.Config, logger *slog.Logger) (es.TypedEsClient[*model.PostingDoc], error) {
	client, err := es.InitTypedEsClient[*model.PostingDoc](cfg, logger)
	if err != nil {
		return nil, err
	}
	if opts.resetIndex {
		if err := client.DeleteIndex(ctx); err != nil {
			return nil, err
		}
	}
	if err := client.CreateIndexWithMapping(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

func newCrawler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (chrome.ChromeCrawler, error) {
	switch cfg.Harvest.Driver {
	case "rod":
		return chrome.InitRodCrawler(cfg, logger)
	default:
		return chrome.InitChromedpCrawler(ctx, cfg, logger)
	}
}
