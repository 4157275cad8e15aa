package main

import (
	"time"

	"github.com/LouYuanbo1/campusjobs/internal/config"
	"github.com/LouYuanbo1/campusjobs/param"
)

type options struct {
	configPath string
	driver     string
	outputDir  string
	limit      int
	url        string
	verbose    bool
	resetIndex bool
}

// loadConfig 读取配置并应用命令行覆盖项
func (o *options) loadConfig(embedded []byte) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadConfig(o.configPath)
	} else {
		cfg, err = config.ParseConfig(embedded)
	}
	if err != nil {
		return nil, err
	}

	if o.driver != "" {
		cfg.Harvest.Driver = o.driver
	}
	if o.outputDir != "" {
		cfg.Store.OutputDir = o.outputDir
	}
	if o.limit != 0 {
		cfg.Harvest.Limit = o.limit
	}
	if o.url != "" {
		cfg.Harvest.Url = o.url
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func harvestParam(cfg *config.Config) *param.Harvest {
	return &param.Harvest{
		Url:            cfg.Harvest.Url,
		ApiPattern:     cfg.Harvest.ApiPattern,
		Limit:          cfg.Harvest.Limit,
		PageTimeout:    time.Duration(cfg.Harvest.PageTimeoutSeconds) * time.Second,
		PagesPerSecond: cfg.Harvest.PagesPerSecond,
	}
}
