package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultApiPattern         = "/api/v1/search/job/posts"
	DefaultLimit              = 50
	DefaultPageTimeoutSeconds = 15
	DefaultDriver             = "chromedp"
	DefaultOutputDir          = "data/bytedance"
)

// ParseConfig 解析json配置,补全默认值,读取环境变量覆盖项并校验
func ParseConfig(byteConfig []byte) (*Config, error) {
	var cfg Config
	err := json.Unmarshal(byteConfig, &cfg)
	if err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	cfg.applyDefaults()
	cfg.applyEnv()

	for _, dir := range []*string{&cfg.Chromedp.UserDataDir, &cfg.Rod.UserDataDir} {
		if *dir == "" {
			continue
		}
		absPath, err := filepath.Abs(*dir)
		if err != nil {
			return nil, err
		}
		*dir = absPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig 从文件读取配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}
	return ParseConfig(data)
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("配置校验失败: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Harvest.ApiPattern == "" {
		c.Harvest.ApiPattern = DefaultApiPattern
	}
	if c.Harvest.Limit == 0 {
		c.Harvest.Limit = DefaultLimit
	}
	if c.Harvest.PageTimeoutSeconds == 0 {
		c.Harvest.PageTimeoutSeconds = DefaultPageTimeoutSeconds
	}
	if c.Harvest.Driver == "" {
		c.Harvest.Driver = DefaultDriver
	}
	if c.Store.OutputDir == "" {
		c.Store.OutputDir = DefaultOutputDir
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// es的账号密码不写进配置文件,从环境变量(或.env)读取
func (c *Config) applyEnv() {
	if v := os.Getenv("ES_ADDRESS"); v != "" {
		c.Elasticsearch.Address = v
	}
	if v := os.Getenv("ES_USERNAME"); v != "" {
		c.Elasticsearch.Username = v
	}
	if v := os.Getenv("ES_PASSWORD"); v != "" {
		c.Elasticsearch.Password = v
	}
}
