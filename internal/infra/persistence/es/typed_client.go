package es

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/LouYuanbo1/campusjobs/internal/config"
	"github.com/LouYuanbo1/campusjobs/internal/domain/model"
	"github.com/elastic/go-elasticsearch/v9"
)

type typedEsClient[D model.Document] struct {
	client *elasticsearch.TypedClient
	logger *slog.Logger
	// 仅用于读取索引名和mapping,不存数据
	schemaDoc D
}

func InitTypedEsClient[D model.Document](cfg *config.Config, logger *slog.Logger) (TypedEsClient[D], error) {
	typedClient, err := elasticsearch.NewTypedClient(elasticsearch.Config{
		Username: cfg.Elasticsearch.Username,
		Password: cfg.Elasticsearch.Password,
		Addresses: []string{
			cfg.Elasticsearch.Address,
		},
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       90 * time.Second,
			// 跳过TLS验证（仅在开发环境中使用）
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("初始化Elasticsearch客户端失败: %w", err)
	}
	return &typedEsClient[D]{client: typedClient, logger: logger}, nil
}

func (tec *typedEsClient[D]) CreateIndexWithMapping(ctx context.Context) error {
	index := tec.schemaDoc.GetIndex()
	exists, err := tec.client.Indices.Exists(index).Do(ctx)
	if err != nil {
		return fmt.Errorf("检查索引 %s 是否存在失败: %w", index, err)
	}
	if exists {
		tec.logger.Debug("索引已存在,跳过创建", "index", index)
		return nil
	}

	if mapping := tec.schemaDoc.GetTypeMapping(); mapping == nil {
		_, err = tec.client.Indices.Create(index).Do(ctx)
	} else {
		_, err = tec.client.Indices.Create(index).Mappings(mapping).Do(ctx)
	}
	if err != nil {
		return fmt.Errorf("创建索引 %s 失败: %w", index, err)
	}
	tec.logger.Info("已创建索引", "index", index)
	return nil
}

func (tec *typedEsClient[D]) DeleteIndex(ctx context.Context) error {
	index := tec.schemaDoc.GetIndex()
	exists, err := tec.client.Indices.Exists(index).Do(ctx)
	if err != nil {
		return fmt.Errorf("检查索引 %s 是否存在失败: %w", index, err)
	}
	if !exists {
		return nil
	}
	if _, err := tec.client.Indices.Delete(index).Do(ctx); err != nil {
		return fmt.Errorf("删除索引 %s 失败: %w", index, err)
	}
	return nil
}

// IndexDocWithID 以文档id为键写入,重复写入即覆盖
func (tec *typedEsClient[D]) IndexDocWithID(ctx context.Context, doc D) error {
	_, err := tec.client.Index(tec.schemaDoc.GetIndex()).
		Id(doc.GetID()).
		Document(doc).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("写入文档 %s 失败: %w", doc.GetID(), err)
	}
	return nil
}

func (tec *typedEsClient[D]) GetDoc(ctx context.Context, id string) (D, error) {
	var zero D
	resp, err := tec.client.Get(tec.schemaDoc.GetIndex(), id).Do(ctx)
	if err != nil {
		return zero, fmt.Errorf("获取文档 %s 失败: %w", id, err)
	}
	if !resp.Found {
		return zero, nil
	}
	var doc D
	if err := json.Unmarshal(resp.Source_, &doc); err != nil {
		return zero, fmt.Errorf("解析文档 %s 失败: %w", id, err)
	}
	return doc, nil
}

func (tec *typedEsClient[D]) CountDocs(ctx context.Context) (int64, error) {
	resp, err := tec.client.Count().Index(tec.schemaDoc.GetIndex()).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("统计文档数失败: %w", err)
	}
	return resp.Count, nil
}
