package es

import (
	"context"
	"log/slog"

	"github.com/LouYuanbo1/campusjobs/internal/domain/model"
	"github.com/LouYuanbo1/campusjobs/internal/infra/embedding"
)

// DocStore 把文档写入搜索索引,配置了embedder时先生成向量
type DocStore[D model.Document] struct {
	client   TypedEsClient[D]
	embedder embedding.Embedder
	logger   *slog.Logger
}

// NewDocStore embedder可以为nil
func NewDocStore[D model.Document](client TypedEsClient[D], embedder embedding.Embedder, logger *slog.Logger) *DocStore[D] {
	return &DocStore[D]{client: client, embedder: embedder, logger: logger}
}

func (s *DocStore[D]) Save(ctx context.Context, doc D) error {
	if s.embedder != nil {
		vectors, err := s.embedder.Embed(ctx, []string{doc.GetEmbeddingString()})
		switch {
		case err != nil:
			// 向量失败不影响文档本身入库
			s.logger.Warn("生成向量失败,不带向量写入", "id", doc.GetID(), "error", err)
		case len(vectors) == 1:
			doc.SetEmbedding(vectors[0])
		}
	}
	return s.client.IndexDocWithID(ctx, doc)
}
