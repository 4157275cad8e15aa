package embedding

import (
	"context"
	"fmt"
	"strconv"

	"github.com/LouYuanbo1/campusjobs/internal/config"
	"github.com/cloudwego/eino-ext/components/embedding/ollama"
)

type ollamaEmbedder struct {
	model *ollama.Embedder
}

// InitEmbedder 初始化ollama嵌入器
func InitEmbedder(ctx context.Context, cfg *config.Config) (Embedder, error) {
	model, err := ollama.NewEmbedder(ctx, &ollama.EmbeddingConfig{
		Model:   cfg.Embedder.Model,
		BaseURL: cfg.Embedder.Host + ":" + strconv.Itoa(cfg.Embedder.Port),
	})
	if err != nil {
		return nil, fmt.Errorf("初始化嵌入模型失败: %w", err)
	}
	return &ollamaEmbedder{model: model}, nil
}

func (e *ollamaEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, err := e.model.EmbedStrings(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("生成向量失败: %w", err)
	}
	return toFloat32(vectors), nil
}

// EmbedStrings返回float64,索引里的dense_vector按float32存
func toFloat32(vectors [][]float64) [][]float32 {
	out := make([][]float32, 0, len(vectors))
	for _, v := range vectors {
		f32 := make([]float32, len(v))
		for i, f := range v {
			f32[i] = float32(f)
		}
		out = append(out, f32)
	}
	return out
}
