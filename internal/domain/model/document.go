package model

import (
	"github.com/elastic/go-elasticsearch/v9/typedapi/types"
)

// Document 可写入搜索索引的文档
type Document interface {
	*PostingDoc
	GetID() string
	GetIndex() string
	GetTypeMapping() *types.TypeMapping
	GetEmbeddingString() string
	SetEmbedding(embedding []float32)
	GetEmbedding() []float32
}
