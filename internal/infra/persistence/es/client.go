package es

import (
	"context"

	"github.com/LouYuanbo1/campusjobs/internal/domain/model"
)

// TypedEsClient 索引由文档类型自己决定(GetIndex/GetTypeMapping)
type TypedEsClient[D model.Document] interface {
	CreateIndexWithMapping(ctx context.Context) error
	DeleteIndex(ctx context.Context) error
	IndexDocWithID(ctx context.Context, doc D) error
	GetDoc(ctx context.Context, id string) (D, error)
	CountDocs(ctx context.Context) (int64, error)
}
