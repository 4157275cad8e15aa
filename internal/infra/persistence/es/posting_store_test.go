package es

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/LouYuanbo1/campusjobs/internal/domain/model"
	"github.com/LouYuanbo1/campusjobs/internal/infra/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	indexed map[string]*model.PostingDoc
	err     error
}

func (f *fakeClient) CreateIndexWithMapping(context.Context) error { return nil }
func (f *fakeClient) DeleteIndex(context.Context) error            { return nil }
func (f *fakeClient) CountDocs(context.Context) (int64, error)     { return int64(len(f.indexed)), nil }

func (f *fakeClient) GetDoc(_ context.Context, id string) (*model.PostingDoc, error) {
	return f.indexed[id], nil
}

func (f *fakeClient) IndexDocWithID(_ context.Context, doc *model.PostingDoc) error {
	if f.err != nil {
		return f.err
	}
	if f.indexed == nil {
		f.indexed = map[string]*model.PostingDoc{}
	}
	f.indexed[doc.GetID()] = doc
	return nil
}

type fakeEmbedder struct {
	err error
}

func (f fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, s := range texts {
		out[i] = []float32{float32(len(s))}
	}
	return out, nil
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var _ persistence.Store = (*DocStore[*model.PostingDoc])(nil)

func TestDocStore_EmbedsBeforeIndexing(t *testing.T) {
	client := &fakeClient{}
	s := NewDocStore[*model.PostingDoc](client, fakeEmbedder{}, discard)

	doc := &model.PostingDoc{ID: "1", Title: "abc"}
	require.NoError(t, s.Save(context.Background(), doc))

	got, err := client.GetDoc(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []float32{3}, got.GetEmbedding())
}

func TestDocStore_EmbeddingFailureStillIndexes(t *testing.T) {
	client := &fakeClient{}
	s := NewDocStore[*model.PostingDoc](client, fakeEmbedder{err: errors.New("ollama不可用")}, discard)

	require.NoError(t, s.Save(context.Background(), &model.PostingDoc{ID: "1"}))
	n, _ := client.CountDocs(context.Background())
	assert.EqualValues(t, 1, n)
	assert.Nil(t, client.indexed["1"].Embedding)
}

func TestDocStore_NoEmbedder(t *testing.T) {
	client := &fakeClient{}
	s := NewDocStore[*model.PostingDoc](client, nil, discard)

	require.NoError(t, s.Save(context.Background(), &model.PostingDoc{ID: "9"}))
	assert.Contains(t, client.indexed, "9")
}

func TestDocStore_IndexError(t *testing.T) {
	boom := errors.New("集群不可用")
	s := NewDocStore[*model.PostingDoc](&fakeClient{err: boom}, nil, discard)
	assert.ErrorIs(t, s.Save(context.Background(), &model.PostingDoc{ID: "1"}), boom)
}
