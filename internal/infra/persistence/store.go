// Package persistence holds the sinks a harvested posting is written to.
package persistence

import (
	"context"
	"errors"

	"github.com/LouYuanbo1/campusjobs/internal/domain/model"
)

// Store 按岗位id保存文档,同一id重复保存时覆盖
type Store interface {
	Save(ctx context.Context, doc *model.PostingDoc) error
}

type multiStore []Store

// Multi 依次写入所有store,任意一个失败都算失败
func Multi(stores ...Store) Store {
	if len(stores) == 1 {
		return stores[0]
	}
	return multiStore(stores)
}

func (m multiStore) Save(ctx context.Context, doc *model.PostingDoc) error {
	var errs []error
	for _, s := range m {
		if err := s.Save(ctx, doc); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
