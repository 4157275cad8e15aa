// Package file persists postings as one markdown file per id.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LouYuanbo1/campusjobs/internal/domain/model"
	"github.com/gofrs/flock"
)

const lockName = ".harvest.lock"

var ErrLocked = errors.New("输出目录正被另一个采集进程使用")

// Store 写入 {dir}/{id}.md,持有目录锁直到Close
type Store struct {
	dir  string
	lock *flock.Flock
}

// Open 创建输出目录并加锁,目录已被锁定时返回ErrLocked
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	lock := flock.New(filepath.Join(dir, lockName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("锁定输出目录失败: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, dir)
	}
	return &Store{dir: dir, lock: lock}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save 先写临时文件再重命名,读者不会看到写了一半的文档
func (s *Store) Save(_ context.Context, doc *model.PostingDoc) error {
	target := filepath.Join(s.dir, doc.Filename())
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(doc.Markdown()); err != nil {
		tmp.Close()
		return fmt.Errorf("写入 %s 失败: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", target, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("设置文件权限失败: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("保存 %s 失败: %w", target, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.lock.Unlock()
}
