package chrome

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/LouYuanbo1/campusjobs/internal/infra/crawler/types"
)

// ChromeCrawler 浏览器驱动,一次导航只捕获一个匹配的api响应
type ChromeCrawler interface {
	// ListenOnce 必须在Navigate之前调用.返回的通道最多收到一个响应,
	// release注销监听,可重复调用.
	ListenOnce(ctx context.Context, urlPattern string) (resp <-chan *types.NetworkResponse, release func(), err error)
	Navigate(ctx context.Context, url string) error
	Close()
}

// matchResponse URL包含pattern且状态码为200才算目标响应
func matchResponse(url, urlPattern string, status int) bool {
	return status == http.StatusOK && strings.Contains(url, urlPattern)
}

// oneShot 只投递第一个响应,后续响应直接丢弃
type oneShot struct {
	once sync.Once
	ch   chan *types.NetworkResponse
}

func newOneShot() *oneShot {
	return &oneShot{ch: make(chan *types.NetworkResponse, 1)}
}

func (o *oneShot) deliver(resp *types.NetworkResponse) bool {
	delivered := false
	o.once.Do(func() {
		o.ch <- resp
		delivered = true
	})
	return delivered
}

// release 把注销函数包装成可重复调用
func release(stop func()) func() {
	var once sync.Once
	return func() { once.Do(stop) }
}
