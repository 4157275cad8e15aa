package harvest

import (
	"fmt"
	"net/url"
	"strconv"
)

// PaginationState 只由抓取循环修改,Offset和Collected只增不减
type PaginationState struct {
	Offset    int
	Limit     int
	Collected int
	// 第一页响应之前为-1
	Total int
}

func NewPaginationState(limit int) *PaginationState {
	return &PaginationState{Limit: limit, Total: -1}
}

// CurrentPage 前端页码,从1开始
func (p *PaginationState) CurrentPage() int {
	return p.Offset/p.Limit + 1
}

// PageURL 改写模板URL中的limit/offset/current,其余查询参数(包括空值)原样保留
func (p *PaginationState) PageURL(template string) (string, error) {
	u, err := url.Parse(template)
	if err != nil {
		return "", fmt.Errorf("解析列表页URL失败: %w", err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("offset", strconv.Itoa(p.Offset))
	q.Set("current", strconv.Itoa(p.CurrentPage()))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// TotalString 日志里未知的总数显示为?
func (p *PaginationState) TotalString() string {
	if p.Total < 0 {
		return "?"
	}
	return strconv.Itoa(p.Total)
}
