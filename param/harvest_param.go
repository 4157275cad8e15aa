package param

import "time"

const DefaultPageTimeout = 15 * time.Second

// Harvest 一次分页抓取的参数
type Harvest struct {
	// 列表页URL,offset/limit/current会被逐页改写,其余查询参数原样保留
	Url string `json:"url"`
	// 目标api响应URL中包含的子串
	ApiPattern string `json:"api_pattern"`
	Limit      int    `json:"limit"`
	// 每页导航加等待api响应的最长时间,0表示DefaultPageTimeout
	PageTimeout time.Duration `json:"page_timeout"`
	// 翻页速率,<=0表示不限制
	PagesPerSecond float64 `json:"pages_per_second"`
}

func (h *Harvest) IsValid() bool {
	if h.Url == "" ||
		h.ApiPattern == "" ||
		h.Limit <= 0 ||
		h.PageTimeout < 0 ||
		h.PagesPerSecond < 0 {
		return false
	}
	return true
}

func (h *Harvest) Timeout() time.Duration {
	if h.PageTimeout == 0 {
		return DefaultPageTimeout
	}
	return h.PageTimeout
}
