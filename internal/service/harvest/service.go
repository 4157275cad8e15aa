// Package harvest drives the paginated fetch loop: one navigation per page,
// one captured api response per navigation, strictly sequential pages.
package harvest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/LouYuanbo1/campusjobs/internal/domain/entity"
	"github.com/LouYuanbo1/campusjobs/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/campusjobs/internal/infra/persistence"
	"github.com/LouYuanbo1/campusjobs/internal/normalize"
	"github.com/LouYuanbo1/campusjobs/param"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var (
	ErrPageTimeout  = errors.New("等待api响应超时")
	ErrInvalidParam = errors.New("无效的采集参数")
)

type State string

const (
	StateCompleted State = "completed"
	StateAborted   State = "aborted"
)

// Result 运行结束时的状态.中止时Reason为原因,已保存的文档不会回滚
type Result struct {
	State     State
	Reason    error
	Collected int
	// 未解析到总数时为-1
	Total int
	Pages int
}

type HarvestService interface {
	Run(ctx context.Context, params *param.Harvest) (*Result, error)
}

type harvestService struct {
	crawler    chrome.ChromeCrawler
	normalizer *normalize.Normalizer
	store      persistence.Store
	logger     *slog.Logger
}

func InitHarvestService(
	crawler chrome.ChromeCrawler,
	normalizer *normalize.Normalizer,
	store persistence.Store,
	logger *slog.Logger,
) HarvestService {
	return &harvestService{
		crawler:    crawler,
		normalizer: normalizer,
		store:      store,
		logger:     logger,
	}
}

// Run 从offset 0开始逐页抓取,直到空页或已收集数达到本页报告的总数.
// 超时、导航失败、响应无法解析时中止,同一offset不重试.
func (hs *harvestService) Run(ctx context.Context, params *param.Harvest) (*Result, error) {
	if params == nil || !params.IsValid() {
		return nil, ErrInvalidParam
	}
	logger := hs.logger.With("run", uuid.NewString())

	var limiter *rate.Limiter
	if params.PagesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(params.PagesPerSecond), 1)
	}

	state := NewPaginationState(params.Limit)
	pages := 0
	finish := func(reason error) (*Result, error) {
		result := &Result{
			State:     StateCompleted,
			Reason:    reason,
			Collected: state.Collected,
			Total:     state.Total,
			Pages:     pages,
		}
		if reason != nil {
			result.State = StateAborted
			logger.Error("采集中止", "offset", state.Offset, "collected", state.Collected, "error", reason)
			return result, reason
		}
		logger.Info("采集完成", "collected", state.Collected, "total", state.TotalString(), "pages", pages)
		return result, nil
	}

	logger.Info("开始采集", "url", params.Url, "limit", params.Limit)
	for {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return finish(err)
			}
		}

		logger.Info("导航到 offset",
			"offset", state.Offset,
			"current", state.CurrentPage(),
			"progress", fmt.Sprintf("%d/%s", state.Collected, state.TotalString()),
		)
		page, err := hs.fetchPage(ctx, params, state)
		if err != nil {
			return finish(err)
		}
		pages++

		if len(page.Items) == 0 {
			logger.Info("没有更多岗位")
			return finish(nil)
		}
		if state.Total < 0 {
			state.Total = 0
			if page.Count != nil {
				state.Total = *page.Count
			}
			logger.Info("岗位总数", "total", state.Total)
		}

		logger.Info("本页岗位", "count", len(page.Items))
		for i, item := range page.Items {
			id, err := hs.processItem(ctx, item)
			if err != nil {
				logger.Warn("处理岗位失败", "offset", state.Offset, "index", i, "id", id, "error", err)
				continue
			}
			state.Collected++
			logger.Debug("已保存岗位", "id", id)
		}

		state.Offset += state.Limit

		// 以本页报告的数量为准,总数可能在翻页过程中变化
		pageCount := state.Total
		if page.Count != nil {
			pageCount = *page.Count
		}
		if state.Collected >= pageCount {
			return finish(nil)
		}
	}
}

// fetchPage 监听只在本次导航期间有效,无论结果如何都会注销
func (hs *harvestService) fetchPage(ctx context.Context, params *param.Harvest, state *PaginationState) (*entity.JobPage, error) {
	pageURL, err := state.PageURL(params.Url)
	if err != nil {
		return nil, err
	}

	respCh, release, err := hs.crawler.ListenOnce(ctx, params.ApiPattern)
	if err != nil {
		return nil, err
	}
	defer release()

	pageCtx, cancel := context.WithTimeout(ctx, params.Timeout())
	defer cancel()

	if err := hs.crawler.Navigate(pageCtx, pageURL); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// 导航超时时响应可能已经到达,交给下面判断
		if !errors.Is(pageCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("导航到 %s 失败: %w", pageURL, err)
		}
	}

	select {
	case resp := <-respCh:
		return decodePage(resp.Body, state.Offset)
	case <-pageCtx.Done():
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		select {
		case resp := <-respCh:
			return decodePage(resp.Body, state.Offset)
		default:
		}
		return nil, fmt.Errorf("%w: offset %d (%s)", ErrPageTimeout, state.Offset, params.Timeout())
	}
}

func decodePage(body []byte, offset int) (*entity.JobPage, error) {
	page, err := entity.ParseJobPage(body)
	if err != nil {
		return nil, fmt.Errorf("offset %d 的响应无法解析: %w", offset, err)
	}
	return page, nil
}

// processItem 单条记录的错误和panic都只影响这一条
func (hs *harvestService) processItem(ctx context.Context, item json.RawMessage) (id string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("处理岗位时发生panic: %v", r)
		}
	}()

	doc, err := hs.normalizer.NormalizeRaw(item)
	if err != nil {
		return "", err
	}
	if err := hs.store.Save(ctx, doc); err != nil {
		return doc.ID, fmt.Errorf("保存岗位失败: %w", err)
	}
	return doc.ID, nil
}
