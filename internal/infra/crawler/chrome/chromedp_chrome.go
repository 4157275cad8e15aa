package chrome

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/LouYuanbo1/campusjobs/internal/config"
	"github.com/LouYuanbo1/campusjobs/internal/infra/crawler/types"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

type chromedpCrawler struct {
	logger        *slog.Logger
	allocCtxFuc   context.CancelFunc
	pageCtx       context.Context
	pageCtxFuc    context.CancelFunc
	timeoutCtxFuc context.CancelFunc
}

// pendingResponse 已收到响应头、等待加载完成的请求
type pendingResponse struct {
	url    string
	status int
}

func InitChromedpCrawler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ChromeCrawler, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Chromedp.Headless),
		chromedp.Flag("incognito", cfg.Chromedp.Incognito),
		chromedp.Flag("disable-dev-shm-usage", cfg.Chromedp.DisableDevShmUsage),
		chromedp.Flag("no-sandbox", cfg.Chromedp.NoSandbox),
	)
	if cfg.Chromedp.DisableBlinkFeatures != "" {
		opts = append(opts, chromedp.Flag("disable-blink-features", cfg.Chromedp.DisableBlinkFeatures))
	}
	if cfg.Chromedp.UserDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(cfg.Chromedp.UserDataDir))
	}
	if cfg.Chromedp.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.Chromedp.UserAgent))
	}

	// 生命周期为0时不限制
	var timeoutCtx context.Context
	var cancelTimeout context.CancelFunc
	if cfg.Chromedp.LifeTime > 0 {
		timeoutCtx, cancelTimeout = context.WithTimeout(ctx, time.Duration(cfg.Chromedp.LifeTime)*time.Second)
	} else {
		timeoutCtx, cancelTimeout = context.WithCancel(ctx)
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(timeoutCtx, opts...)
	pageCtx, cancelPage := chromedp.NewContext(allocCtx)

	cc := &chromedpCrawler{
		logger:        logger,
		allocCtxFuc:   cancelAlloc,
		pageCtx:       pageCtx,
		pageCtxFuc:    cancelPage,
		timeoutCtxFuc: cancelTimeout,
	}
	// 开启网络监听,同时启动浏览器
	if err := chromedp.Run(pageCtx, network.Enable()); err != nil {
		cc.Close()
		return nil, fmt.Errorf("启动浏览器失败: %w", err)
	}
	return cc, nil
}

func (cc *chromedpCrawler) Close() {
	cc.pageCtxFuc()
	cc.allocCtxFuc()
	cc.timeoutCtxFuc()
}

func (cc *chromedpCrawler) ListenOnce(ctx context.Context, urlPattern string) (<-chan *types.NetworkResponse, func(), error) {
	// 取消listenCtx即注销监听
	listenCtx, cancel := context.WithCancel(cc.pageCtx)
	stop := context.AfterFunc(ctx, cancel)

	shot := newOneShot()
	var pending sync.Map
	chromedp.ListenTarget(listenCtx, func(ev any) {
		switch ev := ev.(type) {
		case *network.EventResponseReceived:
			resp := ev.Response
			if matchResponse(resp.URL, urlPattern, int(resp.Status)) {
				cc.logger.Debug("检测到目标API响应", "url", resp.URL, "requestID", ev.RequestID)
				pending.Store(ev.RequestID, pendingResponse{url: resp.URL, status: int(resp.Status)})
			}
		case *network.EventLoadingFinished:
			if v, ok := pending.LoadAndDelete(ev.RequestID); ok {
				go cc.fetchResponseBody(listenCtx, ev.RequestID, v.(pendingResponse), urlPattern, shot)
			}
		}
	})

	return shot.ch, release(func() {
		stop()
		cancel()
	}), nil
}

func (cc *chromedpCrawler) fetchResponseBody(ctx context.Context, requestID network.RequestID, pr pendingResponse, urlPattern string, shot *oneShot) {
	c := chromedp.FromContext(ctx)
	body, err := network.GetResponseBody(requestID).Do(cdp.WithExecutor(ctx, c.Target))
	if err != nil {
		cc.logger.Warn("获取响应体失败", "requestID", requestID, "url", pr.url, "error", err)
		return
	}
	delivered := shot.deliver(&types.NetworkResponse{
		Url:        pr.url,
		UrlPattern: urlPattern,
		StatusCode: pr.status,
		Body:       body,
	})
	if !delivered {
		cc.logger.Debug("本页已捕获响应,丢弃重复响应", "url", pr.url)
	}
}

func (cc *chromedpCrawler) Navigate(ctx context.Context, url string) error {
	runCtx, cancel := context.WithCancel(cc.pageCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, chromedp.Navigate(url)); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("导航失败: %w", err)
	}
	return nil
}
