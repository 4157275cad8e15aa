package chrome

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/LouYuanbo1/campusjobs/internal/config"
	"github.com/LouYuanbo1/campusjobs/internal/infra/crawler/types"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

type rodCrawler struct {
	logger   *slog.Logger
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

func InitRodCrawler(cfg *config.Config, logger *slog.Logger) (ChromeCrawler, error) {
	l := launcher.New().
		Headless(cfg.Rod.Headless).
		Leakless(cfg.Rod.Leakless).
		NoSandbox(cfg.Rod.NoSandbox)
	if cfg.Rod.Bin != "" {
		l = l.Bin(cfg.Rod.Bin)
	}
	if cfg.Rod.UserDataDir != "" {
		l = l.UserDataDir(cfg.Rod.UserDataDir)
	}
	if cfg.Rod.DisableBlinkFeatures != "" {
		l = l.Set("disable-blink-features", cfg.Rod.DisableBlinkFeatures)
	}
	if cfg.Rod.Incognito {
		l = l.Set("incognito")
	}
	if cfg.Rod.DisableDevShmUsage {
		l = l.Set("disable-dev-shm-usage")
	}
	if cfg.Rod.UserAgent != "" {
		l = l.Set("user-agent", cfg.Rod.UserAgent)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("启动浏览器失败: %w", err)
	}
	logger.Debug("浏览器可以连接的URL", "url", controlURL)

	browser := rod.New().
		ControlURL(controlURL).
		Trace(cfg.Rod.Trace) // 开启 CDP 通信追踪
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("连接浏览器失败: %w", err)
	}

	page, err := stealth.Page(browser)
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("创建页面失败: %w", err)
	}

	return &rodCrawler{
		logger:   logger,
		launcher: l,
		browser:  browser,
		page:     page,
	}, nil
}

func (rc *rodCrawler) Close() {
	if err := rc.browser.Close(); err != nil {
		rc.logger.Warn("关闭浏览器失败", "error", err)
	}
	rc.launcher.Kill()
}

func (rc *rodCrawler) ListenOnce(ctx context.Context, urlPattern string) (<-chan *types.NetworkResponse, func(), error) {
	router := rc.page.HijackRequests()
	shot := newOneShot()

	err := router.Add("*"+urlPattern+"*", "", func(hijack *rod.Hijack) {
		if ctx.Err() != nil {
			hijack.ContinueRequest(&proto.FetchContinueRequest{})
			return
		}
		if err := hijack.LoadResponse(http.DefaultClient, true); err != nil {
			rc.logger.Warn("加载响应失败", "url", hijack.Request.URL().String(), "error", err)
			hijack.ContinueRequest(&proto.FetchContinueRequest{})
			return
		}
		url := hijack.Request.URL().String()
		status := hijack.Response.Payload().ResponseCode
		if !matchResponse(url, urlPattern, status) {
			return
		}
		if !shot.deliver(&types.NetworkResponse{
			Url:        url,
			UrlPattern: urlPattern,
			StatusCode: status,
			Body:       []byte(hijack.Response.Body()),
		}) {
			rc.logger.Debug("本页已捕获响应,丢弃重复响应", "url", url)
		}
	})
	if err != nil {
		return nil, nil, fmt.Errorf("注册网络监听失败: %w", err)
	}
	go router.Run()

	return shot.ch, release(func() {
		if err := router.Stop(); err != nil {
			rc.logger.Warn("注销网络监听失败", "error", err)
		}
	}), nil
}

func (rc *rodCrawler) Navigate(ctx context.Context, url string) error {
	if err := rc.page.Context(ctx).Navigate(url); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("导航失败: %w", err)
	}
	return nil
}
