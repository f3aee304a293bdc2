package browser

import (
	"context"
	"ecommerce-category-scraper/internal/config"
	"ecommerce-category-scraper/internal/entity"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

var blockedURLs = []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.webp", "*.svg", "*.woff", "*.woff2", "*.ttf"}

// Session is one headless Chrome tab owned by a single scrape.
type Session struct {
	browserCtx        context.Context
	cancelBrowser     context.CancelFunc
	cancelAlloc       context.CancelFunc
	navigationTimeout time.Duration
	log               *slog.Logger
	closeOnce         sync.Once
}

// Open starts Chrome and returns a ready tab. The caller must Close it.
func Open(ctx context.Context, env *config.ScraperEnv, log *slog.Logger) (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.WindowSize(1920, 1080),
		chromedp.Flag("disable-plugins", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("blink-settings", "imagesEnabled=false"),
	)
	if !env.Headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	// chromedp reports unknown CDP events as errors; they are harmless.
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...), "source", "chromedp")
		}),
		chromedp.WithErrorf(func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...), "source", "chromedp")
		}),
	)

	if err := chromedp.Run(browserCtx,
		network.Enable(),
		network.SetBlockedURLS(blockedURLs),
	); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	log.Debug("Browser started", "headless", env.Headless)
	return &Session{
		browserCtx:        browserCtx,
		cancelBrowser:     cancelBrowser,
		cancelAlloc:       cancelAlloc,
		navigationTimeout: env.NavigationTimeout,
		log:               log,
	}, nil
}

// Close shuts the browser down. It is safe to call more than once.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = chromedp.Cancel(s.browserCtx)
		s.cancelBrowser()
		s.cancelAlloc()
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	})
	return err
}

// run executes actions in the tab, aborting early when ctx is done.
func (s *Session) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(s.browserCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	return s.run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

func (s *Session) ClickIfPresent(ctx context.Context, selector string) (bool, error) {
	ok, err := s.Actionable(ctx, selector)
	if err != nil || !ok {
		return false, err
	}
	if err := s.Click(ctx, selector); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) LinkTexts(ctx context.Context, selector string) ([]string, error) {
	var texts []string
	if err := s.run(ctx, chromedp.Evaluate(linkTextsScript(selector), &texts)); err != nil {
		return nil, err
	}
	return texts, nil
}

func (s *Session) MoveAndClickLink(ctx context.Context, selector string, from int, text string) (bool, error) {
	var target linkTarget
	var nodes []*cdp.Node
	err := s.run(ctx,
		chromedp.Evaluate(findLinkScript(selector, from, text), &target),
		chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0)),
	)
	if err != nil {
		return false, err
	}
	if target.Index < 0 || target.Index >= len(nodes) {
		return false, nil
	}

	// MouseClickNode scrolls the link into view, moves the pointer onto it and
	// presses; the site only navigates on real pointer events.
	if err := s.run(ctx, chromedp.MouseClickNode(nodes[target.Index])); err != nil {
		return false, fmt.Errorf("failed to click link %q: %w", text, err)
	}
	if target.Href != "" && target.Href != target.Location {
		var done bool
		err := s.run(ctx, chromedp.Poll(navigatedScript(target.Location), &done,
			chromedp.WithPollingTimeout(s.navigationTimeout),
		))
		if err != nil {
			return false, fmt.Errorf("failed waiting for %s: %w", target.Href, err)
		}
	}
	if err := s.run(ctx, chromedp.WaitReady("body", chromedp.ByQuery)); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) Actionable(ctx context.Context, selector string) (bool, error) {
	var ok bool
	if err := s.run(ctx, chromedp.Evaluate(actionableScript(selector), &ok)); err != nil {
		return false, err
	}
	return ok, nil
}

func (s *Session) Click(ctx context.Context, selector string) error {
	var nodes []*cdp.Node
	if err := s.run(ctx, chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0))); err != nil {
		return err
	}
	if len(nodes) == 0 {
		return fmt.Errorf("no element matches %s", selector)
	}
	return s.run(ctx, chromedp.MouseClickNode(nodes[0]))
}

func (s *Session) Count(ctx context.Context, selector string) (int, error) {
	var n int
	if err := s.run(ctx, chromedp.Evaluate(countScript(selector), &n)); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Session) WaitSettled(ctx context.Context, itemSelector string, before int, control string, timeout time.Duration) (bool, error) {
	var done bool
	err := s.run(ctx, chromedp.Poll(settledScript(itemSelector, before, control), &done,
		chromedp.WithPollingTimeout(timeout),
	))
	if errors.Is(err, chromedp.ErrPollingTimeout) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) ReadProducts(ctx context.Context, sel config.ProductSelectors) ([]entity.RawProduct, error) {
	var raws []entity.RawProduct
	if err := s.run(ctx, chromedp.Evaluate(productsScript(sel), &raws)); err != nil {
		return nil, err
	}
	return raws, nil
}
