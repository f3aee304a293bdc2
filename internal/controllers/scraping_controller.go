package controllers

import (
	"context"
	"ecommerce-category-scraper/internal/config"
	"ecommerce-category-scraper/internal/entity"
	"ecommerce-category-scraper/internal/model/response"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Publisher announces finished work. Publishing failures never fail a run.
type Publisher interface {
	PublishCategoryExported(export entity.CategoryExport) error
	PublishRunFinished(result *response.RunResponse) error
}

type CategoryWriter interface {
	Write(category string, products []entity.Product) (entity.CategoryExport, error)
}

type ScrapingController struct {
	Env       *config.ScraperEnv
	Logic     *LogicController
	Exporter  CategoryWriter
	Publisher Publisher
	OpenPage  PageOpener
	Log       *slog.Logger

	mu sync.Mutex
}

func NewScrapingController(env *config.ScraperEnv, logic *LogicController, exporter CategoryWriter, publisher Publisher, openPage PageOpener, log *slog.Logger) *ScrapingController {
	scrapingController := &ScrapingController{
		Env:       env,
		Logic:     logic,
		Exporter:  exporter,
		Publisher: publisher,
		OpenPage:  openPage,
		Log:       log,
	}
	return scrapingController
}

// Run scrapes every category of the target site into CSV files using one
// browser session, which is closed on every return path. Only one Run may be
// active at a time.
func (scrapingController *ScrapingController) Run(ctx context.Context) (*response.RunResponse, error) {
	if !scrapingController.mu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer scrapingController.mu.Unlock()

	env := scrapingController.Env
	if env.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, env.RunTimeout)
		defer cancel()
	}

	result := &response.RunResponse{StartedAt: time.Now()}
	log := scrapingController.Log.With("url", env.BaseURL)
	log.Info("Starting scrape", "policy", env.FailurePolicy, "offset", env.CategoryOffset)

	page, err := scrapingController.OpenPage(ctx)
	if err != nil {
		return scrapingController.finish(result, fmt.Errorf("failed to open browser session: %w", err))
	}
	defer func() {
		if err := page.Close(); err != nil {
			log.Warn("Failed to close browser session", "error", err)
		}
	}()

	if err := page.Navigate(ctx, env.BaseURL); err != nil {
		return scrapingController.finish(result, fmt.Errorf("failed to open %s: %w", env.BaseURL, err))
	}
	if err := scrapingController.acceptCookies(ctx, page); err != nil {
		return scrapingController.finish(result, err)
	}

	navigator := NewCategoryNavigator(page, env.Selectors.CategoryLinks, env.CategoryOffset)
	pager := NewPager(page, env.Selectors.LoadMore, env.Selectors.Product.Item, env.MaxLoadMoreClicks, env.LoadMoreWait, log)

	visited := make(map[string]bool)
	var failures []error
	for {
		name, ok, err := navigator.Next(ctx, visited)
		if err != nil {
			return scrapingController.finish(result, errors.Join(append(failures, err)...))
		}
		if !ok {
			break
		}
		visited[name] = true

		export, err := scrapingController.scrapeCategory(ctx, page, navigator, pager, name)
		if err != nil {
			err = fmt.Errorf("category %q: %w", name, err)
			result.Failures = append(result.Failures, entity.CategoryFailure{Category: name, Error: err.Error()})
			failures = append(failures, err)
			if env.FailurePolicy != config.FailureIsolate || ctx.Err() != nil {
				return scrapingController.finish(result, errors.Join(failures...))
			}
			log.Error("Category failed, continuing", "category", name, "error", err)
			continue
		}
		result.Exports = append(result.Exports, export)
		scrapingController.publishExport(export)
	}

	return scrapingController.finish(result, errors.Join(failures...))
}

func (scrapingController *ScrapingController) scrapeCategory(ctx context.Context, page Page, navigator *CategoryNavigator, pager *Pager, name string) (entity.CategoryExport, error) {
	log := scrapingController.Log.With("category", name)

	if err := navigator.OpenCategory(ctx, name); err != nil {
		return entity.CategoryExport{}, err
	}
	clicks, err := pager.ExhaustLoadMore(ctx)
	if err != nil {
		return entity.CategoryExport{}, err
	}
	raws, err := page.ReadProducts(ctx, scrapingController.Env.Selectors.Product)
	if err != nil {
		return entity.CategoryExport{}, fmt.Errorf("failed to read products: %w", err)
	}
	log.Info("Parsing products", "count", len(raws), "load_more_clicks", clicks)

	products, err := scrapingController.Logic.ParseProducts(name, raws)
	if err != nil {
		log.Error("Failed to parse product", "error", err)
		return entity.CategoryExport{}, err
	}
	export, err := scrapingController.Exporter.Write(name, products)
	if err != nil {
		return entity.CategoryExport{}, err
	}
	export.Clicks = clicks
	return export, nil
}

// acceptCookies dismisses the cookie banner. A missing banner is fine.
func (scrapingController *ScrapingController) acceptCookies(ctx context.Context, page Page) error {
	clicked, err := page.ClickIfPresent(ctx, scrapingController.Env.Selectors.AcceptCookies)
	if err != nil {
		return fmt.Errorf("failed to accept cookies: %w", err)
	}
	scrapingController.Log.Debug("Cookie banner", "dismissed", clicked)
	return nil
}

func (scrapingController *ScrapingController) publishExport(export entity.CategoryExport) {
	if scrapingController.Publisher == nil {
		return
	}
	if err := scrapingController.Publisher.PublishCategoryExported(export); err != nil {
		scrapingController.Log.Warn("Failed to publish category export", "category", export.Category, "error", err)
	}
}

func (scrapingController *ScrapingController) finish(result *response.RunResponse, err error) (*response.RunResponse, error) {
	result.FinishedAt = time.Now()
	log := scrapingController.Log.With(
		"exports", len(result.Exports),
		"failures", len(result.Failures),
		"duration", result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond),
	)
	if err != nil {
		log.Error("Scrape failed", "error", err)
	} else {
		log.Info("Scrape finished")
	}
	if scrapingController.Publisher != nil {
		if perr := scrapingController.Publisher.PublishRunFinished(result); perr != nil {
			scrapingController.Log.Warn("Failed to publish run result", "error", perr)
		}
	}
	return result, err
}
