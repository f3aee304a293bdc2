package controllers

import (
	"context"
	"ecommerce-category-scraper/internal/config"
	"ecommerce-category-scraper/internal/entity"
	"time"
)

// Page is the browser tab the scraper drives. Implementations block until the
// browser has answered.
type Page interface {
	Navigate(ctx context.Context, url string) error
	// ClickIfPresent clicks the first element matching selector when it is
	// actionable and reports whether it did.
	ClickIfPresent(ctx context.Context, selector string) (bool, error)
	// LinkTexts returns the trimmed visible text of every match in DOM order.
	LinkTexts(ctx context.Context, selector string) ([]string, error)
	// MoveAndClickLink moves the pointer to the first match at index >= from
	// whose text equals text, clicks it and waits for the navigation. It
	// reports false when no such link exists.
	MoveAndClickLink(ctx context.Context, selector string, from int, text string) (bool, error)
	// Actionable reports whether the first match is present, displayed and enabled.
	Actionable(ctx context.Context, selector string) (bool, error)
	Click(ctx context.Context, selector string) error
	Count(ctx context.Context, selector string) (int, error)
	// WaitSettled waits up to timeout until more than before items match
	// itemSelector or control stops being actionable.
	WaitSettled(ctx context.Context, itemSelector string, before int, control string, timeout time.Duration) (bool, error)
	ReadProducts(ctx context.Context, sel config.ProductSelectors) ([]entity.RawProduct, error)
	Close() error
}

type PageOpener func(ctx context.Context) (Page, error)
