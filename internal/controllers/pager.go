package controllers

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Pager clicks the "load more" control until every product is rendered.
type Pager struct {
	Page      Page
	Control   string
	Items     string
	MaxClicks int
	Wait      time.Duration
	Log       *slog.Logger
}

func NewPager(page Page, control, items string, maxClicks int, wait time.Duration, log *slog.Logger) *Pager {
	return &Pager{
		Page:      page,
		Control:   control,
		Items:     items,
		MaxClicks: maxClicks,
		Wait:      wait,
		Log:       log,
	}
}

// ExhaustLoadMore returns once the control is no longer actionable. A missing,
// hidden or disabled control is the normal end of pagination.
func (pager *Pager) ExhaustLoadMore(ctx context.Context) (int, error) {
	clicks := 0
	for {
		ok, err := pager.Page.Actionable(ctx, pager.Control)
		if err != nil {
			return clicks, fmt.Errorf("failed to check load more control: %w", err)
		}
		if !ok {
			return clicks, nil
		}
		if clicks >= pager.MaxClicks {
			return clicks, fmt.Errorf("%w (%d)", ErrPagerLimit, pager.MaxClicks)
		}

		before, err := pager.Page.Count(ctx, pager.Items)
		if err != nil {
			return clicks, fmt.Errorf("failed to count products: %w", err)
		}
		if err := pager.Page.Click(ctx, pager.Control); err != nil {
			// The control may have gone away between the check and the click.
			if still, cerr := pager.Page.Actionable(ctx, pager.Control); cerr == nil && !still {
				return clicks, nil
			}
			return clicks, fmt.Errorf("failed to click load more control: %w", err)
		}
		clicks++

		settled, err := pager.Page.WaitSettled(ctx, pager.Items, before, pager.Control, pager.Wait)
		if err != nil {
			return clicks, fmt.Errorf("failed to wait for products: %w", err)
		}
		if !settled {
			return clicks, fmt.Errorf("%w: click %d, %d products, waited %s", ErrPagerStalled, clicks, before, pager.Wait)
		}
		pager.Log.Debug("Loaded more products", "clicks", clicks, "before", before)
	}
}
