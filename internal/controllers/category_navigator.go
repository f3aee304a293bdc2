package controllers

import (
	"context"
	"fmt"
)

// CategoryNavigator finds the sidebar categories and opens them by name. Link
// handles never outlive a navigation: every open re-resolves the link.
type CategoryNavigator struct {
	Page     Page
	Selector string
	// Offset is the number of leading links that are not product categories.
	Offset int
}

func NewCategoryNavigator(page Page, selector string, offset int) *CategoryNavigator {
	return &CategoryNavigator{
		Page:     page,
		Selector: selector,
		Offset:   offset,
	}
}

// CategoryNames lists the categories currently in the sidebar, in DOM order.
func (navigator *CategoryNavigator) CategoryNames(ctx context.Context) ([]string, error) {
	texts, err := navigator.Page.LinkTexts(ctx, navigator.Selector)
	if err != nil {
		return nil, fmt.Errorf("failed to read category links: %w", err)
	}
	if len(texts) <= navigator.Offset {
		return nil, nil
	}
	names := make([]string, 0, len(texts)-navigator.Offset)
	for _, text := range texts[navigator.Offset:] {
		if text == "" {
			continue
		}
		names = append(names, text)
	}
	return names, nil
}

// Next returns the first category in the current sidebar that is not in
// visited. Sub-categories that appear after opening their parent are picked
// up in DOM order.
func (navigator *CategoryNavigator) Next(ctx context.Context, visited map[string]bool) (string, bool, error) {
	names, err := navigator.CategoryNames(ctx)
	if err != nil {
		return "", false, err
	}
	for _, name := range names {
		if !visited[name] {
			return name, true, nil
		}
	}
	return "", false, nil
}

func (navigator *CategoryNavigator) OpenCategory(ctx context.Context, name string) error {
	found, err := navigator.Page.MoveAndClickLink(ctx, navigator.Selector, navigator.Offset, name)
	if err != nil {
		return fmt.Errorf("failed to open category %q: %w", name, err)
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
	}
	return nil
}
