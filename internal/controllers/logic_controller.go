package controllers

import (
	"ecommerce-category-scraper/internal/entity"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// LogicController turns raw product elements into typed records.
type LogicController struct {
	// Progress receives a per-product progress bar. Nil disables it.
	Progress io.Writer
}

func NewLogicController(progress io.Writer) *LogicController {
	logicController := &LogicController{
		Progress: progress,
	}
	return logicController
}

func (logicController *LogicController) ParseProduct(raw entity.RawProduct) (entity.Product, error) {
	if raw.Title == nil {
		return entity.Product{}, fmt.Errorf("%w: title", ErrMissingElement)
	}
	if raw.Description == nil {
		return entity.Product{}, fmt.Errorf("%w: description", ErrMissingElement)
	}
	if raw.Price == nil {
		return entity.Product{}, fmt.Errorf("%w: price", ErrMissingElement)
	}
	if raw.ReviewCount == nil {
		return entity.Product{}, fmt.Errorf("%w: review count", ErrMissingElement)
	}

	price, err := ParsePrice(*raw.Price)
	if err != nil {
		return entity.Product{}, err
	}
	reviews, err := ParseReviewCount(*raw.ReviewCount)
	if err != nil {
		return entity.Product{}, err
	}

	return entity.Product{
		Title:        strings.TrimSpace(*raw.Title),
		Description:  strings.TrimSpace(*raw.Description),
		Price:        price,
		Rating:       raw.Stars,
		NumOfReviews: reviews,
	}, nil
}

// ParseProducts parses every element in grid order. The first failure aborts
// the whole batch.
func (logicController *LogicController) ParseProducts(category string, raws []entity.RawProduct) ([]entity.Product, error) {
	var bar *progressbar.ProgressBar
	if logicController.Progress != nil {
		bar = progressbar.NewOptions(len(raws),
			progressbar.OptionSetWriter(logicController.Progress),
			progressbar.OptionSetDescription(category),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
	}

	products := make([]entity.Product, 0, len(raws))
	for i, raw := range raws {
		product, err := logicController.ParseProduct(raw)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}
		products = append(products, product)
		if bar != nil {
			bar.Add(1)
		}
	}
	return products, nil
}

// ParsePrice reads "$1,299.99" style text.
func ParsePrice(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q", ErrBadNumber, text)
	}
	return price, nil
}

// ParseReviewCount reads the leading integer of text such as "42 reviews".
func ParseReviewCount(text string) (int, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: review count %q", ErrBadNumber, text)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: review count %q", ErrBadNumber, text)
	}
	return n, nil
}
