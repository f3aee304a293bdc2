package controllers

import (
	"bytes"
	"ecommerce-category-scraper/internal/entity"
	"errors"
	"strings"
	"testing"
)

func str(s string) *string { return &s }

func widget() entity.RawProduct {
	return entity.RawProduct{
		Title:       str("Widget"),
		Description: str("A widget"),
		Price:       str("$12.50"),
		Stars:       3,
		ReviewCount: str("42 reviews"),
	}
}

func TestParseProduct_Widget(t *testing.T) {
	l := NewLogicController(nil)

	got, err := l.ParseProduct(widget())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := entity.Product{Title: "Widget", Description: "A widget", Price: 12.50, Rating: 3, NumOfReviews: 42}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseProduct_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.RawProduct)
		wantErr error
		field   string
	}{
		{"missing title", func(r *entity.RawProduct) { r.Title = nil }, ErrMissingElement, "title"},
		{"missing description", func(r *entity.RawProduct) { r.Description = nil }, ErrMissingElement, "description"},
		{"missing price", func(r *entity.RawProduct) { r.Price = nil }, ErrMissingElement, "price"},
		{"missing reviews", func(r *entity.RawProduct) { r.ReviewCount = nil }, ErrMissingElement, "review count"},
		{"non numeric price", func(r *entity.RawProduct) { r.Price = str("$call us") }, ErrBadNumber, "price"},
		{"empty reviews", func(r *entity.RawProduct) { r.ReviewCount = str("  ") }, ErrBadNumber, "review count"},
		{"non numeric reviews", func(r *entity.RawProduct) { r.ReviewCount = str("many reviews") }, ErrBadNumber, "review count"},
	}

	l := NewLogicController(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := widget()
			tt.mutate(&raw)

			_, err := l.ParseProduct(raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error to name %q, got %v", tt.field, err)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$12.50", 12.5},
		{" $1,099.99 ", 1099.99},
		{"24.99", 24.99},
		{"$ 7", 7},
	}
	for _, tt := range tests {
		got, err := ParsePrice(tt.in)
		if err != nil {
			t.Errorf("ParsePrice(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseProducts_AbortsAtFailingIndex(t *testing.T) {
	l := NewLogicController(nil)
	broken := widget()
	broken.Price = nil

	products, err := l.ParseProducts("Tablets", []entity.RawProduct{widget(), widget(), broken, widget()})
	if !errors.Is(err, ErrMissingElement) {
		t.Fatalf("expected ErrMissingElement, got %v", err)
	}
	if !strings.Contains(err.Error(), "product 2") {
		t.Errorf("expected error to name product 2, got %v", err)
	}
	if products != nil {
		t.Errorf("expected no products on failure, got %d", len(products))
	}
}

func TestParseProducts_Progress(t *testing.T) {
	var progress bytes.Buffer
	l := NewLogicController(&progress)

	products, err := l.ParseProducts("Laptops", []entity.RawProduct{widget(), widget()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected 2 products, got %d", len(products))
	}
	if progress.Len() == 0 {
		t.Error("expected progress output")
	}
}
