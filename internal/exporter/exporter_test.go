package exporter

import (
	"bytes"
	"ecommerce-category-scraper/internal/entity"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestFileName(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"Tablets", "tablets.csv"},
		{"  Laptops\n", "laptops.csv"},
		{"Touch", "touch.csv"},
		{"Tablets/Pads", "tablets_pads.csv"},
		{`Cases\Covers`, "cases_covers.csv"},
	}
	for _, tt := range tests {
		if got := FileName(tt.category); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestWrite_RowsInFieldOrder(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	e := NewCSVExporter(dir, &out, nil)

	products := []entity.Product{
		{Title: "Widget", Description: "A widget", Price: 12.5, Rating: 3, NumOfReviews: 42},
		{Title: "Gadget", Description: "A gadget, boxed", Price: 99.99, Rating: 5, NumOfReviews: 7},
	}

	export, err := e.Write("Tablets", products)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if export.File != filepath.Join(dir, "tablets.csv") {
		t.Errorf("unexpected file %q", export.File)
	}
	if export.Products != 2 {
		t.Errorf("expected 2 products, got %d", export.Products)
	}

	lines := readLines(t, export.File)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "title,description,price,rating,num_of_reviews" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "Widget,A widget,12.5,3,42" {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if lines[2] != `Gadget,"A gadget, boxed",99.99,5,7` {
		t.Errorf("unexpected second row %q", lines[2])
	}
	if out.String() != "File 'tablets.csv' was successfully created\n" {
		t.Errorf("unexpected confirmation %q", out.String())
	}
}

func TestWrite_EmptyWritesHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	e := NewCSVExporter(dir, nil, nil)

	export, err := e.Write("Touch", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := readLines(t, export.File)
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %q", lines)
	}
	if lines[0] != "title,description,price,rating,num_of_reviews" {
		t.Errorf("unexpected header %q", lines[0])
	}
}

func TestWrite_OverwritesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	e := NewCSVExporter(dir, nil, nil)

	if err := os.WriteFile(filepath.Join(dir, "phones.csv"), []byte("stale\nstale\nstale\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := e.Write("Phones", []entity.Product{{Title: "Nokia", Price: 24.99}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := readLines(t, filepath.Join(dir, "phones.csv"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines after overwrite, got %q", lines)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only phones.csv in output dir, got %d entries", len(entries))
	}
}

func TestWrite_NameWithPathSeparator(t *testing.T) {
	dir := t.TempDir()
	e := NewCSVExporter(dir, nil, nil)

	export, err := e.Write("Tablets/Pads", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(export.File) != "tablets_pads.csv" {
		t.Errorf("expected tablets_pads.csv, got %s", export.File)
	}
	if lines := readLines(t, filepath.Join(dir, "tablets_pads.csv")); len(lines) != 1 {
		t.Errorf("expected header only, got %q", lines)
	}
}
