package exporter

import (
	"ecommerce-category-scraper/internal/entity"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
)

// CSVExporter writes one CSV file per category into OutputDir.
type CSVExporter struct {
	OutputDir string
	// Out receives the human readable confirmation line. Nil disables it.
	Out io.Writer
	Log *slog.Logger
}

func NewCSVExporter(outputDir string, out io.Writer, log *slog.Logger) *CSVExporter {
	return &CSVExporter{
		OutputDir: outputDir,
		Out:       out,
		Log:       log,
	}
}

var pathSeparators = strings.NewReplacer("/", "_", "\\", "_")

// FileName maps a category link text to its output file name. Path
// separators become underscores so the file stays in the output directory.
func FileName(category string) string {
	return pathSeparators.Replace(strings.ToLower(strings.TrimSpace(category))) + ".csv"
}

// Write replaces <category>.csv with a header row and one row per product.
// The rows go to a temp file first so a failure never leaves a partial file.
func (e *CSVExporter) Write(category string, products []entity.Product) (entity.CategoryExport, error) {
	name := FileName(category)
	path := filepath.Join(e.OutputDir, name)

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return entity.CategoryExport{}, fmt.Errorf("failed to create output directory %s: %w", e.OutputDir, err)
	}
	tmp, err := os.CreateTemp(e.OutputDir, "."+name+".*.tmp")
	if err != nil {
		return entity.CategoryExport{}, fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if products == nil {
		products = []entity.Product{}
	}
	if err := gocsv.Marshal(&products, tmp); err != nil {
		return entity.CategoryExport{}, fmt.Errorf("failed to write CSV %s: %w", name, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return entity.CategoryExport{}, fmt.Errorf("failed to chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return entity.CategoryExport{}, fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return entity.CategoryExport{}, fmt.Errorf("failed to move CSV into %s: %w", path, err)
	}
	committed = true

	if e.Out != nil {
		fmt.Fprintf(e.Out, "File '%s' was successfully created\n", name)
	}
	if e.Log != nil {
		e.Log.Info("Successfully exported products to CSV.",
			"category", category,
			"file", path,
			"count", len(products),
		)
	}
	return entity.CategoryExport{
		Category: category,
		File:     path,
		Products: len(products),
	}, nil
}
