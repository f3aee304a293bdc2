package main

import (
	"context"
	"ecommerce-category-scraper/internal/container"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// @title E-commerce Category Scraper API
// @version 1.0
// @description Runs the category scraper and reports the CSV files it wrote.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run keeps every deferred cleanup ahead of os.Exit.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.NewContainer()
	if err != nil {
		return err
	}
	defer c.Close()

	c.Log.Info("App Started", "mode", c.Env.App.Mode)
	if err := c.Start(ctx); err != nil {
		return err
	}
	c.Log.Info("App finished")
	return nil
}
