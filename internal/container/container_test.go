package container

import (
	"ecommerce-category-scraper/internal/config"
	"testing"
)

func TestNewContainer(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APP_MODE", "once")
	t.Setenv("AMQP_SERVER_URL", "")
	t.Setenv("SCRAPER_OUTPUT_DIR", dir)
	t.Setenv("SCRAPER_FAILURE_POLICY", "isolate")

	c, err := NewContainer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if c.RabbitMq != nil {
		t.Error("expected no RabbitMQ connection without AMQP_SERVER_URL")
	}
	sc := c.Controller.ScrapingController
	if sc.Publisher != nil {
		t.Error("expected nil publisher when messaging is disabled")
	}
	if c.Controller.MainController.Producer != nil {
		t.Error("expected nil request producer when messaging is disabled")
	}
	if sc.Env.OutputDir != dir {
		t.Errorf("expected output dir %q, got %q", dir, sc.Env.OutputDir)
	}
	if sc.Env.FailurePolicy != config.FailureIsolate {
		t.Errorf("expected isolate policy, got %q", sc.Env.FailurePolicy)
	}
}

func TestNewContainer_InvalidEnv(t *testing.T) {
	t.Setenv("AMQP_SERVER_URL", "")
	t.Setenv("LOG_LEVEL", "chatty")

	if _, err := NewContainer(); err == nil {
		t.Error("expected error for invalid LOG_LEVEL")
	}
}
