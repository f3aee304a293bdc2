package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ModeOnce   = "once"
	ModeServer = "server"

	DefaultBaseURL = "https://webscraper.io/test-sites/e-commerce/more/"
)

type FailurePolicy string

const (
	// FailureAbort stops the whole run at the first failing category.
	FailureAbort FailurePolicy = "abort"
	// FailureIsolate records the failing category and moves on to the next one.
	FailureIsolate FailurePolicy = "isolate"
)

type AppEnv struct {
	AppHost string
	AppPort string
	Mode    string
}

// Selectors locate every element the scraper touches on the target site.
type Selectors struct {
	AcceptCookies string
	CategoryLinks string
	LoadMore      string
	Product       ProductSelectors
}

type ProductSelectors struct {
	Item        string
	Title       string
	Description string
	Price       string
	RatingStar  string
	ReviewCount string
}

type ScraperEnv struct {
	BaseURL           string
	CategoryOffset    int
	OutputDir         string
	MaxLoadMoreClicks int
	LoadMoreWait      time.Duration
	NavigationTimeout time.Duration
	RunTimeout        time.Duration
	Headless          bool
	FailurePolicy     FailurePolicy
	Progress          bool
	Selectors         Selectors
}

type RabbitMqEnv struct {
	URL          string
	RequestQueue string
	ResultQueue  string
}

type LogEnv struct {
	Level  string
	Format string
}

type EnvConfig struct {
	App      *AppEnv
	Scraper  *ScraperEnv
	RabbitMq *RabbitMqEnv
	Log      *LogEnv
}

func DefaultSelectors() Selectors {
	return Selectors{
		AcceptCookies: ".acceptCookies",
		CategoryLinks: ".nav-item > .nav-link",
		LoadMore:      ".ecomerce-items-scroll-more",
		Product: ProductSelectors{
			Item:        ".thumbnail",
			Title:       ".title",
			Description: ".description",
			Price:       ".price",
			RatingStar:  ".ws-icon-star",
			ReviewCount: ".review-count",
		},
	}
}

// NewEnvConfig reads the process environment. Call godotenv.Load first if a
// .env file should be honoured.
func NewEnvConfig() (*EnvConfig, error) {
	p := &envParser{}
	envConfig := &EnvConfig{
		App: &AppEnv{
			AppHost: os.Getenv("GATEWAY_APP_HOST"),
			AppPort: p.str("GATEWAY_APP_PORT", "8080"),
			Mode:    p.str("APP_MODE", ModeOnce),
		},
		Scraper: &ScraperEnv{
			BaseURL:           p.str("SCRAPER_BASE_URL", DefaultBaseURL),
			CategoryOffset:    p.int("SCRAPER_CATEGORY_OFFSET", 6),
			OutputDir:         p.str("SCRAPER_OUTPUT_DIR", "."),
			MaxLoadMoreClicks: p.int("SCRAPER_MAX_LOAD_MORE_CLICKS", 200),
			LoadMoreWait:      p.duration("SCRAPER_LOAD_MORE_WAIT", 10*time.Second),
			NavigationTimeout: p.duration("SCRAPER_NAVIGATION_TIMEOUT", 30*time.Second),
			RunTimeout:        p.duration("SCRAPER_RUN_TIMEOUT", 0),
			Headless:          p.bool("SCRAPER_HEADLESS", true),
			FailurePolicy:     FailurePolicy(p.str("SCRAPER_FAILURE_POLICY", string(FailureAbort))),
			Progress:          p.bool("SCRAPER_PROGRESS", true),
			Selectors:         DefaultSelectors(),
		},
		RabbitMq: &RabbitMqEnv{
			URL:          os.Getenv("AMQP_SERVER_URL"),
			RequestQueue: p.str("RABBITMQ_REQUEST_QUEUE", "ScrapeRequest Queue"),
			ResultQueue:  p.str("RABBITMQ_RESULT_QUEUE", "ScrapeResult Queue"),
		},
		Log: &LogEnv{
			Level:  p.str("LOG_LEVEL", "info"),
			Format: p.str("LOG_FORMAT", "text"),
		},
	}
	if p.err != nil {
		return nil, p.err
	}
	if err := envConfig.validate(); err != nil {
		return nil, err
	}
	return envConfig, nil
}

// Enabled reports whether a RabbitMQ broker was configured.
func (env *RabbitMqEnv) Enabled() bool {
	return env != nil && env.URL != ""
}

func (envConfig *EnvConfig) validate() error {
	switch envConfig.App.Mode {
	case ModeOnce, ModeServer:
	default:
		return fmt.Errorf("invalid APP_MODE %q: want %q or %q", envConfig.App.Mode, ModeOnce, ModeServer)
	}
	s := envConfig.Scraper
	switch s.FailurePolicy {
	case FailureAbort, FailureIsolate:
	default:
		return fmt.Errorf("invalid SCRAPER_FAILURE_POLICY %q: want %q or %q", s.FailurePolicy, FailureAbort, FailureIsolate)
	}
	if s.CategoryOffset < 0 {
		return fmt.Errorf("SCRAPER_CATEGORY_OFFSET must not be negative, got %d", s.CategoryOffset)
	}
	if s.MaxLoadMoreClicks <= 0 {
		return fmt.Errorf("SCRAPER_MAX_LOAD_MORE_CLICKS must be positive, got %d", s.MaxLoadMoreClicks)
	}
	if s.LoadMoreWait <= 0 || s.NavigationTimeout <= 0 {
		return fmt.Errorf("SCRAPER_LOAD_MORE_WAIT and SCRAPER_NAVIGATION_TIMEOUT must be positive")
	}
	if s.RunTimeout < 0 {
		return fmt.Errorf("SCRAPER_RUN_TIMEOUT must not be negative")
	}
	return nil
}

// envParser keeps the first conversion error so NewEnvConfig can read every
// variable in one struct literal.
type envParser struct {
	err error
}

func (p *envParser) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (p *envParser) int(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return n
}

func (p *envParser) bool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return b
}

func (p *envParser) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return d
}

func (p *envParser) fail(key, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
}
