package container

import (
	"context"
	"ecommerce-category-scraper/internal/browser"
	"ecommerce-category-scraper/internal/config"
	"ecommerce-category-scraper/internal/controllers"
	"ecommerce-category-scraper/internal/exporter"
	"ecommerce-category-scraper/internal/logger"
	"ecommerce-category-scraper/internal/rabbitmq/consumer"
	"ecommerce-category-scraper/internal/rabbitmq/producer"
	"ecommerce-category-scraper/internal/routes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

type Container struct {
	Env        *config.EnvConfig
	Log        *slog.Logger
	Controller *ControllerContainer
	RabbitMq   *config.RabbitMqConfig
	Route      *routes.Route
}

func NewContainer() (*Container, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	envConfig, err := config.NewEnvConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(envConfig.Log.Level, envConfig.Log.Format, os.Stderr)
	if err != nil {
		return nil, err
	}
	rabbitmqConfig, err := config.NewRabbitMqConfig(envConfig.RabbitMq)
	if err != nil {
		return nil, err
	}

	// Interfaces stay nil, not typed-nil, when messaging is off.
	var scrapingControllerProducer controllers.Publisher
	var mainControllerProducer controllers.RequestPublisher
	if rabbitmqConfig != nil {
		scrapingControllerProducer = producer.CreateNewScrapingControllerProducer(rabbitmqConfig.Channel, envConfig.RabbitMq.ResultQueue)
		mainControllerProducer = producer.CreateNewMainControllerProducer(rabbitmqConfig.Channel, envConfig.RabbitMq.RequestQueue)
	}

	var progress io.Writer
	if envConfig.Scraper.Progress {
		progress = os.Stderr
	}
	logicController := controllers.NewLogicController(progress)
	csvExporter := exporter.NewCSVExporter(envConfig.Scraper.OutputDir, os.Stdout, log)
	openPage := func(ctx context.Context) (controllers.Page, error) {
		session, err := browser.Open(ctx, envConfig.Scraper, log)
		if err != nil {
			return nil, err
		}
		return session, nil
	}
	scrapingController := controllers.NewScrapingController(envConfig.Scraper, logicController, csvExporter, scrapingControllerProducer, openPage, log)
	mainController := controllers.NewMainController(scrapingController, mainControllerProducer, log)

	container := &Container{
		Env:        envConfig,
		Log:        log,
		Controller: NewControllerContainer(logicController, mainController, scrapingController),
		RabbitMq:   rabbitmqConfig,
	}
	return container, nil
}

// Start runs one scrape, or serves HTTP and the request queue until ctx is
// done, depending on APP_MODE.
func (container *Container) Start(ctx context.Context) error {
	if container.Env.App.Mode != config.ModeServer {
		_, err := container.Controller.ScrapingController.Run(ctx)
		return err
	}

	if container.RabbitMq != nil {
		consumerEntrypoint := consumer.NewConsumerEntrypointInit(container.RabbitMq, container.Controller.ScrapingController, container.Env.RabbitMq, container.Log)
		if err := consumerEntrypoint.ConsumerEntrypointStart(ctx); err != nil {
			return err
		}
	}
	container.Route = routes.NewRoute(mux.NewRouter(), container.Controller.MainController, container.Log)
	addr := net.JoinHostPort(container.Env.App.AppHost, container.Env.App.AppPort)
	return container.Route.RunServer(ctx, addr)
}

func (container *Container) Close() error {
	return container.RabbitMq.Close()
}
