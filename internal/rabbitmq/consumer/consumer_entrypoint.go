package consumer

import (
	"context"
	"ecommerce-category-scraper/internal/config"
	"ecommerce-category-scraper/internal/controllers"
	"fmt"
	"log/slog"
)

type ConsumerEntrypoint struct {
	ScrapingConsumer *ScrapingControllerConsumer
	RabbitMQ         *config.RabbitMqConfig
	Log              *slog.Logger
}

func NewConsumerEntrypointInit(rabbitMQConfig *config.RabbitMqConfig, runner controllers.Runner, env *config.RabbitMqEnv, log *slog.Logger) *ConsumerEntrypoint {
	return &ConsumerEntrypoint{
		ScrapingConsumer: &ScrapingControllerConsumer{Controller: runner, Queue: env.RequestQueue, Log: log},
		RabbitMQ:         rabbitMQConfig,
		Log:              log,
	}
}

// ConsumerEntrypointStart subscribes to the request queue and consumes it in
// the background until ctx is done.
func (consumerEntrypoint *ConsumerEntrypoint) ConsumerEntrypointStart(ctx context.Context) error {
	queueName := consumerEntrypoint.ScrapingConsumer.Queue
	msgs, err := consumerEntrypoint.RabbitMQ.Channel.Consume(
		queueName,                // Queue name
		"scrapeRequest Consumer", // Consumer tag
		true,                     // Auto-acknowledge
		false,                    // Exclusive
		false,                    // No-local
		false,                    // No-wait
		nil,                      // Args
	)
	if err != nil {
		return fmt.Errorf("failed to consume queue %q: %w", queueName, err)
	}
	go func() {
		if err := consumerEntrypoint.ScrapingConsumer.ConsumeMessageStartScraping(ctx, msgs); err != nil {
			consumerEntrypoint.Log.Error("Consumer stopped", "queue", queueName, "error", err)
		}
	}()
	return nil
}
