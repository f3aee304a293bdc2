package consumer

import (
	"context"
	"ecommerce-category-scraper/internal/controllers"
	"ecommerce-category-scraper/internal/rabbitmq/producer"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/streadway/amqp"
)

type ScrapingControllerConsumer struct {
	Controller controllers.Runner
	Queue      string
	Log        *slog.Logger
}

// ConsumeMessageStartScraping runs one scrape per "Start Scraping" message, one
// at a time, until ctx is done or the delivery channel closes.
func (scrapingControllerConsumer *ScrapingControllerConsumer) ConsumeMessageStartScraping(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-deliveries:
			if !ok {
				return errors.New("message channel closed")
			}
			scrapingControllerConsumer.handle(ctx, msg.Body)
		}
	}
}

func (scrapingControllerConsumer *ScrapingControllerConsumer) handle(ctx context.Context, body []byte) {
	log := scrapingControllerConsumer.Log.With("queue", scrapingControllerConsumer.Queue)

	var payload producer.Message
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Warn("Ignoring malformed message", "error", err)
		return
	}
	if payload.Message != producer.MessageStartScraping {
		log.Warn("Ignoring unexpected message", "message", payload.Message, "expected", producer.MessageStartScraping)
		return
	}

	log.Info("Scrape requested", "requested_by", payload.RequestedBy)
	result, err := scrapingControllerConsumer.Controller.Run(ctx)
	if err != nil {
		if errors.Is(err, controllers.ErrRunInProgress) {
			log.Warn("Scrape request dropped, a run is in progress")
			return
		}
		log.Error("Scrape request failed", "requested_by", payload.RequestedBy, "error", err)
		return
	}
	log.Info("Scrape request done", "exports", len(result.Exports))
}
