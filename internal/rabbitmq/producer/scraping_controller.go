package producer

import (
	"ecommerce-category-scraper/internal/entity"
	"ecommerce-category-scraper/internal/model/response"
)

type ScrapingControllerProducer struct {
	Channel Publisher
	Queue   string
}

func CreateNewScrapingControllerProducer(channel Publisher, resultQueue string) *ScrapingControllerProducer {
	scrapingControllerProducer := &ScrapingControllerProducer{
		Channel: channel,
		Queue:   resultQueue,
	}
	return scrapingControllerProducer
}

func (p *ScrapingControllerProducer) PublishCategoryExported(export entity.CategoryExport) error {
	return publish(p.Channel, p.Queue, MessageCategoryExported, "", export)
}

func (p *ScrapingControllerProducer) PublishRunFinished(result *response.RunResponse) error {
	return publish(p.Channel, p.Queue, MessageRunFinished, "", result)
}
