package producer

type MainControllerProducer struct {
	Channel Publisher
	Queue   string
}

func CreateNewMainControllerProducer(channel Publisher, requestQueue string) *MainControllerProducer {
	mainControllerProducer := &MainControllerProducer{
		Channel: channel,
		Queue:   requestQueue,
	}
	return mainControllerProducer
}

// CreateMessageStartScraping asks a consumer to run one scrape.
func (p *MainControllerProducer) CreateMessageStartScraping(requestedBy string) error {
	return publish(p.Channel, p.Queue, MessageStartScraping, requestedBy, nil)
}
