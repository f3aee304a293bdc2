package producer

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

const (
	MessageStartScraping    = "Start Scraping"
	MessageCategoryExported = "Category Exported"
	MessageRunFinished      = "Run Finished"
)

type Message struct {
	Message     string          `json:"message"`
	RequestedBy string          `json:"requested_by,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// Publisher is the part of *amqp.Channel the producers use.
type Publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

func publish(channel Publisher, queueName, message, requestedBy string, data any) error {
	payload := Message{
		Message:     message,
		RequestedBy: requestedBy,
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal message data: %w", err)
		}
		payload.Data = raw
	}
	messageBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message body: %w", err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         messageBody,
	}
	if err := channel.Publish(
		"",        // exchange
		queueName, // queue name
		false,     // mandatory
		false,     // immediate
		msg,       // message to publish
	); err != nil {
		return fmt.Errorf("failed to publish message to queue: %w", err)
	}
	return nil
}
