package config

import (
	"fmt"

	"github.com/streadway/amqp"
)

type RabbitMqConfig struct {
	Connection *amqp.Connection
	Channel    *amqp.Channel
}

// NewRabbitMqConfig dials the broker and declares the request and result
// queues. It returns nil, nil when messaging is not configured.
func NewRabbitMqConfig(env *RabbitMqEnv) (*RabbitMqConfig, error) {
	if !env.Enabled() {
		return nil, nil
	}
	connection, err := RabbitMQConnection(env.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to establish RabbitMQ connection: %w", err)
	}
	channel, err := RabbitMqChannel(connection)
	if err != nil {
		connection.Close()
		return nil, fmt.Errorf("failed to establish RabbitMQ channel: %w", err)
	}
	rabbitMqConfig := &RabbitMqConfig{
		Connection: connection,
		Channel:    channel,
	}
	for _, name := range []string{env.RequestQueue, env.ResultQueue} {
		_, err := channel.QueueDeclare(
			name,  // name
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			rabbitMqConfig.Close()
			return nil, fmt.Errorf("failed to declare queue %q: %w", name, err)
		}
	}
	return rabbitMqConfig, nil
}

func RabbitMQConnection(amqpServerURL string) (*amqp.Connection, error) {
	connectRabbitMQ, err := amqp.Dial(amqpServerURL)
	if err != nil {
		return nil, err
	}
	return connectRabbitMQ, nil
}

func RabbitMqChannel(connection *amqp.Connection) (*amqp.Channel, error) {
	channelRabbitMQ, err := connection.Channel()
	if err != nil {
		return nil, err
	}
	return channelRabbitMQ, nil
}

func (rabbitMqConfig *RabbitMqConfig) Close() error {
	if rabbitMqConfig == nil {
		return nil
	}
	if rabbitMqConfig.Channel != nil {
		rabbitMqConfig.Channel.Close()
	}
	return rabbitMqConfig.Connection.Close()
}
