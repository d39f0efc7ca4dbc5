package passwordresetemail

import (
	"context"
	e "roleplay/internal/core/domain/errors"
	"roleplay/internal/core/domain/logging"
	"roleplay/internal/rabbitmq"
	"roleplay/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type Sender interface {
	SendPasswordResetEmail(ctx context.Context, email, username, token, resetPasswordURL string) error
}

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	sender  Sender
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	sender Sender,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, sender: sender}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start cosuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			message := &schema.PasswordResetEmail{}
			if err := message.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal password reset email message.",
					logging.Entry("err", err),
					logging.Entry("delivery", delivery),
				)
				c.Ack(delivery)
				continue
			}

			c.log.Info(
				context.Background(),
				"Got password reset email message.",
				logging.Entry("email", message.Email),
			)
			err := c.sender.SendPasswordResetEmail(
				context.Background(),
				message.Email,
				message.Username,
				message.Token,
				message.ResetPasswordURL,
			)
			if err != nil {
				c.log.Error(
					context.Background(),
					"Could not send password reset email.",
					logging.Entry("email", message.Email),
					logging.Entry("err", err),
				)
			}
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
