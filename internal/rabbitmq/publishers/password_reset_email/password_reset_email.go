package passwordresetemail

import (
	"context"
	e "roleplay/internal/core/domain/errors"
	"roleplay/internal/core/domain/logging"
	"roleplay/internal/core/domain/user"
	"roleplay/internal/rabbitmq"
	"roleplay/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (s *RabbitMQ) SendResetToken(
	ctx context.Context,
	u user.User,
	token user.ResetToken,
	resetPasswordURL string,
) error {
	message := schema.PasswordResetEmail{
		Email:            string(u.Email),
		Username:         string(u.Username),
		Token:            string(token),
		ResetPasswordURL: resetPasswordURL,
	}
	body, err := message.Marshal()
	if err != nil {
		logging.Error(ctx, s.log, err)
		return err
	}

	err = s.channel.PublishWithContext(ctx, s.exchange, s.routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return err
	}
	s.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", s.exchange),
		logging.Entry("RK", s.routingKey),
		logging.Entry("userID", u.ID),
	)
	return nil
}
