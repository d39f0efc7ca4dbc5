package consumers

import (
	"context"
	"roleplay/internal/app/deps"
	dl "roleplay/internal/core/domain/logging"
	passwordresetemail "roleplay/internal/rabbitmq/consumers/password_reset_email"
)

func initPasswordResetEmailConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.PasswordResetEmailQueue
	passwordResetEmailConsumer := passwordresetemail.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.EmailSender,
	)
	if err = passwordResetEmailConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps) func() {
	shutdownPasswordResetEmailConsumer := initPasswordResetEmailConsumer(deps)

	return func() {
		shutdownPasswordResetEmailConsumer()
	}
}
