package main

import (
	"context"
	"os"
	"os/signal"
	"roleplay/internal/app/consumers"
	"roleplay/internal/app/deps"
	"roleplay/internal/core/domain/logging"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	shutdownConsumers := consumers.InitConsumers(deps)
	defer shutdownConsumers()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(context.Background(), "Password reset email worker has started.")
	<-stopCh
	log.Info(context.Background(), "Stopping password reset email worker.", logging.Entry("reason", "signal"))
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
