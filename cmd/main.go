package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitrine-lab/vitrineserv/config"
	"github.com/vitrine-lab/vitrineserv/internal/app"
)

func main() {
	cfg := config.Default()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("failed to load config from %s: %v", path, err)
		}
		cfg = loaded
	}

	application := app.New(cfg)

	startCtx, startCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startCancel()

	if err := application.Start(startCtx); err != nil {
		log.Fatalf("failed to start application: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := application.Stop(stopCtx); err != nil {
		log.Printf("failed to stop application: %v", err)
	}
}
