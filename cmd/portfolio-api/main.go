package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/datheory/portfolio-api/internal/app"

	log "github.com/sirupsen/logrus"
)

var (
	configFlag      = flag.String("config", "config.yaml", "Path to the configuration file")
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run database migrations and exit")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *migrateOnlyFlag {
		if err := app.Migrate(ctx, *configFlag); err != nil {
			log.Fatalf("migrate failed: %v", err)
		}
		log.Info("migrations completed")
		return
	}

	if err := app.RunServer(ctx, *configFlag); err != nil {
		log.Errorf("server exited: %v", err)
		os.Exit(1)
	}
}
