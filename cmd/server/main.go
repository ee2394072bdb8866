package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/holiday-planner/internal/adapter"
	"github.com/MKhiriev/holiday-planner/internal/config"
	"github.com/MKhiriev/holiday-planner/internal/handler"
	"github.com/MKhiriev/holiday-planner/internal/kvstore"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/notify"
	"github.com/MKhiriev/holiday-planner/internal/server"
	"github.com/MKhiriev/holiday-planner/internal/service"
	"github.com/MKhiriev/holiday-planner/internal/store"
	"github.com/MKhiriev/holiday-planner/internal/workers"
	"github.com/MKhiriev/holiday-planner/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("holiday-planner")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	applyBuildInfo(cfg)

	log.Debug().Any("config", cfg).Msg("received configs")

	kv, err := newKVStore(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating key-value store")
	}

	storages := store.NewStorages(kv, log)

	notifier := newNotifier(cfg.Notify, log)
	scheduler := notify.NewLocalScheduler(notifier, log)
	defer scheduler.Shutdown()

	var holidaySource service.HolidaySource
	if cfg.Holidays.APIURL != "" {
		holidaySource, err = adapter.NewHTTPHolidayAPI(cfg.Holidays, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating holiday source")
		}
	}

	services, err := service.NewServices(kv, storages, scheduler, holidaySource, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	workers.NewWorkers(services, cfg.Workers, log).Run()

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newKVStore selects the storage backend: PostgreSQL when a DSN is
// configured, the local SQLite file otherwise. Schema migrations run through
// goose for PostgreSQL only; SQLite creates its table on open.
func newKVStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (kvstore.Store, error) {
	if cfg.DB.DSN != "" {
		pg, err := kvstore.NewPostgresStore(ctx, cfg.DB.DSN, log)
		if err != nil {
			return nil, err
		}
		if err = migrations.Migrate(pg.DB()); err != nil {
			return nil, err
		}
		return pg, nil
	}

	return kvstore.NewSQLiteStore(cfg.SQLite.Path, log)
}

func newNotifier(cfg config.Notify, log *logger.Logger) notify.Notifier {
	if cfg.WebhookURL == "" {
		return notify.NewLogNotifier(log)
	}
	return notify.NewWebhookNotifier(notify.WebhookConfig{
		URL:     cfg.WebhookURL,
		Token:   cfg.WebhookToken,
		Timeout: cfg.Timeout,
	})
}

// applyBuildInfo falls back to the link-time build variables for every app
// field the merged configuration left empty.
func applyBuildInfo(cfg *config.StructuredConfig) {
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}
	if cfg.App.BuildDate == "" {
		cfg.App.BuildDate = buildDate
	}
	if cfg.App.Commit == "" {
		cfg.App.Commit = buildCommit
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
