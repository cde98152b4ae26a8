package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/ezBadminton/kiva/internal/config"
	"github.com/ezBadminton/kiva/internal/store"
	"github.com/ezBadminton/kiva/internal/web"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	appStore, err := openStore(cfg)
	if err != nil {
		logger.Error("store", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}

	templates, err := web.NewTemplates()
	if err != nil {
		logger.Error("templates", "error", err)
		os.Exit(1)
	}

	server := web.NewServer(appStore, templates, web.Options{
		MinGroupSize: cfg.MinGroupSize,
		CreateRate:   cfg.CreateRate,
		CreateBurst:  cfg.CreateBurst,
		Logger:       logger,
	})
	handler := server.Routes()

	if cfg.Lambda {
		logger.Info("starting in lambda mode")
		adapter := httpadapter.New(handler)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Info("starting server", "addr", cfg.Addr, "store", cfg.DBDriver)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return store.NewSQLiteStore(cfg.DBDSN)
	case "postgres":
		return store.NewPostgresStore(cfg.DBDSN)
	default:
		return store.NewMemoryStore(), nil
	}
}
