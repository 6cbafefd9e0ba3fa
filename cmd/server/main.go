package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/adamaho/matchpoint/internal/config"
	"github.com/adamaho/matchpoint/internal/db"
	"github.com/adamaho/matchpoint/internal/es"
	"github.com/adamaho/matchpoint/internal/events"
	"github.com/adamaho/matchpoint/internal/httpserver"
	"github.com/adamaho/matchpoint/internal/logging"
	"github.com/adamaho/matchpoint/internal/middleware"
	"github.com/adamaho/matchpoint/internal/repo"
	"github.com/adamaho/matchpoint/internal/service"
	"github.com/adamaho/matchpoint/internal/tokens"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	database, err := db.Open(context.Background(), configuration)
	if err != nil {
		logger.Error("db init failed", "error", err)
		os.Exit(1)
	}

	esClient, err := es.NewClient(configuration)
	if err != nil {
		logger.Error("elasticsearch init failed", "error", err)
		os.Exit(1)
	}

	producer := events.NewProducer(configuration.KAFKA_ADDRESS)

	issuer := &tokens.Issuer{
		AccessSecret:  []byte(configuration.JWT_SECRET),
		RefreshSecret: []byte(configuration.REFRESH_SECRET),
		Audience:      configuration.JWT_AUDIENCE,
		Issuer:        configuration.JWT_ISSUER,
	}

	store := repo.New(database)

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID(), middleware.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{
			Svc:      &service.AuthService{Repo: store, Tokens: issuer},
			Producer: producer,
		},
		MatchHandler: &httpserver.MatchHTTP{
			Svc:    &service.MatchService{Repo: store},
			Search: &service.SearchService{ES: esClient, Index: es.MatchIndex},
		},
		UserHandler: &httpserver.UserHTTP{
			Svc: &service.UserService{Repo: store},
		},
		Auth: middleware.NewBearerAuth(issuer),
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", configuration.Port),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
