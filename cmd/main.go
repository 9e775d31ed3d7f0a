package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "hvac_reward/docs"
	"hvac_reward/internal/config"
	"hvac_reward/internal/handlers"
	"hvac_reward/internal/logger"
	"hvac_reward/internal/metrics"
	"hvac_reward/internal/repository"
	"hvac_reward/internal/repository/db"
	"hvac_reward/internal/server"
	"hvac_reward/internal/service"
	"hvac_reward/internal/stream"
)

const (
	configDir       = "configs"
	shutdownTimeout = 10 * time.Second
)

// @title                       HVAC Reward API
// @version                     1.0
// @description                 Computes, stores and streams reinforcement-learning rewards for HVAC control agents.
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Get(logger.InfoLevel, logger.ConsoleEncoding).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level, cfg.Log.Encoding)
	defer func() { _ = log.Sync() }()

	if err := cfg.Auth.Validate(); err != nil {
		log.Fatalw("refusing to start", "err", err)
	}

	// open DB
	conn, err := openDB(cfg.DB.Path, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	publisher := newPublisher(cfg.Kafka, log)
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			log.Errorw("failed to close publisher", "err", cerr)
		}
	}()

	metrics.Init()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Options{
		Params:     cfg.Reward.Params(),
		Publisher:  publisher,
		Log:        log,
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
	})
	apiHandler := handlers.NewHandler(services, log)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(srv, log)
}

func openDB(path string, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening sqlite", "path", path)
	return db.InitDB(path)
}

func newPublisher(cfg config.KafkaConfig, log *logger.Logger) stream.Publisher {
	if !cfg.Enabled {
		log.Infow("kafka disabled; rewards are stored only")
		return stream.Nop{}
	}
	log.Infow("publishing rewards to kafka", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return stream.NewKafkaPublisher(cfg.Brokers, cfg.Topic, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
