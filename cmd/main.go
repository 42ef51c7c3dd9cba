package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"svt_viewer/internal/config"
	"svt_viewer/internal/handlers"
	"svt_viewer/internal/hub"
	"svt_viewer/internal/logger"
	"svt_viewer/internal/repository"
	"svt_viewer/internal/repository/db"
	"svt_viewer/internal/server"
	"svt_viewer/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load configs/config.yml (+ SVTVIEW_* env)
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level)

	// open store
	conn, err := openDB(cfg.Store, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	hubClient, err := hub.New(cfg.Hub, log.With("component", "hub"))
	if err != nil {
		log.Fatalw("failed to build hub client", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, hubClient, service.Options{
		Concurrency: cfg.Aggregation.Concurrency,
	}, log.With("component", "aggregator"))
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// periodic refresh of the snapshot
	go services.Refresher.Run(ctx, cfg.Aggregation.RefreshInterval)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("server started", "port", cfg.Port, "hub", cfg.Hub.BaseURL(),
		"concurrency", cfg.Aggregation.Concurrency, "refresh_interval", cfg.Aggregation.RefreshInterval)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// openDB initializes the SQLite snapshot store using configuration.
func openDB(cfg config.StoreConfig, log *logger.Logger) (*sql.DB, error) {
	dsn := cfg.DSN
	if dsn == "" {
		log.Infow("store.dsn not set in config; using in-memory database")
		dsn = db.MemoryDSN
	}
	return db.InitDB(dsn)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop the refresher and any in-flight hub calls it owns
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
