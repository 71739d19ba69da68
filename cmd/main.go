package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/qninhdt/datadeck/server/internal/api"
	"github.com/qninhdt/datadeck/server/internal/config"
	"github.com/qninhdt/datadeck/server/internal/db"
	"github.com/qninhdt/datadeck/server/internal/factory"
	"github.com/qninhdt/datadeck/server/internal/logging"
	mw "github.com/qninhdt/datadeck/server/internal/middleware"
)

const usage = `usage:
  datadeck [serve]      start the HTTP server
  datadeck token <user> print a bearer token for user`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cmd := "serve"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "serve":
		return serve(cfg)
	case "token":
		if len(args) != 2 {
			return errors.New(usage)
		}
		secret, err := cfg.RequireSecret()
		if err != nil {
			return err
		}
		tok, err := mw.NewToken(secret, args[1], cfg.TokenTTL)
		if err != nil {
			return err
		}
		fmt.Println(tok)
		return nil
	}
	return errors.New(usage)
}

func serve(cfg config.Config) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return err
	}
	defer logger.Sync()

	secret, err := cfg.RequireSecret()
	if err != nil {
		return err
	}

	// Initialize database
	database, err := db.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer database.Close()

	var factoryOpts []factory.Option
	if cfg.Seed != 0 {
		factoryOpts = append(factoryOpts, factory.WithSeed(cfg.Seed))
	}

	server := api.NewServer(database, factory.NewFantasyCardFactory(factoryOpts...), api.Options{
		JWTSecret:    secret,
		RateLimit:    cfg.RateLimit,
		RateBurst:    cfg.RateBurst,
		MaxBodyBytes: cfg.MaxBodyBytes,
		HandSize:     cfg.HandSize,
		DeckSize:     cfg.DeckSize,
		Seed:         cfg.Seed,
		Logger:       logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", httpServer.Addr), zap.String("db", cfg.DBPath))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
