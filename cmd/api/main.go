package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/tally/internal/account"
	accountStore "github.com/MrJamesThe3rd/tally/internal/account/store"
	"github.com/MrJamesThe3rd/tally/internal/audit"
	"github.com/MrJamesThe3rd/tally/internal/config"
	"github.com/MrJamesThe3rd/tally/internal/database"
	tallyHttp "github.com/MrJamesThe3rd/tally/internal/http"
	accountHandler "github.com/MrJamesThe3rd/tally/internal/http/account"
	"github.com/MrJamesThe3rd/tally/internal/http/auth"
	journalHandler "github.com/MrJamesThe3rd/tally/internal/http/journal"
	reconcileHandler "github.com/MrJamesThe3rd/tally/internal/http/reconcile"
	statementHandler "github.com/MrJamesThe3rd/tally/internal/http/statement"
	"github.com/MrJamesThe3rd/tally/internal/importer"
	"github.com/MrJamesThe3rd/tally/internal/journal"
	journalStore "github.com/MrJamesThe3rd/tally/internal/journal/store"
	"github.com/MrJamesThe3rd/tally/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/tally/internal/matching/store"
	"github.com/MrJamesThe3rd/tally/internal/statement"
	statementStore "github.com/MrJamesThe3rd/tally/internal/statement/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DB.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	dispatcher := audit.NewDispatcher(auditSink(cfg), cfg.Audit.Buffer)

	var (
		accountService   = account.NewService(accountStore.New(db), dispatcher)
		matchingService  = matching.NewService(matchingStore.New(db), accountService, dispatcher)
		journalService   = journal.NewService(journalStore.New(db), accountService, matchingService, dispatcher)
		statementService = statement.NewService(statementStore.New(db), accountService, journalService, dispatcher)
		importService    = importer.NewService()
	)

	var (
		accountH   = accountHandler.NewHandler(accountService)
		journalH   = journalHandler.NewHandler(journalService)
		statementH = statementHandler.NewHandler(statementService)
		reconcileH = reconcileHandler.NewHandler(matchingService, importService)
	)

	router := tallyHttp.New(tallyHttp.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Timeout:        cfg.Server.Timeout,
		Verifier:       auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
		DB:             db,
	}, accountH, journalH, statementH, reconcileH)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting server", "port", srv.Addr, "app", cfg.App.Name)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}

	if err := dispatcher.Close(shutdownCtx); err != nil {
		slog.Warn("audit events dropped on shutdown", "error", err)
	}
}

func auditSink(cfg *config.Config) audit.Sink {
	if !cfg.RedisEnabled() {
		slog.Info("redis not configured, audit events go to the log")
		return audit.LogSink{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return audit.NewRedisSink(rdb, cfg.Redis.AuditChannel)
}
