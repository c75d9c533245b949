package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/adapter/postgres"
	conversationrepo "github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/adapter/postgres/conversation"
	taskrepo "github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/adapter/postgres/task"
	toolcallrepo "github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/adapter/postgres/toolcall"
	anthropicprovider "github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/adapter/provider/anthropic"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/auth"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/config"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/service/chat"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/service/toolset"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/transport/middleware"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/transport/rest"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/migrations"
)

// accessTokenTTL only matters for locally issued test tokens; inbound tokens
// carry their own expiry.
const accessTokenTTL = 15 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.Migrate {
		logger.Info("running database migrations")
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()
	logger.Info("connected to database")

	txManager := postgres.NewTxManager(pool)
	conversations := conversationrepo.New(pool)
	tasks := taskrepo.New(pool)
	toolCalls := toolcallrepo.New(pool)

	registry := toolset.NewRegistry(logger, tasks)
	completer := anthropicprovider.NewClient(cfg.LLM.APIKey, cfg.LLM.Model)

	chatSvc := chat.NewService(logger, conversations, registry, completer, toolCalls, txManager, chat.Config{
		HistoryLimit:     cfg.Chat.HistoryLimit,
		MaxToolRounds:    cfg.Chat.MaxToolRounds,
		MaxMessageLength: cfg.Chat.MaxMessageLength,
		RequestTimeout:   cfg.LLM.RequestTimeout,
		MaxTokens:        cfg.LLM.MaxTokens,
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, accessTokenTTL)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Log:           logger,
		Chat:          rest.NewChatHandler(chatSvc, logger),
		Health:        rest.NewHealthHandler(pool, BuildVersion()),
		Validator:     jwtManager,
		Limiter:       limiter,
		CORS:          cfg.CORS,
		RatePerMinute: cfg.Chat.RatePerMinute,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
