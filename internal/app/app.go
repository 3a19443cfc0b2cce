package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	deckrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/deck"
	fcrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/flashcard"
	tokenrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/provider/anthropic"
	jwtauth "github.com/heartmarshall/flashcards-backend/internal/auth"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	authsvc "github.com/heartmarshall/flashcards-backend/internal/service/auth"
	decksvc "github.com/heartmarshall/flashcards-backend/internal/service/deck"
	fcsvc "github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
	gensvc "github.com/heartmarshall/flashcards-backend/internal/service/generation"
	studysvc "github.com/heartmarshall/flashcards-backend/internal/service/study"
	"github.com/heartmarshall/flashcards-backend/internal/transport/middleware"
	"github.com/heartmarshall/flashcards-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled.
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

	if cfg.Database.MigrateOnStart {
		if err := RunMigrations(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	decks := deckrepo.New(pool)
	cards := fcrepo.New(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	aiGenerator := anthropic.New(cfg.AI)

	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	deckService := decksvc.NewService(logger, decks, txManager)
	cardService := fcsvc.NewService(logger, cards, decks, txManager, cfg.SRS)
	genService := gensvc.NewService(logger, aiGenerator, cards, decks, cfg.Generation)
	studyService := studysvc.NewService(logger, cards, cfg.SRS)

	router := rest.NewRouter(rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Deck:      rest.NewDeckHandler(deckService, logger),
		Flashcard: rest.NewFlashcardHandler(cardService, logger),
		Gen:       rest.NewGenerationHandler(genService, logger),
		Study:     rest.NewStudyHandler(studyService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(jwtManager),
	)(router)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
