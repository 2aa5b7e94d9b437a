package main

import (
	"chat-hub/auth"
	"chat-hub/contract"
	"chat-hub/infrastructure/grpc/health"
	"chat-hub/infrastructure/rest"
	"chat-hub/infrastructure/websocket"
	"chat-hub/moderation"
	"chat-hub/observability"
	"chat-hub/repositories"
	"chat-hub/runtime"
	"chat-hub/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal or a server failure.
// Returning instead of exiting lets the deferred cleanups close the database.
func run() error {
	// 1. Configuration & Logger
	// A missing .env file is fine, the environment may be set already
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	userRepository := repositories.NewUserRepository(db)
	contactRepository := repositories.NewContactRepository(db)
	messageRepository := repositories.NewMessageRepository(db, log, config.LimitMessages)
	statusRepository := repositories.NewStatusRepository(db)
	store := repositories.NewStore(contactRepository, messageRepository, statusRepository)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := observability.NewMetrics(registry)

	// 4. Hub
	moderator, err := newModerator(config, log)
	if err != nil {
		return err
	}
	orchestrator := runtime.NewOrchestrator(log, store, moderator, metrics, runtime.Settings{
		SendTimeout:      config.SendTimeout,
		ReaperBufferSize: config.ReaperBufferSize,
		RestartInterval:  config.RestartInterval,
		InboundRate:      config.InboundRate,
		InboundBurst:     config.InboundBurst,
		StatsInterval:    config.StatsInterval,
	})

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. HTTP: REST, websocket and metrics on one port
	issuer := auth.NewIssuer(config.JWTSecret, config.AuthTokenDuration)
	mux := http.NewServeMux()
	rest.NewServer(log,
		services.NewAuthService(userRepository, issuer, orchestrator.Presence()),
		services.NewContactService(contactRepository, orchestrator.Presence()),
		services.NewHistoryService(messageRepository),
		issuer,
	).Routes(mux)
	mux.Handle("GET /chat", websocket.NewHandler(ctx, log, orchestrator.Lifecycle(), issuer, websocket.Settings{
		BufferSize:     config.ConnectionBufferSize,
		PingInterval:   config.PingInterval,
		MaxMessageSize: config.MaxMessageSize,
	}))
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	// 7. gRPC health
	grpcAddress := fmt.Sprintf("%s:%d", config.Host, config.GRPCPort)
	listener, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", grpcAddress, err)
	}
	healthServer := health.NewServer(log)

	// 8. Run everything, the first failure stops the rest
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orchestrator.Start(gctx)
		return nil
	})
	g.Go(func() error {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := healthServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC health server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		healthServer.SetServing(true)
		<-gctx.Done()
		log.Info("Shutting down gracefully...")

		healthServer.SetServing(false)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		healthServer.Stop()
		orchestrator.Stop()
		return err
	})

	if err = g.Wait(); err != nil {
		return err
	}
	log.Info("Program stopped cleanly")
	return nil
}

// newModerator returns a nil interface, not a typed nil, when nothing is censored.
func newModerator(config Config, log *slog.Logger) (contract.Moderator, error) {
	words := moderation.ParseWords(config.CensoredWords)
	if config.CensoredWordsDir != "" {
		dict, err := moderation.LoadDictionary(os.DirFS(config.CensoredWordsDir), ".")
		if err != nil {
			return nil, fmt.Errorf("censored words loading failed: %w", err)
		}
		log.Info("Censored dictionaries loaded", "languages", dict.Languages, "words", len(dict.Words))
		words = append(words, dict.Words...)
	}
	if len(words) == 0 {
		return nil, nil
	}
	replacement, _ := utf8.DecodeRuneInString(config.ModerationCharReplacement)
	if replacement == utf8.RuneError {
		replacement = '*'
	}
	moderator, err := moderation.NewModerator(words, replacement)
	if err != nil {
		return nil, fmt.Errorf("moderator setup failed: %w", err)
	}
	return moderator, nil
}
