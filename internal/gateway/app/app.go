// Package app wires configuration, stores, the LLM client and the HTTP
// server into one runnable unit.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"pitchmate/internal/assembler"
	"pitchmate/internal/auth"
	"pitchmate/internal/gateway/config"
	"pitchmate/internal/gateway/handler"
	"pitchmate/internal/gateway/progress"
	"pitchmate/internal/gateway/repository/archive"
	"pitchmate/internal/gateway/repository/deckstore"
	"pitchmate/internal/gateway/server"
	"pitchmate/internal/llm"
)

type App struct {
	server *server.Server
	store  *deckstore.Store
	llm    llm.Client
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if strings.EqualFold(cfg.Env, "local") {
		log.SetLevel(logrus.DebugLevel)
	}

	client, err := newLLMClient(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize llm client: %w", err)
	}

	store := deckstore.NewFromEnv(cfg.Store.FilePath)
	store.EnsureLoaded()

	arc := newArchiveStore(cfg, log)
	hub := progress.NewHub(0)

	svc := assembler.New(client, log, assembler.Options{
		Parallel:    cfg.Enrich.Parallel,
		CallTimeout: cfg.Enrich.CallTimeout,
	})

	tokens := auth.TokenService{
		Secret:   []byte(cfg.Auth.JWTSecret),
		Issuer:   cfg.Auth.Issuer,
		Duration: cfg.Auth.TokenTTL,
	}
	if len(tokens.Secret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET is required outside local env")
	}

	authHandler := handler.NewAuthHandler(tokens, store)
	deckHandler := handler.NewDeckHandler(svc, store, arc, hub, log)
	enrichHandler := handler.NewEnrichHandler(svc)

	router := server.NewRouter(tokens, authHandler, deckHandler, enrichHandler, hub)
	srv := server.New(cfg.Port, router, log)

	return &App{server: srv, store: store, llm: client}, nil
}

func newLLMClient(ctx context.Context, cfg *config.Config, log *logrus.Logger) (llm.Client, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		return llm.NewGeminiClient(ctx, cfg.LLM.Model, cfg.LLM.RPS, cfg.LLM.Burst)
	case "fake":
		log.Warn("using fake LLM client")
		return &llm.FakeClient{}, nil
	default:
		return llm.NewOpenAIClient(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.RPS, cfg.LLM.Burst), nil
	}
}

// newArchiveStore returns nil when archiving is disabled or misconfigured;
// the deck handler treats a nil archive as "skip".
func newArchiveStore(cfg *config.Config, log *logrus.Logger) *archive.S3Store {
	if !cfg.Archive.Enabled {
		return nil
	}
	arc, err := archive.NewS3Store(archive.S3Config{
		Endpoint:  cfg.Archive.Endpoint,
		Region:    cfg.Archive.Region,
		AccessKey: cfg.Archive.AccessKey,
		SecretKey: cfg.Archive.SecretKey,
		Bucket:    cfg.Archive.Bucket,
		UseSSL:    cfg.Archive.UseSSL,
	})
	if err != nil {
		log.WithError(err).Warn("deck archive disabled")
		return nil
	}
	log.WithFields(logrus.Fields{
		"bucket":   cfg.Archive.Bucket,
		"endpoint": cfg.Archive.Endpoint,
	}).Info("deck archive enabled")
	return arc
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	_ = a.store.Close()
	_ = a.llm.Close()
	return err
}
