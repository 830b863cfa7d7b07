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

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/inamate/wireframe/backend-go/internal/api"
	"github.com/inamate/wireframe/backend-go/internal/auth"
	"github.com/inamate/wireframe/backend-go/internal/config"
	"github.com/inamate/wireframe/backend-go/internal/engine"
	mw "github.com/inamate/wireframe/backend-go/internal/middleware"
	"github.com/inamate/wireframe/backend-go/internal/renderer"
	"github.com/inamate/wireframe/backend-go/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()})))

	if err := run(cfg); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	renderers := renderer.NewDefaultService()
	if cfg.CatalogPath != "" {
		templates, err := renderer.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		renderer.Register(renderers, templates)
		slog.Info("catalog loaded", "path", cfg.CatalogPath, "shapes", len(templates))
	}

	authService := auth.NewService(cfg.JWTSecret)
	authHandler := auth.NewHandler(authService)

	hub := session.NewHub(renderers, engine.Config{
		DragThreshold: cfg.DragThreshold,
		PasteOffset:   cfg.PasteOffset,
	}, nil)
	apiHandler := api.NewHandler(renderers, nil)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.Origins()))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Token routes
	tokens := r.PathPrefix("/auth").Subrouter()
	tokens.Use(authService.AuthMiddleware)
	tokens.HandleFunc("/refresh", authHandler.Refresh).Methods("POST")
	tokens.HandleFunc("/me", authHandler.Me).Methods("GET")

	// Protected API routes
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(authService.AuthMiddleware)
	apiHandler.Routes(apiRouter)

	// WebSocket endpoint
	r.Handle("/ws/editor", session.NewHandler(hub, authService, cfg.OriginPatterns()))

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(ctx)
		return nil
	})

	g.Go(func() error {
		slog.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
