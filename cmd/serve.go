package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voxboard/internal/delivery"
	ws "github.com/Vovarama1992/voxboard/internal/delivery/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	a, err := buildApp("")
	if err != nil {
		return err
	}
	defer a.close()
	zl := a.log

	// HANDLERS
	hCmd := delivery.NewCommandHandler(a.service, a.cfg.HTTP.MaxUploadBytes, zl)
	hub := ws.NewHub(zl)

	// ROUTER
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(delivery.CORS())

	delivery.RegisterRoutes(r, hCmd)

	r.Get("/ws", ws.WSHandler(hub, a.service, a.cfg.HTTP.MaxUploadBytes, zl))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(a.cfg.HTTP.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: "server started",
			Fields:  map[string]any{"port": a.cfg.HTTP.Port},
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		zl.Log(logger.LogEntry{Level: "info", Message: "shutting down"})
		hub.CloseAll()

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
		return err
	}

	zl.Log(logger.LogEntry{Level: "info", Message: "server stopped"})
	return nil
}
