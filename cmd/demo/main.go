// Command demo serves a small JSON API built on the fluent request/response
// model, routed by chi and instrumented with Prometheus.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/fluent/core/config"
	"github.com/dmitrymomot/fluent/core/handler"
	"github.com/dmitrymomot/fluent/core/logger"
	"github.com/dmitrymomot/fluent/core/server"
	"github.com/dmitrymomot/fluent/integration/router/chirouter"
	"github.com/dmitrymomot/fluent/middleware"
)

func main() {
	if err := run(); err != nil {
		slog.Error("demo failed", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var (
		logCfg    logger.Config
		serverCfg server.Config
		bodyCfg   middleware.BodyParserConfig
	)
	if err := errors.Join(
		config.Load(&logCfg),
		config.Load(&serverCfg),
		config.Load(&bodyCfg),
	); err != nil {
		return err
	}

	log, err := logger.New(logCfg)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	reg := prometheus.NewRegistry()
	r := routes(log, reg, bodyCfg)

	srv, err := server.NewFromConfig(serverCfg, server.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(ctx, r))
	return g.Wait()
}

func routes(log *slog.Logger, reg *prometheus.Registry, bodyCfg middleware.BodyParserConfig) http.Handler {
	mws := []handler.Middleware{
		middleware.RecoverWithConfig(middleware.RecoverConfig{Logger: log}),
		middleware.RequestID(),
		middleware.LoggingWithLogger(log),
		middleware.MetricsWithConfig(middleware.MetricsConfig{Registerer: reg, Namespace: "demo"}),
		middleware.SecurityHeadersStrict(),
		middleware.BodyParserWithConfig(bodyCfg),
	}
	opts := []handler.Option{
		handler.WithMiddleware(mws...),
		handler.WithLogger(log),
	}

	r := chi.NewRouter()
	chirouter.Mount(r, http.MethodGet, "/healthz", health, opts...)
	chirouter.Mount(r, http.MethodGet, "/users/{id}", showUser, opts...)
	chirouter.Mount(r, http.MethodPost, "/echo", echo, opts...)
	chirouter.Mount(r, http.MethodGet, "/export", export, opts...)
	chirouter.Mount(r, http.MethodGet, "/docs", docs, opts...)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

func health(ctx *handler.Context) error {
	_, err := ctx.Res.SendString("ok")
	return err
}

func showUser(ctx *handler.Context) error {
	id := ctx.Req.Param("id")
	if id == "0" {
		return handler.ErrNotFound.WithMessage("user not found").
			WithDetails(map[string]any{"id": id})
	}
	requestID, _ := middleware.GetRequestID(ctx)
	_, err := ctx.Res.JSON(map[string]any{
		"id":         id,
		"fields":     ctx.Req.Query().All("fields"),
		"host":       ctx.Req.Hostname(),
		"request_id": requestID,
	})
	return err
}

func echo(ctx *handler.Context) error {
	if ctx.Req.Body == nil {
		if len(ctx.Req.RawBody) == 0 {
			return handler.ErrBadRequest.WithMessage("empty body")
		}
		contentType, ok := ctx.Req.Header("Content-Type")
		if !ok {
			contentType = "application/octet-stream"
		}
		_, err := ctx.Res.Status(http.StatusCreated).Type(contentType).Send(ctx.Req.RawBody)
		return err
	}
	_, err := ctx.Res.Status(http.StatusCreated).JSON(ctx.Req.Body)
	return err
}

func export(ctx *handler.Context) error {
	_, err := ctx.Res.
		Type("text/csv; charset=utf-8").
		Set("Content-Disposition", `attachment; filename="users.csv"`).
		Stream(strings.NewReader("id,name\n1,alice\n2,bob\n"))
	return err
}

func docs(ctx *handler.Context) error {
	_, err := ctx.Res.RedirectWithStatus("https://pkg.go.dev/github.com/dmitrymomot/fluent", http.StatusMovedPermanently)
	return err
}
