// Package server wraps http.Server with graceful shutdown and
// environment-driven configuration.
//
// # Basic Usage
//
//	srv := server.New(":8080", server.WithLogger(log))
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler.Adapt(hello)))
//	if err := g.Wait(); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run serves until the context is canceled and then calls Stop, which waits
// up to the shutdown timeout for in-flight requests.
//
// # Configuration
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//
// Environment variables: SERVER_ADDR, SERVER_READ_TIMEOUT,
// SERVER_WRITE_TIMEOUT, SERVER_IDLE_TIMEOUT, SERVER_SHUTDOWN_TIMEOUT,
// SERVER_MAX_HEADER_BYTES.
package server
