// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until its context is cancelled or the process receives
// SIGINT or SIGTERM, then drains in-flight requests within the shutdown
// timeout. Ready and Addr report the bound address, which makes ":0" usable
// in tests.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	r := chi.NewRouter()
//	r.Get("/health", httpserver.HealthHandler())
//	r.Mount("/validate", registry.Handler())
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Listen failures wrap ErrStart and drain failures wrap ErrShutdown.
package httpserver
