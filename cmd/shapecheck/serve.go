package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validation/pkg/httpserver"
	"github.com/dmitrymomot/validation/pkg/requestid"
	"github.com/dmitrymomot/validation/pkg/shapehttp"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		shapes []string
		addr   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the built-in shapes over HTTP",
		Long: `Serve the built-in shapes as validation endpoints. The signup shape is
served at POST /validate/signup. Use --shape to serve only some of them.

  GET  /health            readiness, fails when no shape is registered
  GET  /validate/         names of the served shapes
  POST /validate/{name}   validate a JSON, YAML or form body

Server and validation settings come from HTTP_* and SHAPE_* variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, names, err := a.serveHandler(shapes)
			if err != nil {
				return err
			}
			a.log.Info("shapes registered", slog.Any("shapes", names))

			cfg := a.cfg.HTTP
			if addr != "" {
				cfg.Addr = addr
			}
			return httpserver.NewFromConfig(cfg, httpserver.WithLogger(a.log)).Run(cmd.Context(), handler)
		},
	}

	cmd.Flags().StringSliceVarP(&shapes, "shape", "s", nil, "Serve only these shapes (default all)")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides HTTP_ADDR")
	return cmd
}

// serveHandler registers the named built-in shapes, or all of them when
// names is empty, and builds the router.
func (a *app) serveHandler(names []string) (http.Handler, []string, error) {
	if len(names) == 0 {
		names = builtinNames()
	}

	reg := shapehttp.NewRegistry(shapehttp.WithConfig(a.cfg.Request), shapehttp.WithLogger(a.log))
	var errs []error
	for _, name := range names {
		b, err := lookupBuiltin(name)
		if err == nil {
			err = reg.Register(name, b.New)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, nil, err
	}

	registered := reg.Names()
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/health", httpserver.HealthHandler(func(context.Context) error {
		if len(registered) == 0 {
			return errors.New("no shapes registered")
		}
		return nil
	}))
	r.Mount("/validate", reg.Handler())
	return r, registered, nil
}
