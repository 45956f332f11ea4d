package shapehttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"regexp"
	"slices"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/validation/pkg/binder"
	"github.com/dmitrymomot/validation/pkg/requestid"
	"github.com/dmitrymomot/validation/pkg/shape"
)

// CodeSchemaNotFound is reported for requests naming an unregistered schema.
const CodeSchemaNotFound = "schema_not_found"

var (
	// ErrDuplicateSchema is returned when a name is registered twice.
	ErrDuplicateSchema = errors.New("schema already registered")

	// ErrInvalidSchemaName is returned for names that cannot appear in a URL path segment.
	ErrInvalidSchemaName = errors.New("invalid schema name")
)

var schemaName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// Registry exposes named schemas as validation endpoints:
//
//	GET  /         names of the registered schemas
//	POST /{name}   validate the body, respond with the validated value
//
// Bodies are decoded with binder.Body, so every JSON or YAML value is
// accepted and query or path parameters never leak into the input.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]*Validator
	opts       []Option
}

// NewRegistry creates an empty registry. opts apply to every schema.
func NewRegistry(opts ...Option) *Registry {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.binder == nil {
		opts = append(slices.Clone(opts), WithBinder(binder.Body(o.cfg.MaxBodyBytes)))
	}
	return &Registry{validators: make(map[string]*Validator), opts: opts}
}

// Register adds a schema under name.
func (r *Registry) Register(name string, schema func() shape.Node) error {
	if !schemaName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidSchemaName, name)
	}
	if schema == nil {
		return shape.ErrNilNode
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.validators[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSchema, name)
	}
	r.validators[name] = New(schema, r.opts...)
	return nil
}

// Names returns the registered names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.validators))
}

func (r *Registry) lookup(name string) (*Validator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[name]
	return v, ok
}

// Handler returns the router for the registry. Mount it under any prefix.
func (r *Registry) Handler() http.Handler {
	router := chi.NewRouter()
	router.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"schemas": r.Names()})
	})
	router.Post("/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		v, ok := r.lookup(name)
		if !ok {
			writeJSON(w, http.StatusNotFound, ErrorResponse{
				Error:     ErrorDetail{Code: CodeSchemaNotFound, Message: fmt.Sprintf("schema %q is not registered", name)},
				RequestID: requestid.FromContext(req.Context()),
			})
			return
		}
		v.Handler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			value, _ := ValueFromContext(req.Context())
			writeJSON(w, http.StatusOK, map[string]any{"schema": name, "value": value})
		})).ServeHTTP(w, req)
	})
	return router
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
