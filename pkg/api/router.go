package api

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	_ "frontdesk/docs"
	"frontdesk/pkg/logger"
)

// RouterConfig collects what the router mounts besides the registry endpoints.
type RouterConfig struct {
	Tracer         trace.Tracer
	AllowedOrigins []string
	// Metrics serves /metrics when set.
	Metrics http.Handler
	// Live serves /ws when set.
	Live http.Handler
}

// NewRouter builds the HTTP handler for the whole service.
func NewRouter(h *Handler, log *logger.Logger, cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	if cfg.Tracer != nil {
		r.Use(traceMiddleware(cfg.Tracer))
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	h.RegisterRoutes(r)

	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics).Methods(http.MethodGet)
	}
	if cfg.Live != nil {
		r.Handle("/ws", cfg.Live).Methods(http.MethodGet)
	}
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	// mux runs r.Use middleware on matched routes only, so these wrap the router.
	c := cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
	return requestIDMiddleware(recoverMiddleware(log)(c(r)))
}
