// Package httpapi serves reports as JSON and plain objects, verifies
// objects against the schema, and streams change events over websockets.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"shotdiff/internal/service"
)

type API struct {
	svc *service.Service
	log *zap.Logger
}

func New(svc *service.Service, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{svc: svc, log: log}
}

// NewRouter builds the HTTP surface. rpcHandler, when non-nil, is served
// under rpcPath.
func NewRouter(api *API, rpcPath string, rpcHandler http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(api.log))
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	r.Get("/healthz", api.health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/schema", api.schema)
		r.Get("/watch", api.watch)
		r.Post("/verify/{message}", api.verify)
		r.Route("/reports", func(r chi.Router) {
			r.Get("/", api.listReports)
			r.Post("/", api.putReport)
			r.Get("/{id}", api.getReport)
			r.Get("/{id}/object", api.getReportObject)
			r.Delete("/{id}", api.deleteReport)
		})
	})
	if rpcHandler != nil && rpcPath != "" {
		r.Handle(rpcPath+"*", rpcHandler)
	}
	return r
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
