package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pitwall-dev/pit-strategy-go/log"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler with request id assignment, a trace span and
// request scoped logging.
func (s *Server) instrument(name string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)

		ctx, span := s.tracer.Start(r.Context(), name)
		span.SetAttributes(attribute.String("request.id", reqID))
		defer span.End()

		l := s.l.With(log.String("reqId", reqID), log.String("endpoint", name))
		ctx = log.AddToContext(ctx, l)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next(rec, r.WithContext(ctx))
		l.Debug("request handled",
			log.Int("status", rec.status),
			log.Duration("duration", time.Since(start)))
	})
}
