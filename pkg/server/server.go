// Package server exposes the strategy engine as an HTTP JSON API.
package server

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/pitwall-dev/pit-strategy-go/log"
	"github.com/pitwall-dev/pit-strategy-go/pkg/advice"
	"github.com/pitwall-dev/pit-strategy-go/pkg/simulation"
)

type (
	// SimulatorFactory creates the simulator used for one request. Each
	// request gets its own instance, so concurrent requests never share a
	// randomness source.
	SimulatorFactory func() *simulation.Simulator

	Server struct {
		l       *log.Logger
		tracer  trace.Tracer
		advisor advice.Advisor
		newSim  SimulatorFactory
	}

	Option func(*Server)
)

func WithLogger(l *log.Logger) Option {
	return func(srv *Server) {
		srv.l = l
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(srv *Server) {
		srv.tracer = tracer
	}
}

func WithAdvisor(a advice.Advisor) Option {
	return func(srv *Server) {
		srv.advisor = a
	}
}

func WithSimulatorFactory(f SimulatorFactory) Option {
	return func(srv *Server) {
		srv.newSim = f
	}
}

func NewServer(opts ...Option) *Server {
	ret := &Server{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.l == nil {
		ret.l = log.Default().Named("api")
	}
	if ret.tracer == nil {
		ret.tracer = otel.Tracer("psg")
	}
	if ret.advisor == nil {
		ret.advisor = advice.NewHeuristicAdvisor()
	}
	if ret.newSim == nil {
		ret.newSim = func() *simulation.Simulator {
			return simulation.NewSimulator()
		}
	}
	return ret
}

// Handler returns the routed API surface with per-request middleware applied.
func (s *Server) Handler() *http.ServeMux {
	mux := http.NewServeMux()
	endpoints := []struct {
		pattern string
		name    string
		handler http.HandlerFunc
	}{
		{"GET /{$}", "root", s.handleRoot},
		{"GET /version", "version", s.handleVersion},
		{"POST /simulate", "simulate", s.handleSimulate},
		{"POST /predict/undercut", "predict.undercut", s.handlePredictUndercut},
		{"POST /predict/overcut", "predict.overcut", s.handlePredictOvercut},
	}
	for _, ep := range endpoints {
		mux.Handle(ep.pattern, s.instrument(ep.name, ep.handler))
	}
	return mux
}
