// Package service hosts the diagnostic HTTP surface of the runner: a
// healthz endpoint and the prometheus metrics handler, each on its own
// listener so an orchestrator can scrape one without exposing the other.
package service

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/ethereum/go-ethereum/log"

	"github.com/specrun/specrun/metrics"
)

const (
	HealthzHost = "0.0.0.0"
	HealthzPort = "8080"

	MetricsHost = "0.0.0.0"
	MetricsPort = "7300"
)

type Service struct {
	log     log.Logger
	Healthz *HealthzServer
	Metrics *MetricsServer
}

func New() *Service {
	return &Service{
		log:     log.Root().New("component", "diagnostics"),
		Healthz: &HealthzServer{},
		Metrics: &MetricsServer{},
	}
}

// Start launches both diagnostic listeners in the background. Listener
// failures are logged and recorded but never take the runner down.
func (s *Service) Start(ctx context.Context) {
	go s.serve(ctx, "healthz", net.JoinHostPort(HealthzHost, HealthzPort), s.Healthz.Start)
	go s.serve(ctx, "metrics", net.JoinHostPort(MetricsHost, MetricsPort), s.Metrics.Start)
}

func (s *Service) serve(ctx context.Context, name, addr string, start func(context.Context, string) error) {
	s.log.Info("starting diagnostic server", "server", name, "addr", addr)
	if err := start(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error("diagnostic server failed", "server", name, "err", err)
		metrics.RecordErrorDetails("diagnostic server failed", err)
	}
}

func (s *Service) Shutdown() {
	if err := s.Healthz.Shutdown(); err != nil {
		s.log.Error("healthz shutdown failed", "err", err)
	}
	if err := s.Metrics.Shutdown(); err != nil {
		s.log.Error("metrics shutdown failed", "err", err)
	}
	s.log.Info("diagnostic servers stopped")
}
