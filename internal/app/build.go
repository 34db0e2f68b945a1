// Package app assembles the service from its parts so the binary and the
// integration tests share one wiring path.
package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mvallone/concierge/internal/answer"
	"github.com/mvallone/concierge/internal/assistant"
	"github.com/mvallone/concierge/internal/chat"
	"github.com/mvallone/concierge/internal/config"
	"github.com/mvallone/concierge/internal/dialogue"
	"github.com/mvallone/concierge/internal/history"
	"github.com/mvallone/concierge/internal/httpapi"
	"github.com/mvallone/concierge/internal/observability"
	"github.com/mvallone/concierge/internal/session"
)

type BuildResult struct {
	Config   config.Config
	API      *httpapi.Server
	Sessions *session.Manager
	Runner   *chat.Runner
	Metrics  *observability.Metrics

	// Cleanup should be called on shutdown to release external resources
	// (history store connections).
	Cleanup func() error
}

func Build(ctx context.Context, cfg config.Config) (*BuildResult, error) {
	metrics := observability.NewMetrics(cfg.MetricsNamespace)

	store, err := history.NewStore(ctx, cfg.HistoryURL)
	if err != nil {
		return nil, fmt.Errorf("history store init failed: %w", err)
	}

	answerService, err := answer.NewService(answer.Config{
		Mode:    cfg.AnswerMode,
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.AnswerBaseURL,
		Timeout: cfg.AnswerTimeout,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("answer service init failed: %w", err)
	}
	log.Printf("answer service: %s", answerModeLabel(cfg, answerService))

	stages := observability.NewStageWindow(256)
	timed := chat.TimedAnswerer{Inner: answerService, Metrics: metrics, Stages: stages}
	engine := dialogue.NewEngine(assistant.Registry(), timed, nil)

	sessions := session.NewManager(cfg.SessionInactivityTimeout)
	sessions.SetExpireHook(func(_ *session.Session) {
		metrics.SessionEvents.WithLabelValues("expired").Inc()
		metrics.ActiveSessions.Set(float64(sessions.ActiveCount()))
	})

	runner := chat.NewRunner(sessions, engine, store, metrics)
	runner.SetStageWindow(stages)

	api := httpapi.New(cfg, sessions, runner, store, metrics)

	return &BuildResult{
		Config:   cfg,
		API:      api,
		Sessions: sessions,
		Runner:   runner,
		Metrics:  metrics,
		Cleanup:  store.Close,
	}, nil
}

func answerModeLabel(cfg config.Config, svc answer.Service) string {
	if _, ok := svc.(*answer.MockService); ok {
		if strings.EqualFold(cfg.AnswerMode, "mock") {
			return "mock"
		}
		return "mock (no API key configured)"
	}
	return "gemini"
}
