package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/middleware"
)

// ActionRecorder observes action outcomes and storage latency.
type ActionRecorder interface {
	RecordActionOutcome(action, outcome string)
	ObserveStorage(operation string, duration time.Duration)
}

// BaseService provides common functionality for all services
type BaseService struct {
	Recorder ActionRecorder
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// recordOutcome reports a finished action when a recorder is configured.
func (s *BaseService) recordOutcome(action, outcome string) {
	if s.Recorder != nil {
		s.Recorder.RecordActionOutcome(action, outcome)
	}
}

// timeStorage runs a storage call and reports its latency.
func (s *BaseService) timeStorage(operation string, call func() error) error {
	start := time.Now()
	err := call()
	if s.Recorder != nil {
		s.Recorder.ObserveStorage(operation, time.Since(start))
	}
	return err
}
