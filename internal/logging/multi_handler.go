package logging

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler duplicates each record to every wrapped sink. The server uses
// it to keep JSON stdout logging while ERROR+ records also reach the
// system_logs table.
type MultiHandler struct {
	sinks []slog.Handler
}

func NewMultiHandler(sinks ...slog.Handler) *MultiHandler {
	return &MultiHandler{sinks: sinks}
}

// Enabled reports whether any sink wants the level; each sink re-checks in
// Handle so a level enabled for one is not forced on the others.
func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range m.sinks {
		if s.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers the record to every interested sink. One sink failing must
// not starve the rest, so errors are collected rather than short-circuited.
func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, s := range m.sinks {
		if !s.Enabled(ctx, record.Level) {
			continue
		}
		if err := s.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(m.sinks))
	for i, s := range m.sinks {
		next[i] = s.WithAttrs(attrs)
	}
	return &MultiHandler{sinks: next}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(m.sinks))
	for i, s := range m.sinks {
		next[i] = s.WithGroup(name)
	}
	return &MultiHandler{sinks: next}
}
