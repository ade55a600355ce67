package testing

import (
	"context"
	"log/slog"
	"sync"
)

// LogCapture is a slog.Handler that records every message at Debug level
// or above, so tests can assert on what a package logged
type LogCapture struct {
	mu      sync.Mutex
	records []slog.Record
}

// CaptureLogs installs a LogCapture as the default slog handler. The
// returned function restores the previous default
func CaptureLogs() (*LogCapture, func()) {
	h := &LogCapture{}
	old := slog.Default()
	slog.SetDefault(slog.New(h))
	return h, func() {
		slog.SetDefault(old)
	}
}

// Messages returns the messages logged so far, in order
func (h *LogCapture) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make([]string, len(h.records))
	for i, r := range h.records {
		res[i] = r.Message
	}
	return res
}

// Attr returns the value of the named attribute on the last record that
// carried the given message
func (h *LogCapture) Attr(msg, key string) (slog.Value, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := len(h.records) - 1; i >= 0; i-- {
		r := h.records[i]
		if r.Message != msg {
			continue
		}
		var res slog.Value
		var found bool
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == key {
				res, found = a.Value, true
				return false
			}
			return true
		})
		return res, found
	}
	return slog.Value{}, false
}

func (h *LogCapture) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelDebug
}

func (h *LogCapture) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *LogCapture) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *LogCapture) WithGroup(_ string) slog.Handler {
	return h
}
