package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// InMemoryEventEmitter implements the EventEmitter interface using
// synchronous, in-process dispatch. Handlers run in registration order
// on the caller's goroutine; a failing handler does not stop the rest.
type InMemoryEventEmitter struct {
	mu       sync.RWMutex
	handlers []EventHandler
	logger   *slog.Logger
}

// NewInMemoryEventEmitter creates a new emitter with no registered
// handlers. If logger is nil, slog.Default() is used.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		logger: logger.With("component", "event_emitter"),
	}
}

// RegisterHandler adds a handler that will receive all subsequently
// emitted events.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	if handler == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
}

// EmitEvent dispatches the event to every registered handler. Handler
// errors are collected and joined; the event still reaches all handlers.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *ProgressEvent) error {
	if event == nil {
		return errors.New("cannot emit nil event")
	}

	e.mu.RLock()
	handlers := make([]EventHandler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			e.logger.ErrorContext(ctx, "event handler failed",
				"event_type", event.Type,
				"event_id", event.ID,
				"error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LoggingHandler is an EventHandler that records every event through
// structured logging. It is the default sink wired at startup.
type LoggingHandler struct {
	logger *slog.Logger
}

// NewLoggingHandler creates a handler that logs events at info level.
func NewLoggingHandler(logger *slog.Logger) *LoggingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingHandler{logger: logger.With("component", "event_log")}
}

// HandleEvent logs the event. It never returns an error.
func (h *LoggingHandler) HandleEvent(ctx context.Context, event *ProgressEvent) error {
	attrs := []any{
		"event_type", event.Type,
		"event_id", event.ID,
		"user_id", event.UserID,
	}
	switch event.Type {
	case EventLevelUp:
		attrs = append(attrs, "level", event.Level)
	case EventTopicCompleted:
		attrs = append(attrs, "topic_id", event.TopicID, "xp_delta", event.XPDelta)
	case EventMasteryUnlock:
		attrs = append(attrs, "subject", event.Subject, "xp_delta", event.XPDelta)
	case EventNoteShared:
		attrs = append(attrs, "xp_delta", event.XPDelta)
	}
	h.logger.InfoContext(ctx, "progress event", attrs...)
	return nil
}
