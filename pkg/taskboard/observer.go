package taskboard

import (
	"context"
	"log"
	"time"
)

// RequestEvent describes one completed request.
type RequestEvent struct {
	Method     string
	Path       string
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Observer receives a RequestEvent after every request. Implementations must
// be safe for concurrent use.
type Observer interface {
	ObserveRequest(ctx context.Context, ev RequestEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, ev RequestEvent)

func (f ObserverFunc) ObserveRequest(ctx context.Context, ev RequestEvent) {
	f(ctx, ev)
}

// LogObserver returns an Observer that writes one line per request to logger.
func LogObserver(logger *log.Logger) Observer {
	return ObserverFunc(func(_ context.Context, ev RequestEvent) {
		if ev.Err != nil {
			logger.Printf("%s %s %d %v: %v", ev.Method, ev.Path, ev.StatusCode, ev.Duration, ev.Err)
			return
		}
		logger.Printf("%s %s %d %v", ev.Method, ev.Path, ev.StatusCode, ev.Duration)
	})
}
