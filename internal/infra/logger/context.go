package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type requestIDKey struct{}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// ForContext returns a logger tagged with the request ID carried by ctx, if any.
func (l *Logger) ForContext(ctx context.Context) *Logger {
	id := RequestID(ctx)
	if id == "" {
		return l
	}
	return l.With(logrus.Fields{"request_id": id})
}
