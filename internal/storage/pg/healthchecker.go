package pg

import (
	"context"
)

// HealthChecker reports the writer healthy while its pool answers a ping.
type HealthChecker struct {
	writer *Writer
}

func NewHealthChecker(writer *Writer) *HealthChecker {
	return &HealthChecker{
		writer: writer,
	}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.writer == nil || hc.writer.pool == nil {
		return false
	}
	return hc.writer.pool.Ping(ctx) == nil
}

func (w *Writer) Healthy(ctx context.Context) bool {
	return NewHealthChecker(w).Healthy(ctx)
}
