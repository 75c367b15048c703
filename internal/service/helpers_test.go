package service_test

import (
	"bytes"
	"log/slog"
	"time"

	"traffix/pkg/retry"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

var fastRetry = retry.Policy{MaxAttempts: 4, BaseDelay: time.Millisecond, Multiplier: 2}
