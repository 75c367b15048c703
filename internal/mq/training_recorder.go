package mq

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"traffix/internal/domain"
	"traffix/pkg/e"
)

// TrainingRecorder streams classified feature vectors to Kafka for the
// offline training job.
type TrainingRecorder struct {
	writer  MessageWriter
	timeout time.Duration
	logger  *slog.Logger
}

func NewTrainingRecorder(writer MessageWriter, logger *slog.Logger) *TrainingRecorder {
	return &TrainingRecorder{writer: writer, timeout: 2 * time.Second, logger: logger}
}

func (r *TrainingRecorder) Record(ctx context.Context, sample domain.TrainingSample) error {
	const op = "mq.TrainingRecorder.Record"

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := PublishJSON(ctx, r.writer, strconv.Itoa(sample.CityID), sample); err != nil {
		return e.Wrap(op, err)
	}
	r.logger.Debug("training sample published", slog.Int("city_id", sample.CityID), slog.Int("label", sample.PredictedLabel))
	return nil
}

func (r *TrainingRecorder) Close() error {
	return r.writer.Close()
}

// NoopRecorder drops samples when no broker is configured.
type NoopRecorder struct{}

func (NoopRecorder) Record(context.Context, domain.TrainingSample) error { return nil }

func (NoopRecorder) Close() error { return nil }
