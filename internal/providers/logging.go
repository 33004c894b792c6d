package providers

import (
	"context"
	"log/slog"
	"time"

	"roster-service/internal/domain/players"
	"roster-service/internal/logging"
	"roster-service/internal/metrics"
)

// loggingSource wraps a PlayerSource with per-fetch logging and metrics.
type loggingSource struct {
	inner   PlayerSource
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
}

// NewLoggingSource decorates the given source with structured fetch logging
// and metric recording under the given source name.
func NewLoggingSource(inner PlayerSource, logger *slog.Logger, recorder *metrics.Recorder, name string) PlayerSource {
	return &loggingSource{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
	}
}

func (s *loggingSource) FetchPlayers(ctx context.Context, page, perPage int) ([]players.Player, error) {
	if s.inner == nil {
		return nil, ErrSourceUnavailable
	}

	start := time.Now()
	result, err := s.inner.FetchPlayers(ctx, page, perPage)
	elapsed := time.Since(start)

	s.metrics.RecordFeedAttempt(s.name, elapsed, err)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		if _, ok := AsRateLimitError(err); ok {
			s.metrics.RecordRateLimit(s.name)
			logging.Warn(logger, "player fetch rate limited",
				logging.FieldSource, s.name,
				logging.FieldPage, page,
			)
		} else {
			logging.Warn(logger, "player fetch failed",
				logging.FieldSource, s.name,
				logging.FieldPage, page,
				"error", err,
			)
		}
		return nil, err
	}

	logging.Info(logger, "player page fetched",
		logging.FieldSource, s.name,
		logging.FieldPage, page,
		logging.FieldCount, len(result),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return result, nil
}
