package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"task-board-api/internal/metrics"
	"task-board-api/internal/repository"
)

// TokenCleanupJob clears tokens that passed their expiry so stale
// credentials do not accumulate in the users table
type TokenCleanupJob struct {
	userRepo repository.UserRepository
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewTokenCleanupJob creates a new TokenCleanupJob
func NewTokenCleanupJob(userRepo repository.UserRepository, m *metrics.Metrics, logger *zap.Logger) *TokenCleanupJob {
	return &TokenCleanupJob{
		userRepo: userRepo,
		metrics:  m,
		logger:   logger,
	}
}

// Run performs one cleanup pass
func (j *TokenCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cleared, err := j.userRepo.ClearExpiredTokens(ctx, time.Now())
	if err != nil {
		j.logger.Error("Failed to clear expired tokens", zap.Error(err))
		return
	}

	j.metrics.AddTokensExpired(cleared)
	if cleared > 0 {
		j.logger.Info("Cleared expired tokens", zap.Int64("count", cleared))
	}
}
