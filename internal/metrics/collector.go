package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Counter reports the total number of rows of one entity
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// BusinessMetricsCollector collects business metrics periodically
type BusinessMetricsCollector struct {
	users   Counter
	boards  Counter
	tasks   Counter
	metrics *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(users, boards, tasks Counter, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		users:   users,
		boards:  boards,
		tasks:   tasks,
		metrics: metrics,
		logger:  logger,
		ticker:  time.NewTicker(60 * time.Second),
		done:    make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		// collect once immediately, then on every tick
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

// collect gathers business metrics
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if count, err := c.users.Count(ctx); err != nil {
		c.logger.Error("Failed to count users", zap.Error(err))
	} else {
		c.metrics.SetUsersTotal(count)
	}

	if count, err := c.boards.Count(ctx); err != nil {
		c.logger.Error("Failed to count boards", zap.Error(err))
	} else {
		c.metrics.SetBoardsTotal(count)
	}

	if count, err := c.tasks.Count(ctx); err != nil {
		c.logger.Error("Failed to count tasks", zap.Error(err))
	} else {
		c.metrics.SetTasksTotal(count)
	}
}
