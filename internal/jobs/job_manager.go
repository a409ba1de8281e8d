package jobs

import (
	"fmt"
	"log/slog"

	"fuelsettlement/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	settlementFinalizationJob *SettlementFinalizationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the unit of work factory and settle handler to wire up job execution.
func NewJobManager(
	uowFactory commands.OrderUoWFactory,
	settleHandler commands.SettleOrderCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settlementFinalizationJob: NewSettlementFinalizationJob(uowFactory, settleHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.settlementFinalizationJob.Start(); err != nil {
		return fmt.Errorf("failed to start settlement finalization job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.settlementFinalizationJob.Stop()
}
