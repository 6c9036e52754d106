package task

import (
	"context"
	"time"

	"github.com/chokiwild/ChainFund-Dapp/internal/config"
	"github.com/chokiwild/ChainFund-Dapp/internal/coordinator"
	"github.com/chokiwild/ChainFund-Dapp/internal/logger"
	"github.com/go-co-op/gocron/v2"
)

// ViewRefreshJob periodically reloads the registry and balances when no
// transaction is pending confirmation, so the session picks up ledger
// activity from other parties. Deadline expiry needs no job: display
// states are derived against the wall clock on every read.
type ViewRefreshJob struct {
	coord  *coordinator.Coordinator
	config *config.Config
}

// NewViewRefreshJob creates the refresh job.
func NewViewRefreshJob(coord *coordinator.Coordinator, cfg *config.Config) *ViewRefreshJob {
	return &ViewRefreshJob{coord: coord, config: cfg}
}

// GetName returns the job name.
func (j *ViewRefreshJob) GetName() string {
	return "view_refresh"
}

// GetSchedule returns the job schedule.
func (j *ViewRefreshJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.RefreshInterval) * time.Second)
}

// Execute runs one refresh pass.
func (j *ViewRefreshJob) Execute() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(j.config.Task.RefreshInterval)*time.Second)
	defer cancel()

	if err := j.coord.TryResync(ctx); err != nil {
		// Prior view stays in place; the next pass retries.
		logger.Warn("Background registry refresh failed: %v", err)
	}
}
