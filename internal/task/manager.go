package task

import (
	"github.com/chokiwild/ChainFund-Dapp/internal/config"
	"github.com/chokiwild/ChainFund-Dapp/internal/coordinator"
	"github.com/chokiwild/ChainFund-Dapp/internal/logger"
	"github.com/go-co-op/gocron/v2"
)

// Manager schedules the background jobs of the session service.
type Manager struct {
	scheduler gocron.Scheduler
	coord     *coordinator.Coordinator
	config    *config.Config
}

// NewManager creates a task manager.
func NewManager(coord *coordinator.Coordinator, cfg *config.Config) *Manager {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	return &Manager{
		scheduler: s,
		coord:     coord,
		config:    cfg,
	}
}

// Start creates a manager, registers all jobs and starts the scheduler.
func Start(coord *coordinator.Coordinator, cfg *config.Config) *Manager {
	manager := NewManager(coord, cfg)
	manager.RegisterJobs()
	manager.scheduler.Start()

	logger.Info("Task manager started successfully")
	return manager
}

// RegisterJobs registers all background jobs.
func (m *Manager) RegisterJobs() {
	m.RegisterViewRefreshJob()
}

// RegisterViewRefreshJob registers the periodic view refresh.
func (m *Manager) RegisterViewRefreshJob() {
	job := NewViewRefreshJob(m.coord, m.config)

	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop shuts the scheduler down.
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Task manager stopped")
}
