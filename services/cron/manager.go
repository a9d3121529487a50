package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
)

// Job statuses recorded in cron_job_logs
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// OfferExpirer moves overdue active offers to expired
type OfferExpirer interface {
	ExpireOverdue(ctx context.Context) (int64, error)
}

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron   *cron.Cron
	db     *gorm.DB
	offers OfferExpirer
	log    zerolog.Logger
	now    func() time.Time
}

// NewCronManager creates a new cron manager
func NewCronManager(db *gorm.DB, offers OfferExpirer) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:   c,
		db:     db,
		offers: offers,
		log:    logger.With("cron"),
		now:    time.Now,
	}
}

// Start registers all jobs and starts the scheduler
func (m *CronManager) Start() error {
	m.log.Info().Msg("Starting cron jobs")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	m.log.Info().Int("jobs", len(m.cron.Entries())).Msg("Cron jobs started")
	return nil
}

// Stop waits for running jobs to finish
func (m *CronManager) Stop() {
	m.log.Info().Msg("Stopping cron jobs")
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.log.Info().Msg("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// Every hour: expire active offers past their expiry date
	_, err := m.cron.AddFunc("0 0 * * * *", func() {
		m.run(JobExpireOffers, 2*time.Minute, m.ExpireOffers)
	})
	if err != nil {
		return err
	}

	// Daily at 2 AM: cleanup old job logs
	_, err = m.cron.AddFunc("0 0 2 * * *", func() {
		m.run(JobCleanupOldData, 5*time.Minute, m.CleanupOldData)
	})
	if err != nil {
		return err
	}

	return nil
}

// run executes fn under a timeout and records the run in cron_job_logs
func (m *CronManager) run(jobName string, timeout time.Duration, fn func(ctx context.Context) (jobResult, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	started := m.now()
	m.log.Info().Str("job", jobName).Msg("Starting job")

	entry := model.CronJobLog{
		JobName:   jobName,
		Status:    StatusRunning,
		StartedAt: started,
	}
	if err := m.db.WithContext(ctx).Create(&entry).Error; err != nil {
		m.log.Warn().Err(err).Str("job", jobName).Msg("Failed to record job start")
	}

	result, err := fn(ctx)

	finished := m.now()
	updates := map[string]interface{}{
		"affected":     result.affected,
		"completed_at": finished,
		"duration":     finished.Sub(started).Milliseconds(),
	}
	if err != nil {
		m.log.Error().Err(err).Str("job", jobName).Msg("Job failed")
		updates["status"] = StatusFailed
		updates["error_msg"] = err.Error()
	} else {
		m.log.Info().Str("job", jobName).Int64("affected", result.affected).Msg("Job completed")
		updates["status"] = StatusCompleted
		updates["message"] = result.message
	}

	if entry.ID == 0 {
		return
	}
	if err := m.db.Model(&model.CronJobLog{}).Where("id = ?", entry.ID).Updates(updates).Error; err != nil {
		m.log.Warn().Err(err).Str("job", jobName).Msg("Failed to record job result")
	}
}
