package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/sahilchouksey/unimatch-api/model"
)

const (
	JobExpireOffers   = "expire_offers"
	JobCleanupOldData = "cleanup_old_data"
)

// CronLogRetention is how long job logs are kept
const CronLogRetention = 30 * 24 * time.Hour

// jobResult is what a run records in cron_job_logs
type jobResult struct {
	affected int64
	message  string
}

// ExpireOffers is the time-driven half of offer expiry; reads already treat
// overdue offers as expired.
func (m *CronManager) ExpireOffers(ctx context.Context) (jobResult, error) {
	n, err := m.offers.ExpireOverdue(ctx)
	if err != nil {
		return jobResult{}, fmt.Errorf("expiring offers: %w", err)
	}
	return jobResult{affected: n, message: fmt.Sprintf("Expired %d offers", n)}, nil
}

// CleanupOldData removes job logs past the retention window
func (m *CronManager) CleanupOldData(ctx context.Context) (jobResult, error) {
	cutoff := m.now().Add(-CronLogRetention)
	res := m.db.WithContext(ctx).
		Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&model.CronJobLog{})
	if res.Error != nil {
		return jobResult{}, fmt.Errorf("deleting cron logs: %w", res.Error)
	}
	return jobResult{
		affected: res.RowsAffected,
		message:  fmt.Sprintf("Deleted %d cron job logs", res.RowsAffected),
	}, nil
}
