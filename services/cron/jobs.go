package cron

import (
	"fmt"
	"time"

	"github.com/vaibhavkumar/portfolio-api/model"
)

// cronLogRetentionDays is how long job log rows are kept.
const cronLogRetentionDays = 90

// SnapshotContentStats records how many projects, blogs and contact
// messages are stored. Runs hourly.
func (m *CronManager) SnapshotContentStats() {
	jobName := "content_stats"

	var projects, blogs, contacts int64
	if err := m.db.Model(&model.Project{}).Count(&projects).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to count projects: %w", err))
		return
	}
	if err := m.db.Model(&model.Blog{}).Count(&blogs).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to count blogs: %w", err))
		return
	}
	if err := m.db.Model(&model.Contact{}).Count(&contacts).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to count contacts: %w", err))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("projects=%d blogs=%d contacts=%d", projects, blogs, contacts))
}

// PruneCronLogs deletes job log rows older than the retention window.
// Runs daily.
func (m *CronManager) PruneCronLogs() {
	jobName := "prune_cron_logs"

	cutoff := time.Now().AddDate(0, 0, -cronLogRetentionDays)
	result := m.db.Where("created_at < ? AND status <> ?", cutoff, "running").Delete(&model.CronJobLog{})
	if result.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to prune logs: %w", result.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Pruned %d log rows", result.RowsAffected))
}
