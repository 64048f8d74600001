// Package job contains scheduled maintenance jobs run by the server's cron.
package job

import (
	"time"

	"ttcloud/database"
	"ttcloud/logger"

	"go.uber.org/atomic"
)

// ClearSessionsJob deletes expired rows from the sessions table. Expired
// cookies are already rejected at the store level; this sweep keeps the table
// from growing unbounded.
type ClearSessionsJob struct {
	running atomic.Bool
}

func NewClearSessionsJob() *ClearSessionsJob {
	return new(ClearSessionsJob)
}

// Run implements cron.Job. Overlapping runs are skipped.
func (j *ClearSessionsJob) Run() {
	if !j.running.CompareAndSwap(false, true) {
		return
	}
	defer j.running.Store(false)

	db := database.GetDB()
	result := db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now())
	if result.Error != nil {
		logger.Warning("clear expired sessions err:", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		logger.Debugf("cleared %d expired sessions", result.RowsAffected)
	}
}
