package logging

import (
	"log/slog"
	"time"

	"github.com/gab-ehcoud/hostStar/internal/models"
	"gorm.io/gorm"
)

const (
	retentionDays   = 30
	cleanupInterval = 24 * time.Hour
)

// StartCleanup runs a daily goroutine that trims system_logs past the
// retention window.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -retentionDays)
				result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("log cleanup completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
