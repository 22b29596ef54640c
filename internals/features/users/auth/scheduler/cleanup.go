package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"coachfit_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler borra tokens expirados una vez al día.
func StartBlacklistCleanupScheduler(db *gorm.DB) *cron.Cron {
	ttlDays := 7
	if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			ttlDays = parsed
		}
	}

	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		cleanupOnce(db, ttlDays)
	})
	if err != nil {
		log.Printf("[CLEANUP ERROR] No se pudo programar la limpieza: %v", err)
		return c
	}
	c.Start()
	return c
}

func cleanupOnce(db *gorm.DB, ttlDays int) {
	deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	res := db.
		Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
		Delete(&model.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[CLEANUP ERROR] No se pudieron borrar tokens: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] %d tokens expirados eliminados", res.RowsAffected)
	}
}
