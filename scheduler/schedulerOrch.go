package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pitBossBot/scheduler/scheduler_jobs"
)

func SetupCron(db *gorm.DB, log *zap.Logger) {
	cronService := cron.New(cron.WithSeconds())

	_, err := cronService.AddFunc("0 */10 * * * *", func() {
		// Every 10 minutes
		err := scheduler_jobs.CheckLedgerDrift(db, log)
		if err != nil {
			log.Error("ledger drift check failed", zap.Error(err))
		}
	})
	if err != nil {
		log.Error("failed to register cron jobs", zap.Error(err))
		return
	}

	cronService.Start()
}
