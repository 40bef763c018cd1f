package jobs

import (
	"time"

	"go.uber.org/zap"

	"github.com/linguamatch/marketplace/store"
)

// CompletePastClasses returns the cron task that moves scheduled classes
// whose end time has passed into the completed state, making them
// eligible for student reviews.
func CompletePastClasses(schedule *store.ScheduleStore, logger *zap.Logger) func() {
	return func() {
		logger.Info("Running job: CompletePastClasses...")

		completed := schedule.CompletePast(time.Now())
		if completed == 0 {
			logger.Info("No finished classes found.")
			return
		}
		logger.Info("Marked classes as completed", zap.Int("count", completed))
	}
}
