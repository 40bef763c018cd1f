package main

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	config "github.com/linguamatch/marketplace/configs"
	"github.com/linguamatch/marketplace/jobs"
	"github.com/linguamatch/marketplace/logging"
	"github.com/linguamatch/marketplace/seed"
	"github.com/linguamatch/marketplace/store"
	"github.com/linguamatch/marketplace/utils"
)

// The demo drives the stores through the marketplace flows the UI would:
// a teacher publishes availability, a student filters the catalog, books
// a slot, and reviews the finished class.
func main() {
	logger := logging.NewLogger(config.Env())
	defer logger.Sync()

	latency := config.SimulatedLatency()
	catalog := store.NewCatalogStore(logger, seed.Teachers())
	session := store.NewSessionStore(logger, latency)
	schedule := store.NewScheduleStore(logger, catalog, latency)
	schedule.Seed(seed.Classes())

	c := cron.New()
	c.AddFunc("*/5 * * * *", jobs.CompletePastClasses(schedule, logger))
	c.Start()
	defer c.Stop()
	logger.Info("✅ Cron job for class status scheduled successfully.")

	// A teacher signs in and publishes today's availability.
	teacher, err := session.Login("jane.teacher@example.com", "secret")
	if err != nil {
		logger.Fatal("🔥 Login failed", zap.Error(err))
	}
	today := time.Now().Format("2006-01-02")
	slots := utils.GenerateDaySlots(teacher.ID, today, "09:00", "17:00")
	if err := catalog.UpdateTeacherAvailability(teacher.ID, slots); err != nil {
		logger.Fatal("🔥 Availability update failed", zap.Error(err))
	}
	session.Logout()

	// A student signs in and looks for a Spanish teacher in budget.
	student, err := session.Login("john@example.com", "secret")
	if err != nil {
		logger.Fatal("🔥 Login failed", zap.Error(err))
	}
	language := "Spanish"
	priceRange := "20-40"
	catalog.SetFilters(store.FilterPatch{Language: &language, PriceRange: &priceRange})
	catalog.ApplyFilters()

	results := catalog.FilteredTeachers()
	logger.Info("Teachers matched", zap.Int("count", len(results)))
	if len(results) == 0 {
		logger.Fatal("🔥 No teachers matched the filters")
	}

	pick := results[0]
	slotID := ""
	for _, slot := range pick.Availability {
		if !slot.IsBooked {
			slotID = slot.ID
			break
		}
	}
	if slotID == "" {
		logger.Fatal("🔥 No open slots for teacher", zap.String("teacher_id", pick.ID))
	}

	class, err := schedule.Book(pick.ID, slotID, *student)
	if err != nil {
		logger.Fatal("🔥 Booking failed", zap.Error(err))
	}
	logger.Info("✅ Class booked successfully",
		zap.String("class_id", class.ID),
		zap.String("teacher", class.TeacherName),
		zap.String("date", class.Date),
		zap.String("start", class.StartTime),
	)

	// The teacher shares the meeting link, the class runs, and the
	// student leaves a review.
	if err := schedule.AddMeetingLink(class.ID, "https://meet.google.com/abc-defg-hij"); err != nil {
		logger.Fatal("🔥 Adding meeting link failed", zap.Error(err))
	}
	if err := schedule.Complete(class.ID); err != nil {
		logger.Fatal("🔥 Completing class failed", zap.Error(err))
	}
	review, err := schedule.SubmitReview(class.ID, *student, 5, "Great lesson, clear explanations and lots of speaking practice.")
	if err != nil {
		logger.Fatal("🔥 Review submission failed", zap.Error(err))
	}

	updated := catalog.FindTeacher(class.TeacherID)
	logger.Info("✅ Review recorded",
		zap.String("review_id", review.ID),
		zap.Float64("teacher_rating", updated.Rating),
		zap.Int("total_reviews", updated.TotalReviews),
	)
}
