package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/linguamatch/marketplace/models"
	"github.com/linguamatch/marketplace/seed"
)

func newSchedule() (*ScheduleStore, *CatalogStore) {
	catalog := newCatalog()
	schedule := NewScheduleStore(zap.NewNop(), catalog, 0)
	schedule.Seed(seed.Classes())
	return schedule, catalog
}

func TestBookCreatesScheduledClass(t *testing.T) {
	schedule, catalog := newSchedule()
	student := seed.MockStudent()

	class, err := schedule.Book("1", "1", student)
	require.NoError(t, err)

	assert.Equal(t, models.ClassScheduled, class.Status)
	assert.Equal(t, "1", class.TeacherID)
	assert.Equal(t, student.ID, class.StudentID)
	assert.Equal(t, "Sarah Johnson", class.TeacherName)
	assert.Equal(t, "2024-03-20", class.Date)
	assert.Equal(t, "09:00", class.StartTime)
	assert.Equal(t, "10:00", class.EndTime)
	assert.Equal(t, "English", class.Language)
	assert.Equal(t, "Intermediate", class.Level)

	slot, err := catalog.FindSlot("1", "1")
	require.NoError(t, err)
	assert.True(t, slot.IsBooked)

	studentClasses := schedule.ClassesForStudent(student.ID)
	assert.Equal(t, class.ID, studentClasses[len(studentClasses)-1].ID)
	teacherClasses := schedule.ClassesForTeacher("1")
	assert.Equal(t, class.ID, teacherClasses[len(teacherClasses)-1].ID)
}

func TestBookTakenSlot(t *testing.T) {
	schedule, _ := newSchedule()
	student := seed.MockStudent()
	before := len(schedule.ClassesForStudent(student.ID))

	// Slot "2" is seeded as already booked.
	_, err := schedule.Book("1", "2", student)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Len(t, schedule.ClassesForStudent(student.ID), before)
}

func TestBookUnknownTeacherOrSlot(t *testing.T) {
	schedule, _ := newSchedule()
	student := seed.MockStudent()

	_, err := schedule.Book("no-such-teacher", "1", student)
	assert.ErrorIs(t, err, ErrTeacherNotFound)

	_, err = schedule.Book("1", "no-such-slot", student)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestSubmitReviewMarksClassAndUpdatesTeacher(t *testing.T) {
	schedule, catalog := newSchedule()
	student := seed.MockStudent()

	// Class "1" is seeded completed and unreviewed, taught by Sarah.
	review, err := schedule.SubmitReview("1", student, 5, "Great class!")
	require.NoError(t, err)

	assert.Equal(t, "1", review.TeacherID)
	assert.Equal(t, "1", review.ClassID)
	assert.Equal(t, student.ID, review.StudentID)
	assert.NotEmpty(t, review.ID)
	assert.NotEmpty(t, review.Date)

	assert.True(t, schedule.FindClass("1").HasReview)

	sarah := catalog.FindTeacher("1")
	assert.Equal(t, 128, sarah.TotalReviews)
	oldRating, oldCount := 4.8, float64(127)
	assert.Equal(t, (oldRating*oldCount+5)/(oldCount+1), sarah.Rating)

	_, err = schedule.SubmitReview("1", student, 4, "Again")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestSubmitReviewGuards(t *testing.T) {
	schedule, _ := newSchedule()
	student := seed.MockStudent()

	// Class "2" is still scheduled.
	_, err := schedule.SubmitReview("2", student, 5, "Too early")
	assert.ErrorIs(t, err, ErrClassNotCompleted)

	_, err = schedule.SubmitReview("no-such-class", student, 5, "Nope")
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestSubmitReviewInvalidRatingLeavesClassUnreviewed(t *testing.T) {
	schedule, catalog := newSchedule()
	student := seed.MockStudent()
	before := catalog.FindTeacher("1").TotalReviews

	_, err := schedule.SubmitReview("1", student, 6, "Out of range")
	assert.Error(t, err)
	assert.False(t, schedule.FindClass("1").HasReview)
	assert.Equal(t, before, catalog.FindTeacher("1").TotalReviews)
}

func TestAddMeetingLink(t *testing.T) {
	schedule, _ := newSchedule()

	require.NoError(t, schedule.AddMeetingLink("2", "https://meet.example.com/xyz"))
	assert.Equal(t, "https://meet.example.com/xyz", schedule.FindClass("2").MeetingURL)

	assert.ErrorIs(t, schedule.AddMeetingLink("no-such", "https://x"), ErrClassNotFound)
}

func TestStatusTransitionsAreOneWay(t *testing.T) {
	schedule, _ := newSchedule()

	// scheduled -> cancelled is allowed once.
	require.NoError(t, schedule.Cancel("2"))
	assert.Equal(t, models.ClassCancelled, schedule.FindClass("2").Status)

	assert.ErrorIs(t, schedule.Complete("2"), ErrInvalidTransition)
	assert.ErrorIs(t, schedule.Cancel("2"), ErrInvalidTransition)

	// Class "1" is completed; nothing moves it back.
	assert.ErrorIs(t, schedule.Cancel("1"), ErrInvalidTransition)
	assert.ErrorIs(t, schedule.Complete("1"), ErrInvalidTransition)

	assert.ErrorIs(t, schedule.Complete("no-such"), ErrClassNotFound)
}

func TestCompletePastSweepsOnlyFinishedClasses(t *testing.T) {
	catalog := newCatalog()
	schedule := NewScheduleStore(zap.NewNop(), catalog, 0)
	schedule.Seed([]models.Class{
		{ID: "past", TeacherID: "1", StudentID: "101", Date: "2024-01-01",
			StartTime: "09:00", EndTime: "10:00", Status: models.ClassScheduled},
		{ID: "future", TeacherID: "1", StudentID: "101", Date: "2999-01-01",
			StartTime: "09:00", EndTime: "10:00", Status: models.ClassScheduled},
		{ID: "done", TeacherID: "1", StudentID: "101", Date: "2024-01-01",
			StartTime: "09:00", EndTime: "10:00", Status: models.ClassCancelled},
	})

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, schedule.CompletePast(now))
	assert.Equal(t, models.ClassCompleted, schedule.FindClass("past").Status)
	assert.Equal(t, models.ClassScheduled, schedule.FindClass("future").Status)
	assert.Equal(t, models.ClassCancelled, schedule.FindClass("done").Status)

	// Second sweep finds nothing new.
	assert.Equal(t, 0, schedule.CompletePast(now))
}

func TestSeedCopiesClasses(t *testing.T) {
	schedule := NewScheduleStore(zap.NewNop(), newCatalog(), 0)
	source := seed.Classes()
	schedule.Seed(source)

	source[0].Status = models.ClassCancelled
	assert.Equal(t, models.ClassCompleted, schedule.FindClass("1").Status)
}
