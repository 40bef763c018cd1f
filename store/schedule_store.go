package store

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/linguamatch/marketplace/models"
	"github.com/linguamatch/marketplace/utils"
)

// ScheduleStore owns the per-dashboard class lists and is the documented
// bridge between them and the catalog: booking a slot produces a
// scheduled class, submitting a review forwards to the catalog and flags
// the class as reviewed.
type ScheduleStore struct {
	mu      sync.Mutex
	classes []*models.Class
	catalog *CatalogStore
	latency time.Duration
	logger  *zap.Logger
}

func NewScheduleStore(logger *zap.Logger, catalog *CatalogStore, latency time.Duration) *ScheduleStore {
	return &ScheduleStore{catalog: catalog, latency: latency, logger: logger}
}

// Seed loads pre-existing dashboard lessons.
func (s *ScheduleStore) Seed(classes []models.Class) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range classes {
		class := classes[i]
		s.classes = append(s.classes, &class)
	}
}

// Book runs the booking confirmation flow: after the simulated API delay
// it marks the slot booked in the catalog and records the scheduled class
// for both dashboards. A slot that is already taken fails before any
// state changes.
func (s *ScheduleStore) Book(teacherID, slotID string, student models.User) (*models.Class, error) {
	time.Sleep(s.latency)

	slot, err := s.catalog.FindSlot(teacherID, slotID)
	if err != nil {
		return nil, err
	}
	if slot.IsBooked {
		return nil, ErrSlotUnavailable
	}
	if err := s.catalog.BookTimeSlot(teacherID, slotID); err != nil {
		return nil, err
	}

	teacher := s.catalog.FindTeacher(teacherID)
	language := ""
	if len(teacher.Languages) > 0 {
		language = teacher.Languages[0]
	}
	class := &models.Class{
		ID:           utils.NewID(),
		TeacherID:    teacherID,
		StudentID:    student.ID,
		StudentName:  student.Name,
		StudentEmail: student.Email,
		TeacherName:  teacher.Name,
		TeacherEmail: teacher.Email,
		Date:         slot.Date,
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
		Status:       models.ClassScheduled,
		Language:     language,
		Level:        student.Level,
	}

	s.mu.Lock()
	s.classes = append(s.classes, class)
	s.mu.Unlock()

	s.logger.Info("Class booked",
		zap.String("class_id", class.ID),
		zap.String("teacher_id", teacherID),
		zap.String("student_id", student.ID),
		zap.String("slot_id", slotID),
	)
	return class, nil
}

// AddMeetingLink attaches a meeting URL to an upcoming class.
func (s *ScheduleStore) AddMeetingLink(classID, meetingURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	class := s.findLocked(classID)
	if class == nil {
		return ErrClassNotFound
	}
	class.MeetingURL = meetingURL
	s.logger.Info("Meeting link added", zap.String("class_id", classID))
	return nil
}

// SubmitReview is the student review flow: only a completed class that
// has not been reviewed yet qualifies. The review lands on the teacher's
// catalog record and the class is flagged so the button never reappears.
func (s *ScheduleStore) SubmitReview(classID string, student models.User, rating int, comment string) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	class := s.findLocked(classID)
	if class == nil {
		return nil, ErrClassNotFound
	}
	if class.Status != models.ClassCompleted {
		return nil, ErrClassNotCompleted
	}
	if class.HasReview {
		return nil, ErrAlreadyReviewed
	}

	review := models.Review{
		ID:              utils.NewID(),
		TeacherID:       class.TeacherID,
		StudentID:       student.ID,
		StudentName:     student.Name,
		StudentPhotoURL: student.PhotoURL,
		Rating:          rating,
		Comment:         comment,
		Date:            time.Now().UTC().Format(time.RFC3339),
		ClassID:         class.ID,
	}
	if err := s.catalog.AddReview(class.TeacherID, review); err != nil {
		return nil, err
	}
	class.HasReview = true

	s.logger.Info("Review submitted",
		zap.String("class_id", classID),
		zap.String("teacher_id", class.TeacherID),
		zap.Int("rating", rating),
	)
	return &review, nil
}

// Complete moves a scheduled class to completed.
func (s *ScheduleStore) Complete(classID string) error {
	return s.transition(classID, models.ClassCompleted)
}

// Cancel moves a scheduled class to cancelled.
func (s *ScheduleStore) Cancel(classID string) error {
	return s.transition(classID, models.ClassCancelled)
}

// CompletePast sweeps scheduled classes whose end time is behind now and
// completes them, returning how many changed. Classes with malformed
// date/time fields are left alone.
func (s *ScheduleStore) CompletePast(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed := 0
	for _, class := range s.classes {
		if class.Status != models.ClassScheduled {
			continue
		}
		end, err := time.Parse("2006-01-02 15:04", class.Date+" "+class.EndTime)
		if err != nil {
			continue
		}
		if end.Before(now) {
			class.Status = models.ClassCompleted
			completed++
		}
	}
	return completed
}

// ClassesForStudent returns the student's lessons in insertion order.
func (s *ScheduleStore) ClassesForStudent(studentID string) []*models.Class {
	return s.filter(func(c *models.Class) bool { return c.StudentID == studentID })
}

// ClassesForTeacher returns the teacher's lessons in insertion order.
func (s *ScheduleStore) ClassesForTeacher(teacherID string) []*models.Class {
	return s.filter(func(c *models.Class) bool { return c.TeacherID == teacherID })
}

// FindClass returns the live class record, or nil.
func (s *ScheduleStore) FindClass(classID string) *models.Class {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(classID)
}

func (s *ScheduleStore) transition(classID string, to models.ClassStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	class := s.findLocked(classID)
	if class == nil {
		return ErrClassNotFound
	}
	if class.Status != models.ClassScheduled {
		return ErrInvalidTransition
	}
	class.Status = to
	s.logger.Info("Class status changed",
		zap.String("class_id", classID),
		zap.String("status", string(to)),
	)
	return nil
}

func (s *ScheduleStore) filter(keep func(*models.Class) bool) []*models.Class {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Class
	for _, class := range s.classes {
		if keep(class) {
			out = append(out, class)
		}
	}
	return out
}

func (s *ScheduleStore) findLocked(classID string) *models.Class {
	for _, class := range s.classes {
		if class.ID == classID {
			return class
		}
	}
	return nil
}
