package store

import (
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/linguamatch/marketplace/models"
)

// Filters holds the active search criteria. Level is read into state but
// intentionally has no matching predicate; adding one is a product
// decision, not a bug fix.
type Filters struct {
	Search     string `json:"search"`
	Language   string `json:"language"`
	Level      string `json:"level"`
	PriceRange string `json:"price_range"`
}

// FilterPatch shallow-merges into Filters; nil fields stay unchanged.
type FilterPatch struct {
	Search     *string
	Language   *string
	Level      *string
	PriceRange *string
}

// CatalogStore owns the teacher roster and the filtered view shown to
// users, and applies every availability, booking and review mutation.
// The filtered view shares pointers with the roster, so a mutation to a
// teacher is immediately visible in both without re-applying filters.
type CatalogStore struct {
	mu       sync.RWMutex
	teachers []*models.Teacher
	filtered []*models.Teacher
	filters  Filters
	logger   *zap.Logger
}

// NewCatalogStore seeds the roster; the filtered view starts as the whole
// roster, matching the empty default filters.
func NewCatalogStore(logger *zap.Logger, roster []*models.Teacher) *CatalogStore {
	filtered := make([]*models.Teacher, len(roster))
	copy(filtered, roster)
	return &CatalogStore{teachers: roster, filtered: filtered, logger: logger}
}

// SetFilters merges the patch into the active criteria. It does not
// recompute the filtered view; call ApplyFilters for that.
func (s *CatalogStore) SetFilters(patch FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.Search != nil {
		s.filters.Search = *patch.Search
	}
	if patch.Language != nil {
		s.filters.Language = *patch.Language
	}
	if patch.Level != nil {
		s.filters.Level = *patch.Level
	}
	if patch.PriceRange != nil {
		s.filters.PriceRange = *patch.PriceRange
	}
}

// ApplyFilters rebuilds the filtered view from the roster and the active
// criteria, preserving roster order. Idempotent for unchanged inputs.
func (s *CatalogStore) ApplyFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]*models.Teacher, 0, len(s.teachers))
	for _, teacher := range s.teachers {
		if s.filters.matches(teacher) {
			filtered = append(filtered, teacher)
		}
	}
	s.filtered = filtered
	s.logger.Debug("Filters applied",
		zap.Int("matched", len(filtered)),
		zap.Int("roster", len(s.teachers)),
	)
}

// UpdateTeacherAvailability replaces the teacher's availability list
// wholesale. Individual slots are never edited through this path.
func (s *CatalogStore) UpdateTeacherAvailability(teacherID string, slots []models.TimeSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	teacher := s.findLocked(teacherID)
	if teacher == nil {
		return ErrTeacherNotFound
	}
	teacher.Availability = append([]models.TimeSlot(nil), slots...)
	s.logger.Info("Teacher availability updated",
		zap.String("teacher_id", teacherID),
		zap.Int("slots", len(slots)),
	)
	return nil
}

// BookTimeSlot flips the slot's IsBooked flag to true. Booking an already
// booked slot is not an error; the flag simply stays true.
func (s *CatalogStore) BookTimeSlot(teacherID, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	teacher := s.findLocked(teacherID)
	if teacher == nil {
		return ErrTeacherNotFound
	}
	for i := range teacher.Availability {
		if teacher.Availability[i].ID == slotID {
			teacher.Availability[i].IsBooked = true
			s.logger.Info("Time slot booked",
				zap.String("teacher_id", teacherID),
				zap.String("slot_id", slotID),
			)
			return nil
		}
	}
	return ErrSlotNotFound
}

// AddReview appends the review and folds its rating into the running
// mean: (oldRating*oldTotal + rating) / (oldTotal+1), weighted by the
// pre-increment review count.
func (s *CatalogStore) AddReview(teacherID string, review models.Review) error {
	if err := validate.Struct(review); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	teacher := s.findLocked(teacherID)
	if teacher == nil {
		return ErrTeacherNotFound
	}
	teacher.Reviews = append(teacher.Reviews, review)
	teacher.Rating = (teacher.Rating*float64(teacher.TotalReviews) + float64(review.Rating)) /
		float64(teacher.TotalReviews+1)
	teacher.TotalReviews++

	s.logger.Info("Review added",
		zap.String("teacher_id", teacherID),
		zap.Int("rating", review.Rating),
		zap.Float64("new_rating", teacher.Rating),
		zap.Int("total_reviews", teacher.TotalReviews),
	)
	return nil
}

// Teachers returns the roster in insertion order.
func (s *CatalogStore) Teachers() []*models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Teacher, len(s.teachers))
	copy(out, s.teachers)
	return out
}

// FilteredTeachers returns the view as of the last ApplyFilters call.
func (s *CatalogStore) FilteredTeachers() []*models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Teacher, len(s.filtered))
	copy(out, s.filtered)
	return out
}

func (s *CatalogStore) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// FindTeacher returns the live roster record, or nil.
func (s *CatalogStore) FindTeacher(teacherID string) *models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(teacherID)
}

// FindSlot returns a copy of the named slot.
func (s *CatalogStore) FindSlot(teacherID, slotID string) (models.TimeSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teacher := s.findLocked(teacherID)
	if teacher == nil {
		return models.TimeSlot{}, ErrTeacherNotFound
	}
	for _, slot := range teacher.Availability {
		if slot.ID == slotID {
			return slot, nil
		}
	}
	return models.TimeSlot{}, ErrSlotNotFound
}

func (s *CatalogStore) findLocked(teacherID string) *models.Teacher {
	for _, teacher := range s.teachers {
		if teacher.ID == teacherID {
			return teacher
		}
	}
	return nil
}

func (f Filters) matches(teacher *models.Teacher) bool {
	// Level deliberately absent here.
	return f.matchesSearch(teacher) && f.matchesLanguage(teacher) && f.matchesPrice(teacher)
}

func (f Filters) matchesSearch(teacher *models.Teacher) bool {
	if f.Search == "" {
		return true
	}
	query := strings.ToLower(f.Search)
	if strings.Contains(strings.ToLower(teacher.Name), query) {
		return true
	}
	for _, language := range teacher.Languages {
		if strings.Contains(strings.ToLower(language), query) {
			return true
		}
	}
	return false
}

func (f Filters) matchesLanguage(teacher *models.Teacher) bool {
	if f.Language == "" {
		return true
	}
	for _, language := range teacher.Languages {
		if language == f.Language {
			return true
		}
	}
	return false
}

func (f Filters) matchesPrice(teacher *models.Teacher) bool {
	if f.PriceRange == "" {
		return true
	}
	min, max, hasMax := parsePriceRange(f.PriceRange)
	if teacher.HourlyRate < min {
		return false
	}
	if hasMax && teacher.HourlyRate > max {
		return false
	}
	return true
}

// parsePriceRange reads "min-max"; a missing or unparsable max leaves the
// range unbounded above.
func parsePriceRange(priceRange string) (min, max float64, hasMax bool) {
	parts := strings.SplitN(priceRange, "-", 2)
	min, _ = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if len(parts) == 2 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
			return min, v, true
		}
	}
	return min, 0, false
}
