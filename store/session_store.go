package store

import (
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/linguamatch/marketplace/models"
	"github.com/linguamatch/marketplace/seed"
)

var validate = validator.New()

type RegisterRequest struct {
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role" validate:"required,oneof=student teacher"`
	PhotoURL  string      `json:"photo_url,omitempty"`
	Languages []string    `json:"languages,omitempty"`
	Level     string      `json:"level,omitempty"`
	Country   string      `json:"country,omitempty"`
	Bio       string      `json:"bio,omitempty"`
	Timezone  string      `json:"timezone,omitempty"`
}

// SessionStore is the single source of truth for who is using the
// application right now. The async operations sleep for the configured
// latency to stand in for a network round-trip; once started a call
// always runs to completion and applies its effect, and when two calls
// overlap the last one to resolve wins.
type SessionStore struct {
	mu          sync.Mutex
	currentUser *models.User
	latency     time.Duration
	logger      *zap.Logger
}

func NewSessionStore(logger *zap.Logger, latency time.Duration) *SessionStore {
	return &SessionStore{latency: latency, logger: logger}
}

// Login never rejects: any email containing "teacher" resolves to the
// canned teacher profile, everything else to the canned student. The
// password is accepted but never inspected, a documented limitation of
// the mocked contract rather than something to fix silently.
func (s *SessionStore) Login(email, password string) (*models.User, error) {
	time.Sleep(s.latency)

	user := seed.MockStudent()
	if strings.Contains(email, "teacher") {
		user = seed.MockTeacherUser()
	}

	s.setCurrentUser(user)
	s.logger.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return &user, nil
}

// Register merges the supplied fields onto the canned profile for the
// requested role and signs the new user in. The mock performs no
// duplicate-email check.
func (s *SessionStore) Register(req RegisterRequest) (*models.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	time.Sleep(s.latency)

	user := seed.MockStudent()
	if req.Role == models.RoleTeacher {
		user = seed.MockTeacherUser()
	}
	mergeProfile(&user, req)

	s.setCurrentUser(user)
	s.logger.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return &user, nil
}

// Logout always succeeds, with or without a signed-in user.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.currentUser = nil
	s.mu.Unlock()
	s.logger.Info("User logged out")
}

// UpdateUser replaces the current user wholesale. No field-level
// validation happens here; the caller is responsible for well-formed
// input.
func (s *SessionStore) UpdateUser(user models.User) (*models.User, error) {
	time.Sleep(s.latency)

	s.setCurrentUser(user)
	s.logger.Info("User profile updated", zap.String("user_id", user.ID))
	return &user, nil
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *SessionStore) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	user := *s.currentUser
	return &user
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser != nil
}

func (s *SessionStore) setCurrentUser(user models.User) {
	s.mu.Lock()
	s.currentUser = &user
	s.mu.Unlock()
}

func mergeProfile(user *models.User, req RegisterRequest) {
	user.Role = req.Role
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.PhotoURL != "" {
		user.PhotoURL = req.PhotoURL
	}
	if len(req.Languages) > 0 {
		user.Languages = req.Languages
	}
	if req.Level != "" {
		user.Level = req.Level
	}
	if req.Country != "" {
		user.Country = req.Country
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Timezone != "" {
		user.Timezone = req.Timezone
	}
}
