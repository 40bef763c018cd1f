package seed

import "github.com/linguamatch/marketplace/models"

// Mock records backing the stores. Every function returns fresh values so
// callers own what they get and two stores never share state.

// MockStudent is the canned profile the mocked login resolves for any
// email that does not contain "teacher".
func MockStudent() models.User {
	return models.User{
		ID:        "101",
		Name:      "John Doe",
		Email:     "john@example.com",
		Role:      models.RoleStudent,
		PhotoURL:  "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&q=80&w=200&h=200",
		Languages: []string{"English", "Spanish"},
		Level:     "Intermediate",
		Country:   "United States",
		Bio:       "Passionate language learner",
	}
}

// MockTeacherUser is the canned profile for emails containing "teacher".
// It matches the roster entry with the same ID so dashboard mutations made
// while signed in land on a real catalog record.
func MockTeacherUser() models.User {
	return models.User{
		ID:        "102",
		Name:      "Jane Smith",
		Email:     "jane@example.com",
		Role:      models.RoleTeacher,
		PhotoURL:  "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=200&h=200",
		Languages: []string{"English", "French"},
		Country:   "France",
		Bio:       "Experienced language teacher",
	}
}

// Teachers returns the mock roster in its canonical order. Hourly rates
// deliberately span every price band offered by the search UI.
func Teachers() []*models.Teacher {
	return []*models.Teacher{
		{
			User: models.User{
				ID:        "1",
				Name:      "Sarah Johnson",
				Email:     "sarah@example.com",
				Role:      models.RoleTeacher,
				PhotoURL:  "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=200&h=200",
				Languages: []string{"English", "Spanish"},
				Country:   "United States",
				Bio:       "Certified English and Spanish teacher with 5+ years of experience.",
				Timezone:  "America/New_York",
			},
			HourlyRate:   25,
			Experience:   5,
			Rating:       4.8,
			TotalReviews: 127,
			WorkingHours: &models.WorkingHours{Start: "09:00", End: "17:00"},
			Reviews: []models.Review{
				{
					ID:              "1",
					TeacherID:       "1",
					StudentID:       "101",
					StudentName:     "John Doe",
					StudentPhotoURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&q=80&w=50&h=50",
					Rating:          5,
					Comment:         "Sarah is an excellent teacher! Her lessons are well-structured and she explains everything clearly.",
					Date:            "2024-03-15",
					ClassID:         "1",
				},
				{
					ID:          "2",
					TeacherID:   "1",
					StudentID:   "103",
					StudentName: "Emma Wilson",
					Rating:      4,
					Comment:     "Very patient and knowledgeable. Helped me improve my pronunciation significantly.",
					Date:        "2024-03-10",
					ClassID:     "2",
				},
			},
			Availability: []models.TimeSlot{
				{ID: "1", TeacherID: "1", Date: "2024-03-20", StartTime: "09:00", EndTime: "10:00", IsBooked: false},
				{ID: "2", TeacherID: "1", Date: "2024-03-20", StartTime: "10:00", EndTime: "11:00", IsBooked: true},
			},
		},
		{
			User: models.User{
				ID:        "2",
				Name:      "Miguel Rodriguez",
				Email:     "miguel@example.com",
				Role:      models.RoleTeacher,
				PhotoURL:  "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&q=80&w=200&h=200",
				Languages: []string{"Spanish", "Portuguese"},
				Country:   "Mexico",
				Bio:       "Native Spanish speaker focused on conversational fluency.",
				Timezone:  "America/Mexico_City",
			},
			HourlyRate:   18,
			Experience:   3,
			Rating:       4.6,
			TotalReviews: 84,
			WorkingHours: &models.WorkingHours{Start: "10:00", End: "18:00"},
		},
		{
			User: models.User{
				ID:        "3",
				Name:      "Claire Dubois",
				Email:     "claire@example.com",
				Role:      models.RoleTeacher,
				PhotoURL:  "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&q=80&w=200&h=200",
				Languages: []string{"French", "English"},
				Country:   "France",
				Bio:       "DELF examiner helping students pass official French exams.",
				Timezone:  "Europe/Paris",
			},
			HourlyRate:   35,
			Experience:   8,
			Rating:       4.9,
			TotalReviews: 203,
			WorkingHours: &models.WorkingHours{Start: "08:00", End: "16:00"},
		},
		{
			User: models.User{
				ID:        "4",
				Name:      "Yuki Tanaka",
				Email:     "yuki@example.com",
				Role:      models.RoleTeacher,
				PhotoURL:  "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&q=80&w=200&h=200",
				Languages: []string{"Japanese"},
				Country:   "Japan",
				Bio:       "JLPT preparation from N5 to N1 with custom study plans.",
				Timezone:  "Asia/Tokyo",
			},
			HourlyRate:   45,
			Experience:   6,
			Rating:       4.7,
			TotalReviews: 156,
			WorkingHours: &models.WorkingHours{Start: "07:00", End: "15:00"},
		},
		{
			User: models.User{
				ID:        "102",
				Name:      "Jane Smith",
				Email:     "jane@example.com",
				Role:      models.RoleTeacher,
				PhotoURL:  "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=200&h=200",
				Languages: []string{"English", "French"},
				Country:   "France",
				Bio:       "Experienced language teacher",
				Timezone:  "Europe/Paris",
			},
			HourlyRate:   28,
			Experience:   7,
			Rating:       4.5,
			TotalReviews: 92,
			WorkingHours: &models.WorkingHours{Start: "09:00", End: "17:00"},
		},
		{
			User: models.User{
				ID:        "5",
				Name:      "Hans Müller",
				Email:     "hans@example.com",
				Role:      models.RoleTeacher,
				PhotoURL:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&q=80&w=200&h=200",
				Languages: []string{"German", "English"},
				Country:   "Germany",
				Bio:       "Business German coach for professionals relocating to the DACH region.",
				Timezone:  "Europe/Berlin",
			},
			HourlyRate:   62,
			Experience:   10,
			Rating:       4.9,
			TotalReviews: 310,
			WorkingHours: &models.WorkingHours{Start: "09:00", End: "17:00"},
		},
	}
}

// Classes returns the seeded dashboard lessons: one already completed and
// reviewable by the mock student, one upcoming on the mock teacher's
// schedule.
func Classes() []models.Class {
	return []models.Class{
		{
			ID:          "1",
			TeacherID:   "1",
			StudentID:   "101",
			StudentName: "John Doe",
			TeacherName: "Sarah Johnson",
			Date:        "2024-03-20",
			StartTime:   "10:00",
			EndTime:     "11:00",
			Status:      models.ClassCompleted,
			Language:    "English",
			Level:       "Intermediate",
			MeetingURL:  "https://meet.google.com/abc-defg-hij",
		},
		{
			ID:           "2",
			TeacherID:    "102",
			StudentID:    "101",
			StudentName:  "John Doe",
			StudentEmail: "john@example.com",
			TeacherName:  "Jane Smith",
			Date:         "2024-03-22",
			StartTime:    "10:00",
			EndTime:      "11:00",
			Status:       models.ClassScheduled,
			Language:     "English",
			Level:        "Intermediate",
		},
	}
}
