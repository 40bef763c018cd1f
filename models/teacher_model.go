package models

type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Teacher extends User with the fields only a teacher carries. Rating is
// always the running mean of every review ever added; TotalReviews equals
// the length of Reviews whenever reviews are tracked.
type Teacher struct {
	User
	HourlyRate   float64       `json:"hourly_rate"`
	Experience   int           `json:"experience"`
	Rating       float64       `json:"rating"`
	TotalReviews int           `json:"total_reviews"`
	Reviews      []Review      `json:"reviews,omitempty"`
	Availability []TimeSlot    `json:"availability,omitempty"`
	WorkingHours *WorkingHours `json:"working_hours,omitempty"`
}
