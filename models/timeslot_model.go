package models

// TimeSlot is one bookable hour in a teacher's availability. IsBooked
// flips false to true exactly once; slots are never deleted individually,
// only replaced wholesale when availability is regenerated.
type TimeSlot struct {
	ID        string `json:"id"`
	TeacherID string `json:"teacher_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBooked  bool   `json:"is_booked"`
}
