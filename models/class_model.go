package models

type ClassStatus string

const (
	ClassScheduled ClassStatus = "scheduled"
	ClassCompleted ClassStatus = "completed"
	ClassCancelled ClassStatus = "cancelled"
)

// Class is a scheduled or historical lesson. Status only moves forward:
// scheduled to completed, or scheduled to cancelled.
type Class struct {
	ID           string      `json:"id"`
	TeacherID    string      `json:"teacher_id"`
	StudentID    string      `json:"student_id"`
	StudentName  string      `json:"student_name,omitempty"`
	StudentEmail string      `json:"student_email,omitempty"`
	TeacherName  string      `json:"teacher_name,omitempty"`
	TeacherEmail string      `json:"teacher_email,omitempty"`
	Date         string      `json:"date"`
	StartTime    string      `json:"start_time"`
	EndTime      string      `json:"end_time"`
	Status       ClassStatus `json:"status"`
	Language     string      `json:"language"`
	Level        string      `json:"level"`
	MeetingURL   string      `json:"meeting_url,omitempty"`
	HasReview    bool        `json:"has_review"`
}
