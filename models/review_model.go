package models

// Review is created once via the review-submission flow and never mutated
// or deleted afterwards.
type Review struct {
	ID              string `json:"id"`
	TeacherID       string `json:"teacher_id"`
	StudentID       string `json:"student_id"`
	StudentName     string `json:"student_name"`
	StudentPhotoURL string `json:"student_photo_url,omitempty"`
	Rating          int    `json:"rating" validate:"required,min=1,max=5"`
	Comment         string `json:"comment"`
	Date            string `json:"date"`
	ClassID         string `json:"class_id"`
}
