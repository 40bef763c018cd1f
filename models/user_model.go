package models

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// User is the shared identity record for both roles. Role is fixed at
// creation; no role-change operation exists.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      Role     `json:"role"`
	PhotoURL  string   `json:"photo_url,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Level     string   `json:"level,omitempty"`
	Country   string   `json:"country,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`
}
