package models

// Course represents a course offered by the school, based on the 'courses' table.
// A course may run untaught, so TeacherID is nullable.
type Course struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	StartDate *Date  `json:"start_date" db:"start_date"`
	EndDate   *Date  `json:"end_date" db:"end_date"`
	TeacherID *int64 `json:"teacher_id" db:"teacher_id"`

	// Relations (populated when needed)
	Teacher *Teacher `json:"teacher,omitempty"`
}
