package models

// Teacher defines the teacher model based on the 'teachers' table.
type Teacher struct {
	ID         int64   `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	Department *string `json:"department" db:"department"`
	Address    *string `json:"address" db:"address"`

	// Relations (populated when needed)
	Courses []*Course `json:"courses,omitempty"`
}
