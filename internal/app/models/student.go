package models

// Student defines the student model based on the 'students' table.
// Email is unique across all students, enforced by the store.
type Student struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	Email   string  `json:"email" db:"email"`
	Address *string `json:"address" db:"address"`
}
