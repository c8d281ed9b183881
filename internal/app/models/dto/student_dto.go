package dto

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required"`
	Address *string `json:"address"`
}

// UpdateStudentRequest represents student update data; only supplied fields are written.
type UpdateStudentRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}
