package dto

import "github.com/edukit/school-api/internal/app/models"

// CreateTeacherRequest represents teacher creation data
type CreateTeacherRequest struct {
	Name       string  `json:"name" binding:"required"`
	Department *string `json:"department"`
	Address    *string `json:"address"`
}

// UpdateTeacherRequest represents teacher update data; only supplied fields are written.
type UpdateTeacherRequest struct {
	Name       *string `json:"name"`
	Department *string `json:"department"`
	Address    *string `json:"address"`
}

// TeacherDetail is the detailed view of a teacher. The courses key is always
// present, an empty array when the teacher has none; the list view omits it.
type TeacherDetail struct {
	models.Teacher
	Courses []*models.Course `json:"courses"`
}

// NewTeacherDetail wraps a teacher for the detailed view.
func NewTeacherDetail(teacher *models.Teacher) TeacherDetail {
	courses := teacher.Courses
	if courses == nil {
		courses = make([]*models.Course, 0)
	}
	return TeacherDetail{Teacher: *teacher, Courses: courses}
}
