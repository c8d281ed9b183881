package dto

import "github.com/edukit/school-api/internal/app/models"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name      string       `json:"name" binding:"required"`
	StartDate *models.Date `json:"start_date"`
	EndDate   *models.Date `json:"end_date"`
	TeacherID *int64       `json:"teacher_id"`
}

// UpdateCourseRequest represents course update data.
// Pointer fields distinguish "key absent" from a supplied value; only
// supplied fields are written.
type UpdateCourseRequest struct {
	Name      *string      `json:"name"`
	StartDate *models.Date `json:"start_date"`
	EndDate   *models.Date `json:"end_date"`
	TeacherID *int64       `json:"teacher_id"`
}

// CourseDetail is the detailed view of a course. The teacher key is always
// present, null for an untaught course; the list view omits it.
type CourseDetail struct {
	models.Course
	Teacher *models.Teacher `json:"teacher"`
}

// NewCourseDetail wraps a course for the detailed view.
func NewCourseDetail(course *models.Course) CourseDetail {
	return CourseDetail{Course: *course, Teacher: course.Teacher}
}
