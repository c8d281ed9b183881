package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/edukit/school-api/internal/app/models"
	"github.com/edukit/school-api/internal/app/models/dto"
	"github.com/edukit/school-api/internal/app/repositories"
	"github.com/edukit/school-api/internal/pkg/apperrors"
	"github.com/edukit/school-api/internal/pkg/dberrors"
	"github.com/edukit/school-api/internal/pkg/validation"
)

type courseService struct {
	courses  CourseRepository
	teachers TeacherRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseRepository, teachers TeacherRepository) CourseService {
	return &courseService{
		courses:  courses,
		teachers: teachers,
	}
}

func courseNotFound(id int64) error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("Course with id %d does not exist", id))
}

// classifyCourseWriteError maps storage errors on course writes to API errors.
// A bad teacher_id surfaces as a foreign key violation.
func classifyCourseWriteError(err error) error {
	if dberrors.IsForeignKeyViolation(err) {
		return apperrors.NewBadRequestError("teacher_id does not reference an existing teacher")
	}
	return err
}

// attachTeacher expands the course's teacher reference one level for the
// detailed view. A missing teacher row leaves the reference unset; any other
// lookup failure is surfaced.
func (s *courseService) attachTeacher(ctx context.Context, course *models.Course) error {
	if course.TeacherID == nil {
		return nil
	}
	teacher, err := s.teachers.GetByID(ctx, *course.TeacherID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil
		}
		return fmt.Errorf("error retrieving course teacher: %w", err)
	}
	course.Teacher = teacher
	return nil
}

// List retrieves all courses ordered by name, without nested relations.
func (s *courseService) List(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetByID retrieves a course with its teacher expanded.
func (s *courseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, courseNotFound(id)
		}
		return nil, err
	}

	if err := s.attachTeacher(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Create validates and persists a new course.
func (s *courseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := validation.CourseName(req.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	course := &models.Course{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		TeacherID: req.TeacherID,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, classifyCourseWriteError(err)
	}

	if err := s.attachTeacher(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Update applies the supplied fields to an existing course. Fields absent
// from the payload keep their prior values.
func (s *courseService) Update(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, courseNotFound(id)
		}
		return nil, err
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.StartDate != nil {
		course.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		course.EndDate = req.EndDate
	}
	if req.TeacherID != nil {
		course.TeacherID = req.TeacherID
	}

	if err := validation.CourseName(course.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.courses.Update(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, courseNotFound(id)
		}
		return nil, classifyCourseWriteError(err)
	}

	if err := s.attachTeacher(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course permanently.
func (s *courseService) Delete(ctx context.Context, id int64) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return courseNotFound(id)
		}
		return err
	}
	return nil
}
