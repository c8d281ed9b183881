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
)

type teacherService struct {
	teachers TeacherRepository
	courses  CourseRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teachers TeacherRepository, courses CourseRepository) TeacherService {
	return &teacherService{
		teachers: teachers,
		courses:  courses,
	}
}

func teacherNotFound(id int64) error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("Teacher with id %d does not exist", id))
}

// classifyTeacherWriteError maps storage errors on teacher writes to API errors.
// The conflict message mirrors the student one for any unique violation.
func classifyTeacherWriteError(err error) error {
	if dberrors.IsUniqueViolation(err) {
		return apperrors.NewConflictError(emailInUseMessage)
	}
	return err
}

// List retrieves all teachers ordered by name, without nested relations.
func (s *teacherService) List(ctx context.Context) ([]*models.Teacher, error) {
	teachers, err := s.teachers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return teachers, nil
}

// GetByID retrieves a teacher with their courses expanded one level.
func (s *teacherService) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil, teacherNotFound(id)
		}
		return nil, err
	}

	courses, err := s.courses.GetByTeacherID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher courses: %w", err)
	}
	teacher.Courses = courses

	return teacher, nil
}

// Create persists a new teacher.
func (s *teacherService) Create(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	teacher := &models.Teacher{
		Name:       req.Name,
		Department: req.Department,
		Address:    req.Address,
	}

	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, classifyTeacherWriteError(err)
	}

	return teacher, nil
}

// Update applies the supplied fields to an existing teacher. Fields absent
// from the payload keep their prior values.
func (s *teacherService) Update(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil, teacherNotFound(id)
		}
		return nil, err
	}

	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if req.Department != nil {
		teacher.Department = req.Department
	}
	if req.Address != nil {
		teacher.Address = req.Address
	}

	if err := s.teachers.Update(ctx, teacher); err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil, teacherNotFound(id)
		}
		return nil, classifyTeacherWriteError(err)
	}

	return teacher, nil
}

// Delete removes a teacher permanently. The store rejects the delete while
// courses still reference the teacher.
func (s *teacherService) Delete(ctx context.Context, id int64) error {
	if err := s.teachers.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return teacherNotFound(id)
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("Teacher is assigned to one or more courses and cannot be deleted")
		}
		return err
	}
	return nil
}
