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

// emailInUseMessage is the fixed conflict message the API returns for
// unique violations on student and teacher writes.
const emailInUseMessage = "Email address already in use"

type studentService struct {
	students StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentRepository) StudentService {
	return &studentService{
		students: students,
	}
}

func studentNotFound(id int64) error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("Student with id %d does not exist", id))
}

// classifyStudentWriteError maps storage errors on student writes to API errors.
func classifyStudentWriteError(err error) error {
	if dberrors.IsDuplicateConstraintError(err, repositories.StudentEmailConstraint) {
		return apperrors.NewConflictError(emailInUseMessage)
	}
	return err
}

// List retrieves all students ordered by name.
func (s *studentService) List(ctx context.Context) ([]*models.Student, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetByID retrieves a student by ID.
func (s *studentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, studentNotFound(id)
		}
		return nil, err
	}
	return student, nil
}

// Create persists a new student. Email uniqueness is enforced by the store.
func (s *studentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, classifyStudentWriteError(err)
	}

	return student, nil
}

// Update applies the supplied fields to an existing student. Fields absent
// from the payload keep their prior values.
func (s *studentService) Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, studentNotFound(id)
		}
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Address != nil {
		student.Address = req.Address
	}

	if err := s.students.Update(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, studentNotFound(id)
		}
		return nil, classifyStudentWriteError(err)
	}

	return student, nil
}

// Delete removes a student permanently.
func (s *studentService) Delete(ctx context.Context, id int64) error {
	if err := s.students.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return studentNotFound(id)
		}
		return err
	}
	return nil
}
