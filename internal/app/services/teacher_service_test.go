package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/school-api/internal/app/models"
	"github.com/edukit/school-api/internal/app/models/dto"
	"github.com/edukit/school-api/internal/app/repositories"
	"github.com/edukit/school-api/internal/pkg/apperrors"
)

func TestTeacherGetByIDAttachesCourses(t *testing.T) {
	teachers := &fakeTeacherRepo{
		getByIDFn: func(_ context.Context, id int64) (*models.Teacher, error) {
			return &models.Teacher{ID: id, Name: "Alice Nguyen"}, nil
		},
	}
	courses := &fakeCourseRepo{
		getByTeacherIDFn: func(_ context.Context, teacherID int64) ([]*models.Course, error) {
			return []*models.Course{
				{ID: 1, Name: "Biology 101", TeacherID: &teacherID},
				{ID: 2, Name: "Study Skills", TeacherID: &teacherID},
			}, nil
		},
	}
	svc := NewTeacherService(teachers, courses)

	teacher, err := svc.GetByID(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, teacher.Courses, 2)
	assert.Equal(t, "Biology 101", teacher.Courses[0].Name)
}

func TestTeacherGetByIDPropagatesCourseLookupError(t *testing.T) {
	teachers := &fakeTeacherRepo{
		getByIDFn: func(_ context.Context, id int64) (*models.Teacher, error) {
			return &models.Teacher{ID: id, Name: "Alice Nguyen"}, nil
		},
	}
	courses := &fakeCourseRepo{
		getByTeacherIDFn: func(_ context.Context, _ int64) ([]*models.Course, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := NewTeacherService(teachers, courses)

	_, err := svc.GetByID(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestTeacherGetByIDNotFound(t *testing.T) {
	teachers := &fakeTeacherRepo{
		getByIDFn: func(_ context.Context, _ int64) (*models.Teacher, error) {
			return nil, repositories.ErrTeacherNotFound
		},
	}
	svc := NewTeacherService(teachers, &fakeCourseRepo{})

	_, err := svc.GetByID(context.Background(), 999999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	assert.EqualError(t, err, "Teacher with id 999999 does not exist")
}

func TestTeacherCreateUniqueViolation(t *testing.T) {
	teachers := &fakeTeacherRepo{
		createFn: func(_ context.Context, _ *models.Teacher) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "teachers_email_key"}
		},
	}
	svc := NewTeacherService(teachers, &fakeCourseRepo{})

	_, err := svc.Create(context.Background(), dto.CreateTeacherRequest{Name: "Alice Nguyen"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.EqualError(t, err, "Email address already in use")
}

func TestTeacherUpdateKeepsAbsentFields(t *testing.T) {
	var saved *models.Teacher
	teachers := &fakeTeacherRepo{
		getByIDFn: func(_ context.Context, id int64) (*models.Teacher, error) {
			return &models.Teacher{ID: id, Name: "Bob Carter", Department: strPtr("Mathematics")}, nil
		},
		updateFn: func(_ context.Context, teacher *models.Teacher) error {
			saved = teacher
			return nil
		},
	}
	svc := NewTeacherService(teachers, &fakeCourseRepo{})

	updated, err := svc.Update(context.Background(), 2, dto.UpdateTeacherRequest{
		Address: strPtr("4 Birch Road"),
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, "Bob Carter", updated.Name)
	require.NotNil(t, updated.Department)
	assert.Equal(t, "Mathematics", *updated.Department)
	require.NotNil(t, updated.Address)
	assert.Equal(t, "4 Birch Road", *updated.Address)
}

func TestTeacherUpdateNotFound(t *testing.T) {
	teachers := &fakeTeacherRepo{
		getByIDFn: func(_ context.Context, _ int64) (*models.Teacher, error) {
			return nil, repositories.ErrTeacherNotFound
		},
	}
	svc := NewTeacherService(teachers, &fakeCourseRepo{})

	_, err := svc.Update(context.Background(), 8, dto.UpdateTeacherRequest{Name: strPtr("New Name")})
	require.Error(t, err)
	assert.EqualError(t, err, "Teacher with id 8 does not exist")
}

func TestTeacherDeleteWithAssignedCourses(t *testing.T) {
	teachers := &fakeTeacherRepo{
		deleteFn: func(_ context.Context, _ int64) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "courses_teacher_id_fkey"}
		},
	}
	svc := NewTeacherService(teachers, &fakeCourseRepo{})

	err := svc.Delete(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
	assert.EqualError(t, err, "Teacher is assigned to one or more courses and cannot be deleted")
}

func TestTeacherDeleteNotFound(t *testing.T) {
	teachers := &fakeTeacherRepo{
		deleteFn: func(_ context.Context, _ int64) error {
			return repositories.ErrTeacherNotFound
		},
	}
	svc := NewTeacherService(teachers, &fakeCourseRepo{})

	err := svc.Delete(context.Background(), 4)
	require.Error(t, err)
	assert.EqualError(t, err, "Teacher with id 4 does not exist")
}
