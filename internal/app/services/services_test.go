package services

import (
	"context"

	"github.com/edukit/school-api/internal/app/models"
)

// Function-field fakes for the repository contracts. A nil field means the
// test does not expect that call.

type fakeCourseRepo struct {
	createFn         func(ctx context.Context, course *models.Course) error
	getByIDFn        func(ctx context.Context, id int64) (*models.Course, error)
	getAllFn         func(ctx context.Context) ([]*models.Course, error)
	getByTeacherIDFn func(ctx context.Context, teacherID int64) ([]*models.Course, error)
	updateFn         func(ctx context.Context, course *models.Course) error
	deleteFn         func(ctx context.Context, id int64) error
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	if f.createFn == nil {
		panic("unexpected call to CourseRepository.Create")
	}
	return f.createFn(ctx, course)
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if f.getByIDFn == nil {
		panic("unexpected call to CourseRepository.GetByID")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeCourseRepo) GetAll(ctx context.Context) ([]*models.Course, error) {
	if f.getAllFn == nil {
		panic("unexpected call to CourseRepository.GetAll")
	}
	return f.getAllFn(ctx)
}

func (f *fakeCourseRepo) GetByTeacherID(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	if f.getByTeacherIDFn == nil {
		panic("unexpected call to CourseRepository.GetByTeacherID")
	}
	return f.getByTeacherIDFn(ctx, teacherID)
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *models.Course) error {
	if f.updateFn == nil {
		panic("unexpected call to CourseRepository.Update")
	}
	return f.updateFn(ctx, course)
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		panic("unexpected call to CourseRepository.Delete")
	}
	return f.deleteFn(ctx, id)
}

type fakeStudentRepo struct {
	createFn  func(ctx context.Context, student *models.Student) error
	getByIDFn func(ctx context.Context, id int64) (*models.Student, error)
	getAllFn  func(ctx context.Context) ([]*models.Student, error)
	updateFn  func(ctx context.Context, student *models.Student) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if f.createFn == nil {
		panic("unexpected call to StudentRepository.Create")
	}
	return f.createFn(ctx, student)
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if f.getByIDFn == nil {
		panic("unexpected call to StudentRepository.GetByID")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeStudentRepo) GetAll(ctx context.Context) ([]*models.Student, error) {
	if f.getAllFn == nil {
		panic("unexpected call to StudentRepository.GetAll")
	}
	return f.getAllFn(ctx)
}

func (f *fakeStudentRepo) Update(ctx context.Context, student *models.Student) error {
	if f.updateFn == nil {
		panic("unexpected call to StudentRepository.Update")
	}
	return f.updateFn(ctx, student)
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		panic("unexpected call to StudentRepository.Delete")
	}
	return f.deleteFn(ctx, id)
}

type fakeTeacherRepo struct {
	createFn  func(ctx context.Context, teacher *models.Teacher) error
	getByIDFn func(ctx context.Context, id int64) (*models.Teacher, error)
	getAllFn  func(ctx context.Context) ([]*models.Teacher, error)
	updateFn  func(ctx context.Context, teacher *models.Teacher) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) error {
	if f.createFn == nil {
		panic("unexpected call to TeacherRepository.Create")
	}
	return f.createFn(ctx, teacher)
}

func (f *fakeTeacherRepo) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if f.getByIDFn == nil {
		panic("unexpected call to TeacherRepository.GetByID")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeTeacherRepo) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	if f.getAllFn == nil {
		panic("unexpected call to TeacherRepository.GetAll")
	}
	return f.getAllFn(ctx)
}

func (f *fakeTeacherRepo) Update(ctx context.Context, teacher *models.Teacher) error {
	if f.updateFn == nil {
		panic("unexpected call to TeacherRepository.Update")
	}
	return f.updateFn(ctx, teacher)
}

func (f *fakeTeacherRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		panic("unexpected call to TeacherRepository.Delete")
	}
	return f.deleteFn(ctx, id)
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }
