package controllers_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/edukit/school-api/internal/app/controllers"
	"github.com/edukit/school-api/internal/app/models"
	"github.com/edukit/school-api/internal/app/models/dto"
	appRoutes "github.com/edukit/school-api/internal/app/routes"
)

// Function-field fakes for the service contracts. A nil field means the
// test does not expect that call.

type fakeCourseService struct {
	listFn    func(ctx context.Context) ([]*models.Course, error)
	getByIDFn func(ctx context.Context, id int64) (*models.Course, error)
	createFn  func(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	updateFn  func(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeCourseService) List(ctx context.Context) ([]*models.Course, error) {
	if f.listFn == nil {
		panic("unexpected call to CourseService.List")
	}
	return f.listFn(ctx)
}

func (f *fakeCourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if f.getByIDFn == nil {
		panic("unexpected call to CourseService.GetByID")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeCourseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if f.createFn == nil {
		panic("unexpected call to CourseService.Create")
	}
	return f.createFn(ctx, req)
}

func (f *fakeCourseService) Update(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	if f.updateFn == nil {
		panic("unexpected call to CourseService.Update")
	}
	return f.updateFn(ctx, id, req)
}

func (f *fakeCourseService) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		panic("unexpected call to CourseService.Delete")
	}
	return f.deleteFn(ctx, id)
}

type fakeStudentService struct {
	listFn    func(ctx context.Context) ([]*models.Student, error)
	getByIDFn func(ctx context.Context, id int64) (*models.Student, error)
	createFn  func(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	updateFn  func(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeStudentService) List(ctx context.Context) ([]*models.Student, error) {
	if f.listFn == nil {
		panic("unexpected call to StudentService.List")
	}
	return f.listFn(ctx)
}

func (f *fakeStudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if f.getByIDFn == nil {
		panic("unexpected call to StudentService.GetByID")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeStudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	if f.createFn == nil {
		panic("unexpected call to StudentService.Create")
	}
	return f.createFn(ctx, req)
}

func (f *fakeStudentService) Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	if f.updateFn == nil {
		panic("unexpected call to StudentService.Update")
	}
	return f.updateFn(ctx, id, req)
}

func (f *fakeStudentService) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		panic("unexpected call to StudentService.Delete")
	}
	return f.deleteFn(ctx, id)
}

type fakeTeacherService struct {
	listFn    func(ctx context.Context) ([]*models.Teacher, error)
	getByIDFn func(ctx context.Context, id int64) (*models.Teacher, error)
	createFn  func(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error)
	updateFn  func(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeTeacherService) List(ctx context.Context) ([]*models.Teacher, error) {
	if f.listFn == nil {
		panic("unexpected call to TeacherService.List")
	}
	return f.listFn(ctx)
}

func (f *fakeTeacherService) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if f.getByIDFn == nil {
		panic("unexpected call to TeacherService.GetByID")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeTeacherService) Create(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	if f.createFn == nil {
		panic("unexpected call to TeacherService.Create")
	}
	return f.createFn(ctx, req)
}

func (f *fakeTeacherService) Update(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	if f.updateFn == nil {
		panic("unexpected call to TeacherService.Update")
	}
	return f.updateFn(ctx, id, req)
}

func (f *fakeTeacherService) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		panic("unexpected call to TeacherService.Delete")
	}
	return f.deleteFn(ctx, id)
}

// newTestRouter wires the real controllers and routes over fake services.
// Nil fakes are replaced with empty ones so unrelated routes still register.
func newTestRouter(courses *fakeCourseService, students *fakeStudentService, teachers *fakeTeacherService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	if courses == nil {
		courses = &fakeCourseService{}
	}
	if students == nil {
		students = &fakeStudentService{}
	}
	if teachers == nil {
		teachers = &fakeTeacherService{}
	}

	router := gin.New()
	appRoutes.SetupRouter(
		router,
		controllers.NewCourseController(courses),
		controllers.NewStudentController(students),
		controllers.NewTeacherController(teachers),
	)
	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }
