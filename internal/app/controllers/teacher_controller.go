package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukit/school-api/internal/app/models"
	"github.com/edukit/school-api/internal/app/models/dto"
	"github.com/edukit/school-api/internal/app/services"
	"github.com/edukit/school-api/internal/middleware"
)

// TeacherController handles teacher-related operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// ListTeachers retrieves all teachers
// @Summary List all teachers
// @Description Retrieves all teachers ordered by name, without their course lists
// @Tags teachers
// @Produce json
// @Success 200 {array} models.Teacher "Teachers retrieved successfully"
// @Router /teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if teachers == nil {
		teachers = []*models.Teacher{}
	}

	ctx.JSON(http.StatusOK, teachers)
}

// GetTeacherByID retrieves a teacher by ID
// @Summary Get teacher by ID
// @Description Retrieves a specific teacher with their courses expanded
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.TeacherDetail "Teacher retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewTeacherDetail(teacher))
}

// CreateTeacher handles teacher creation
// @Summary Create a new teacher
// @Description Creates a new teacher with the provided information
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.TeacherDetail "Teacher created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher data"
// @Failure 409 {object} dto.ErrorResponse "Duplicate value"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorMessage(err)))
		return
	}

	teacher, err := c.teacherService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewTeacherDetail(teacher))
}

// UpdateTeacher updates an existing teacher
// @Summary Update a teacher
// @Description Applies the supplied fields to an existing teacher; absent fields are kept
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param request body dto.UpdateTeacherRequest true "Updated teacher information"
// @Success 200 {object} dto.TeacherDetail "Teacher updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher data"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorMessage(err)))
		return
	}

	teacher, err := c.teacherService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewTeacherDetail(teacher))
}

// DeleteTeacher deletes a teacher
// @Summary Delete a teacher
// @Description Deletes an existing teacher by its ID; rejected while courses reference the teacher
// @Tags teachers
// @Param id path int true "Teacher ID"
// @Success 204 "Teacher deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Teacher still referenced by courses"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.teacherService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
