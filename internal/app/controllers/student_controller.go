package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dishabharti/campus/internal/app/models/dto"
	"github.com/dishabharti/campus/internal/app/services"
	"github.com/dishabharti/campus/internal/middleware"
)

// StudentController handles student record operations for the admin console
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// ListStudents retrieves students, optionally filtered by a search query
// @Summary List students
// @Description Retrieves all students, filtered by a case-insensitive substring match on name or email
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search query"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students := c.studentService.ListStudents(ctx.Query("query"))
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewStudentResponses(students),
		Timestamp: time.Now(),
	})
}

// GetStudent retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	st, err := c.studentService.GetStudent(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewStudentResponse(st), Timestamp: time.Now()})
}

// CreateStudent adds a student from the admin console form
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	st, err := c.studentService.CreateStudent(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: dto.NewStudentResponse(st), Timestamp: time.Now()})
}

// UpdateStudent applies the profile/fees edit form to an existing record
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	st, err := c.studentService.UpdateStudent(ctx, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewStudentResponse(st), Timestamp: time.Now()})
}

// DeleteStudent hard-deletes a student record
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deleted"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student deleted."},
		Timestamp: time.Now(),
	})
}

// CourseSplit returns the student's enrolled and available courses
func (c *StudentController) CourseSplit(ctx *gin.Context) {
	split, err := c.studentService.CourseSplit(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: split, Timestamp: time.Now()})
}

// Enroll adds a course to a student's registration (idempotent)
func (c *StudentController) Enroll(ctx *gin.Context) {
	if err := c.studentService.Enroll(ctx, ctx.Param("id"), ctx.Param("courseId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student enrolled."},
		Timestamp: time.Now(),
	})
}

// Unenroll removes a course from a student's registration
func (c *StudentController) Unenroll(ctx *gin.Context) {
	if err := c.studentService.Unenroll(ctx, ctx.Param("id"), ctx.Param("courseId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student unenrolled."},
		Timestamp: time.Now(),
	})
}

// RecordResult upserts a semester grade
func (c *StudentController) RecordResult(ctx *gin.Context) {
	var req dto.ResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	if err := c.studentService.RecordResult(ctx, ctx.Param("id"), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Result recorded."},
		Timestamp: time.Now(),
	})
}

// RemoveResult deletes a semester grade
func (c *StudentController) RemoveResult(ctx *gin.Context) {
	if err := c.studentService.RemoveResult(ctx, ctx.Param("id"), ctx.Param("semester")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Result removed."},
		Timestamp: time.Now(),
	})
}

// IssueBook appends a title to the student's issued list
func (c *StudentController) IssueBook(ctx *gin.Context) {
	var req dto.BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	if err := c.studentService.IssueBook(ctx, ctx.Param("id"), req.Title); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Book issued."},
		Timestamp: time.Now(),
	})
}

// ReturnBook removes the first exact-title match from the issued list
func (c *StudentController) ReturnBook(ctx *gin.Context) {
	var req dto.BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	if err := c.studentService.ReturnBook(ctx, ctx.Param("id"), req.Title); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Book returned."},
		Timestamp: time.Now(),
	})
}

// UpdateFees records a payment and fines adjustment
func (c *StudentController) UpdateFees(ctx *gin.Context) {
	var req dto.FeesUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	st, err := c.studentService.UpdateFees(ctx, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewStudentResponse(st), Timestamp: time.Now()})
}
