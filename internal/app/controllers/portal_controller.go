package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dishabharti/campus/internal/app/models"
	"github.com/dishabharti/campus/internal/app/models/dto"
	"github.com/dishabharti/campus/internal/app/services"
	"github.com/dishabharti/campus/internal/middleware"
)

// PortalController serves the student portal views. Every handler resolves
// the record belonging to the session's student id; a student can never
// reach another student's data.
type PortalController struct {
	studentService *services.StudentService
}

// NewPortalController creates a new PortalController
func NewPortalController(studentService *services.StudentService) *PortalController {
	return &PortalController{studentService: studentService}
}

// currentStudent resolves the session's own record. A stale id (record
// deleted while the session was live) is reported, not crashed on.
func (c *PortalController) currentStudent(ctx *gin.Context) (models.Student, bool) {
	id := ctx.GetString(middleware.ContextStudentID)
	st, err := c.studentService.GetStudent(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return models.Student{}, false
	}
	return st, true
}

// Profile returns the signed-in student's profile card
func (c *PortalController) Profile(ctx *gin.Context) {
	st, ok := c.currentStudent(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewStudentResponse(st), Timestamp: time.Now()})
}

// Results returns the signed-in student's semester grades
func (c *PortalController) Results(ctx *gin.Context) {
	st, ok := c.currentStudent(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: st.Results, Timestamp: time.Now()})
}

// Fees returns the signed-in student's fee ledger
func (c *PortalController) Fees(ctx *gin.Context) {
	st, ok := c.currentStudent(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: st.Fees, Timestamp: time.Now()})
}

// Registration returns the signed-in student's registration state
func (c *PortalController) Registration(ctx *gin.Context) {
	st, ok := c.currentStudent(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: st.Registration, Timestamp: time.Now()})
}

// Library returns the signed-in student's loans and fines
func (c *PortalController) Library(ctx *gin.Context) {
	st, ok := c.currentStudent(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: st.Library, Timestamp: time.Now()})
}
