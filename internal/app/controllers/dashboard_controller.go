package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dishabharti/campus/internal/app/models/dto"
	"github.com/dishabharti/campus/internal/app/services"
	"github.com/dishabharti/campus/internal/middleware"
)

// DashboardController handles analytics, CSV export and data reset
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Analytics returns the dashboard counters, recomputed from current state
// @Summary Dashboard analytics
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=views.Analytics} "Analytics retrieved"
// @Router /analytics [get]
func (c *DashboardController) Analytics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.dashboardService.Analytics(),
		Timestamp: time.Now(),
	})
}

// ExportCSV streams the student collection as a CSV attachment
// @Summary Export students as CSV
// @Tags dashboard
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV document"
// @Router /students/export [get]
func (c *DashboardController) ExportCSV(ctx *gin.Context) {
	ctx.Header("Content-Disposition", `attachment; filename="students_export.csv"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", c.dashboardService.ExportCSV())
}

// Reset discards the snapshot and reloads the seed dataset
// @Summary Reset all data to default
// @Description Discards the stored snapshot and reloads the seed dataset. Cannot be undone.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Data reset"
// @Router /admin/reset [post]
func (c *DashboardController) Reset(ctx *gin.Context) {
	if err := c.dashboardService.Reset(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Data has been reset."},
		Timestamp: time.Now(),
	})
}
