package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dishabharti/campus/internal/app/controllers"
	"github.com/dishabharti/campus/internal/app/models"
	"github.com/dishabharti/campus/internal/app/models/dto"
	"github.com/dishabharti/campus/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	dashboardController *controllers.DashboardController,
	portalController *controllers.PortalController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
	}

	// --- Admin console (role=admin) ---
	admin := v1.Group("")
	admin.Use(authMiddleware.SessionAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		students := admin.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.GET("/export", dashboardController.ExportCSV)
			students.POST("", studentController.CreateStudent)
			students.GET("/:id", studentController.GetStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)

			// Tabbed detail editor operations
			students.GET("/:id/courses", studentController.CourseSplit)
			students.POST("/:id/courses/:courseId", studentController.Enroll)
			students.DELETE("/:id/courses/:courseId", studentController.Unenroll)
			students.PUT("/:id/results", studentController.RecordResult)
			students.DELETE("/:id/results/:semester", studentController.RemoveResult)
			students.POST("/:id/books", studentController.IssueBook)
			students.DELETE("/:id/books", studentController.ReturnBook)
			students.PUT("/:id/fees", studentController.UpdateFees)
		}

		courses := admin.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.POST("", courseController.CreateCourse)
			courses.GET("/:id", courseController.GetCourse)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		admin.GET("/analytics", dashboardController.Analytics)
		admin.POST("/admin/reset", dashboardController.Reset)
	}

	// --- Student portal (role=student, own record only) ---
	portal := v1.Group("/portal")
	portal.Use(authMiddleware.SessionAuth(), authMiddleware.RoleRequired(string(models.RoleStudent)))
	{
		portal.GET("/profile", portalController.Profile)
		portal.GET("/results", portalController.Results)
		portal.GET("/fees", portalController.Fees)
		portal.GET("/registration", portalController.Registration)
		portal.GET("/library", portalController.Library)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Prometheus metrics (public)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
