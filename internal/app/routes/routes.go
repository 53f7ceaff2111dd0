package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/devcamper/internal/app/controllers"
	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/app/models/dto"
	"github.com/yigit/devcamper/internal/middleware"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	bootcampController *controllers.BootcampController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	publishers := []gin.HandlerFunc{
		authMiddleware.JWTAuth(),
		authMiddleware.RoleRequired(models.RolePublisher, models.RoleAdmin),
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetCourses)
		courses.GET("/:id", courseController.GetCourse)

		protected := courses.Group("", publishers...)
		protected.POST("", courseController.CreateCourse)
		protected.PUT("/:id", courseController.UpdateCourse)
		protected.DELETE("/:id", courseController.DeleteCourse)
	}

	bootcamps := v1.Group("/bootcamps")
	{
		bootcamps.GET("", bootcampController.GetBootcamps)
		bootcamps.GET("/:bootcampId", bootcampController.GetBootcamp)
		bootcamps.GET("/:bootcampId/courses", courseController.GetBootcampCourses)

		protected := bootcamps.Group("", publishers...)
		protected.POST("/:bootcampId/courses", courseController.CreateBootcampCourse)
	}
}

// SetupOperations registers /ping, /api/v1/health and /metrics
func SetupOperations(router *gin.Engine, db Pinger, metricsHandler http.Handler) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/api/v1/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unreachable").
				WithSeverity(dto.ErrorSeverityCritical)
			c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(detail))
			return
		}
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"database": "up"}))
	})

	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}
}
