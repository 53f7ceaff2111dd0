package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/app/models/dto"
	"github.com/yigit/devcamper/internal/app/services"
	"github.com/yigit/devcamper/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// parseIDParam reads a UUID path parameter, writing a 400 on failure
func parseIDParam(ctx *gin.Context, name, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid "+resource+" ID").
			WithField(name).
			WithDetails(resource + " ID must be a valid UUID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return id, true
}

// GetCourses lists courses
// @Summary List courses
// @Description Lists every course with its bootcamp name and description
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetCourses(ctx.Request.Context(), models.CourseFilter{})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.FromCourses(courses), len(courses)))
}

// GetBootcampCourses lists the courses of one bootcamp
// @Summary List a bootcamp's courses
// @Tags courses
// @Produce json
// @Param bootcampId path string true "Bootcamp ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid bootcamp ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bootcamps/{bootcampId}/courses [get]
func (c *CourseController) GetBootcampCourses(ctx *gin.Context) {
	bootcampID, ok := parseIDParam(ctx, "bootcampId", "bootcamp")
	if !ok {
		return
	}

	courses, err := c.courseService.GetCourses(ctx.Request.Context(), models.CourseFilter{BootcampID: &bootcampID})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.FromCourses(courses), len(courses)))
}

// GetCourse retrieves a course by ID
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "course")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCourse(course)))
}

// CreateCourse handles course creation with the bootcamp given in the body
// @Summary Create a course
// @Description Creates a course for a bootcamp the caller owns; the bootcamp average cost is refreshed in the background
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not own the bootcamp"
// @Failure 404 {object} dto.ErrorResponse "Bootcamp not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	bootcampID, err := uuid.Parse(req.BootcampID)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(map[string]string{"bootcamp": "Please add a valid bootcamp id"})
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.createCourse(ctx, req, bootcampID)
}

// CreateBootcampCourse handles course creation under a bootcamp
// @Summary Add a course to a bootcamp
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bootcampId path string true "Bootcamp ID" Format(uuid)
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not own the bootcamp"
// @Failure 404 {object} dto.ErrorResponse "Bootcamp not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bootcamps/{bootcampId}/courses [post]
func (c *CourseController) CreateBootcampCourse(ctx *gin.Context) {
	bootcampID, ok := parseIDParam(ctx, "bootcampId", "bootcamp")
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	c.createCourse(ctx, req, bootcampID)
}

func (c *CourseController) createCourse(ctx *gin.Context, req dto.CreateCourseRequest, bootcampID uuid.UUID) {
	actor, err := middleware.ActorFromContext(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), actor, req.ToModel(bootcampID, actor.UserID))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromCourse(course)))
}

// UpdateCourse applies a partial update to a course
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not own the course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "course")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	actor, err := middleware.ActorFromContext(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), actor, id, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCourse(course)))
}

// DeleteCourse removes a course
// @Summary Delete a course
// @Description Deletes a course; the bootcamp average cost is refreshed before the response is sent
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not own the course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "course")
	if !ok {
		return
	}

	actor, err := middleware.ActorFromContext(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(struct{}{}))
}
