package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/devcamper/internal/app/models/dto"
	"github.com/yigit/devcamper/internal/app/services"
	"github.com/yigit/devcamper/internal/middleware"
)

// BootcampController exposes bootcamps read-only
type BootcampController struct {
	bootcampService services.BootcampService
}

// NewBootcampController creates a new BootcampController
func NewBootcampController(bootcampService services.BootcampService) *BootcampController {
	return &BootcampController{
		bootcampService: bootcampService,
	}
}

// GetBootcamps lists bootcamps
// @Summary List bootcamps
// @Tags bootcamps
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.BootcampResponse} "Bootcamps retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bootcamps [get]
func (c *BootcampController) GetBootcamps(ctx *gin.Context) {
	bootcamps, err := c.bootcampService.GetBootcamps(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(dto.FromBootcamps(bootcamps), len(bootcamps)))
}

// GetBootcamp retrieves a bootcamp with its average cost
// @Summary Get bootcamp details
// @Tags bootcamps
// @Produce json
// @Param bootcampId path string true "Bootcamp ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.BootcampResponse} "Bootcamp retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid bootcamp ID format"
// @Failure 404 {object} dto.ErrorResponse "Bootcamp not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bootcamps/{bootcampId} [get]
func (c *BootcampController) GetBootcamp(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "bootcampId", "bootcamp")
	if !ok {
		return
	}

	bootcamp, err := c.bootcampService.GetBootcamp(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromBootcamp(bootcamp)))
}
