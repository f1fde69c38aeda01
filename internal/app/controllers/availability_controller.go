package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/app/models/dto"
	"github.com/yigit/wish2work/internal/app/services"
	"github.com/yigit/wish2work/internal/middleware"
)

// AvailabilityController handles availability slots
type AvailabilityController struct {
	availabilityService services.AvailabilityService
}

// NewAvailabilityController creates a new AvailabilityController
func NewAvailabilityController(availabilityService services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{availabilityService: availabilityService}
}

// CreateAvailability publishes a slot
// @Summary Create an availability slot
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AvailabilityRequest true "Time window"
// @Success 201 {object} dto.APIResponse{data=models.Availability}
// @Failure 400 {object} dto.ErrorResponse "Invalid date, time or empty window"
// @Failure 403 {object} dto.ErrorResponse "Not your profile"
// @Router /availability [post]
func (c *AvailabilityController) CreateAvailability(ctx *gin.Context) {
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.AvailabilityRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	slot := models.Availability{
		StudentID:        req.StudentID,
		AvailabilityDate: req.AvailabilityDate,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
	}
	if err := c.availabilityService.CreateAvailability(ctx, p, &slot); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(slot, "Availability created successfully"))
}

// GetAvailabilityByID retrieves a slot
// @Summary Get availability slot by ID
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path int true "Availability ID"
// @Success 200 {object} dto.APIResponse{data=models.Availability}
// @Failure 404 {object} dto.ErrorResponse "Availability not found"
// @Router /availability/{id} [get]
func (c *AvailabilityController) GetAvailabilityByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	slot, err := c.availabilityService.GetAvailabilityByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(slot, ""))
}

// GetAllAvailability lists open slots
// @Summary List availability slots
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Availability}
// @Router /availability [get]
func (c *AvailabilityController) GetAllAvailability(ctx *gin.Context) {
	slots, err := c.availabilityService.GetAllAvailability(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(slots, ""))
}

// UpdateAvailability changes a slot's window
// @Summary Update an availability slot
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Availability ID"
// @Param request body dto.AvailabilityRequest true "Time window"
// @Success 200 {object} dto.APIResponse{data=models.Availability}
// @Failure 400 {object} dto.ErrorResponse "Invalid date, time or empty window"
// @Failure 403 {object} dto.ErrorResponse "Not your profile"
// @Failure 404 {object} dto.ErrorResponse "Availability not found"
// @Router /availability/{id} [put]
func (c *AvailabilityController) UpdateAvailability(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.AvailabilityRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	slot := models.Availability{
		ID:               id,
		AvailabilityDate: req.AvailabilityDate,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
	}
	if err := c.availabilityService.UpdateAvailability(ctx, p, &slot); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(slot, "Availability updated successfully"))
}

// DeleteAvailability withdraws a slot
// @Summary Delete an availability slot
// @Description The owning student and admins may delete a slot. Staff may too, which completes the legacy create-then-delete booking flow.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path int true "Availability ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Not your profile"
// @Failure 404 {object} dto.ErrorResponse "Availability not found"
// @Router /availability/{id} [delete]
func (c *AvailabilityController) DeleteAvailability(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	if err := c.availabilityService.DeleteAvailability(ctx, p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Availability deleted successfully"}, ""))
}
