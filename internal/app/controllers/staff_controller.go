package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/app/models/dto"
	"github.com/yigit/wish2work/internal/app/services"
	"github.com/yigit/wish2work/internal/middleware"
)

// StaffController handles staff members
type StaffController struct {
	staffService services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService services.StaffService) *StaffController {
	return &StaffController{staffService: staffService}
}

// CreateStaff creates a staff member
// @Summary Create a staff member
// @Description Creates a staff member. When a password is provided the STAFF login account is created in the same transaction.
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStaffRequest true "Staff information"
// @Success 201 {object} dto.APIResponse{data=models.Staff}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /staff [post]
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	staff := models.Staff{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		DepartmentID: req.DepartmentID,
	}
	if err := c.staffService.CreateStaff(ctx, &staff, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(staff, "Staff member created successfully"))
}

// GetStaffByID retrieves a staff member
// @Summary Get staff member by ID
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.APIResponse{data=models.Staff}
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id} [get]
func (c *StaffController) GetStaffByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	staff, err := c.staffService.GetStaffByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, ""))
}

// GetStaffByEmail looks a staff member up by email
// @Summary Get staff member by email
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email address"
// @Success 200 {object} dto.APIResponse{data=models.Staff}
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/email/{email} [get]
func (c *StaffController) GetStaffByEmail(ctx *gin.Context) {
	staff, err := c.staffService.GetStaffByEmail(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, ""))
}

// GetAllStaff lists staff members
// @Summary List staff members
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Staff}
// @Router /staff [get]
func (c *StaffController) GetAllStaff(ctx *gin.Context) {
	staff, err := c.staffService.GetAllStaff(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, ""))
}

// UpdateStaff updates a staff member's profile
// @Summary Update a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Param request body dto.UpdateStaffRequest true "Staff information"
// @Success 200 {object} dto.APIResponse{data=models.Staff}
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /staff/{id} [put]
func (c *StaffController) UpdateStaff(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	staff := models.Staff{
		ID:           id,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		DepartmentID: req.DepartmentID,
	}
	if err := c.staffService.UpdateStaff(ctx, &staff); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, "Staff member updated successfully"))
}

// ActivateStaff re-enables a staff member
// @Summary Activate a staff member
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id}/activate [patch]
func (c *StaffController) ActivateStaff(ctx *gin.Context) {
	c.setActive(ctx, true)
}

// DeactivateStaff disables a staff member; their requests are kept
// @Summary Deactivate a staff member
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id}/deactivate [patch]
func (c *StaffController) DeactivateStaff(ctx *gin.Context) {
	c.setActive(ctx, false)
}

func (c *StaffController) setActive(ctx *gin.Context, active bool) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.staffService.SetStaffActive(ctx, id, active); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	msg := "Staff member deactivated"
	if active {
		msg = "Staff member activated"
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: msg}, ""))
}

// DeleteStaff deletes a staff member without requests
// @Summary Delete a staff member
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Failure 409 {object} dto.ErrorResponse "Staff member still has requests"
// @Router /staff/{id} [delete]
func (c *StaffController) DeleteStaff(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.staffService.DeleteStaff(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Staff member deleted successfully"}, ""))
}

// GetStaffRequests lists the requests a staff member made
// @Summary List a staff member's requests
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Request}
// @Failure 404 {object} dto.ErrorResponse "Staff member not found or no requests"
// @Router /staff/{id}/requests [get]
func (c *StaffController) GetStaffRequests(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	requests, err := c.staffService.GetStaffRequests(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests, ""))
}
