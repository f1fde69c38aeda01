package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/app/models/dto"
	"github.com/yigit/wish2work/internal/app/services"
	"github.com/yigit/wish2work/internal/middleware"
)

// AdminController handles admin records
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

func adminFromRequest(id int64, req dto.AdminRequest) models.Admin {
	return models.Admin{
		ID:          id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
}

// CreateAdmin creates an admin record
// @Summary Create an admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdminRequest true "Admin information"
// @Success 201 {object} dto.APIResponse{data=models.Admin}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admins [post]
func (c *AdminController) CreateAdmin(ctx *gin.Context) {
	var req dto.AdminRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	admin := adminFromRequest(0, req)
	if err := c.adminService.CreateAdmin(ctx, &admin); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(admin, "Admin created successfully"))
}

// GetAdminByID retrieves an admin
// @Summary Get admin by ID
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse{data=models.Admin}
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [get]
func (c *AdminController) GetAdminByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	admin, err := c.adminService.GetAdminByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admin, ""))
}

// GetAllAdmins lists admins
// @Summary List admins
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Admin}
// @Router /admins [get]
func (c *AdminController) GetAllAdmins(ctx *gin.Context) {
	admins, err := c.adminService.GetAllAdmins(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admins, ""))
}

// UpdateAdmin updates an admin. The login email follows the profile email.
// @Summary Update an admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Param request body dto.AdminRequest true "Admin information"
// @Success 200 {object} dto.APIResponse{data=models.Admin}
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admins/{id} [put]
func (c *AdminController) UpdateAdmin(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AdminRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	admin := adminFromRequest(id, req)
	if err := c.adminService.UpdateAdmin(ctx, &admin); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admin, "Admin updated successfully"))
}

// DeleteAdmin deletes an admin and its account
// @Summary Delete an admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [delete]
func (c *AdminController) DeleteAdmin(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteAdmin(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Admin deleted successfully"}, ""))
}
