package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/app/models/dto"
	"github.com/yigit/wish2work/internal/app/services"
	"github.com/yigit/wish2work/internal/middleware"
)

// SkillController handles student skills
type SkillController struct {
	skillService services.SkillService
}

// NewSkillController creates a new SkillController
func NewSkillController(skillService services.SkillService) *SkillController {
	return &SkillController{skillService: skillService}
}

// CreateSkill adds a skill to a student profile
// @Summary Add a skill
// @Description Students add to their own profile; admins must pass student_id.
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SkillRequest true "Skill information"
// @Success 201 {object} dto.APIResponse{data=models.Skill}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Not your profile"
// @Router /skills [post]
func (c *SkillController) CreateSkill(ctx *gin.Context) {
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.SkillRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	skill := models.Skill{StudentID: req.StudentID, Title: req.Title, Description: req.Description}
	if err := c.skillService.CreateSkill(ctx, p, &skill); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(skill, "Skill added successfully"))
}

// GetSkillByID retrieves a skill
// @Summary Get skill by ID
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Success 200 {object} dto.APIResponse{data=models.Skill}
// @Failure 404 {object} dto.ErrorResponse "Skill not found"
// @Router /skills/{id} [get]
func (c *SkillController) GetSkillByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	skill, err := c.skillService.GetSkillByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(skill, ""))
}

// GetAllSkills lists every skill
// @Summary List skills
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Skill}
// @Router /skills [get]
func (c *SkillController) GetAllSkills(ctx *gin.Context) {
	skills, err := c.skillService.GetAllSkills(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(skills, ""))
}

// UpdateSkill edits a skill
// @Summary Update a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Param request body dto.SkillRequest true "Skill information"
// @Success 200 {object} dto.APIResponse{data=models.Skill}
// @Failure 403 {object} dto.ErrorResponse "Not your profile"
// @Failure 404 {object} dto.ErrorResponse "Skill not found"
// @Router /skills/{id} [put]
func (c *SkillController) UpdateSkill(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.SkillRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	skill := models.Skill{ID: id, Title: req.Title, Description: req.Description}
	if err := c.skillService.UpdateSkill(ctx, p, &skill); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(skill, "Skill updated successfully"))
}

// DeleteSkill removes a skill
// @Summary Delete a skill
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Not your profile"
// @Failure 404 {object} dto.ErrorResponse "Skill not found"
// @Router /skills/{id} [delete]
func (c *SkillController) DeleteSkill(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	if err := c.skillService.DeleteSkill(ctx, p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Skill deleted successfully"}, ""))
}
