package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/wish2work/internal/app/models/dto"
	"github.com/yigit/wish2work/internal/app/services"
	"github.com/yigit/wish2work/internal/middleware"
)

// RatingController exposes the rating ledger. Ratings live on requests; a
// ledger entry is a read-only projection of a rated request.
type RatingController struct {
	ratingService services.RatingService
}

// NewRatingController creates a new RatingController
func NewRatingController(ratingService services.RatingService) *RatingController {
	return &RatingController{ratingService: ratingService}
}

// CreateRating rates a request through the ledger endpoint
// @Summary Rate a request
// @Description Same effect as /requests/{id}/complete-with-rating; returns the ledger entry.
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRatingRequest true "Rating"
// @Success 201 {object} dto.APIResponse{data=models.RatingEntry}
// @Failure 400 {object} dto.ErrorResponse "Rating out of range"
// @Failure 403 {object} dto.ErrorResponse "Not the requesting staff member"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request not approved or already rated"
// @Router /student-rating [post]
func (c *RatingController) CreateRating(ctx *gin.Context) {
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	var body dto.CreateRatingRequest
	if !middleware.BindJSON(ctx, &body) {
		return
	}

	outcome, err := c.ratingService.CompleteWithRating(ctx, p, body.RequestID, *body.RatingValue, body.Feedback)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	entry, _ := outcome.Request.LedgerEntry()
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(entry, "Rating recorded successfully"))
}

// GetStudentRatings lists the ratings a student received
// @Summary List a student's ratings
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.RatingEntry}
// @Failure 404 {object} dto.ErrorResponse "No ratings found"
// @Router /student-rating/{student_id} [get]
func (c *RatingController) GetStudentRatings(ctx *gin.Context) {
	studentID, ok := middleware.ParseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	entries, err := c.ratingService.LedgerByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries, ""))
}

// GetStaffRatings lists the ratings a staff member gave
// @Summary List ratings given by a staff member
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param staff_id path int true "Staff ID"
// @Success 200 {object} dto.APIResponse{data=[]models.RatingEntry}
// @Failure 404 {object} dto.ErrorResponse "No ratings found"
// @Router /student-rating/staff/{staff_id} [get]
func (c *RatingController) GetStaffRatings(ctx *gin.Context) {
	staffID, ok := middleware.ParseIDParam(ctx, "staff_id")
	if !ok {
		return
	}

	entries, err := c.ratingService.LedgerByStaff(ctx, staffID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries, ""))
}

// GetRating retrieves one ledger entry
// @Summary Get a rating
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param rating_id path int true "Rating ID"
// @Success 200 {object} dto.APIResponse{data=models.RatingEntry}
// @Failure 404 {object} dto.ErrorResponse "Rating not found"
// @Router /student-rating/entry/{rating_id} [get]
func (c *RatingController) GetRating(ctx *gin.Context) {
	ratingID, ok := middleware.ParseIDParam(ctx, "rating_id")
	if !ok {
		return
	}

	entry, err := c.ratingService.LedgerEntry(ctx, ratingID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entry, ""))
}
