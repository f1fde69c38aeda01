package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/app/models/dto"
	"github.com/yigit/wish2work/internal/app/services"
	"github.com/yigit/wish2work/internal/middleware"
)

// RequestController handles the request workflow and rating
type RequestController struct {
	requestService services.RequestService
	ratingService  services.RatingService
}

// NewRequestController creates a new RequestController
func NewRequestController(requestService services.RequestService, ratingService services.RatingService) *RequestController {
	return &RequestController{
		requestService: requestService,
		ratingService:  ratingService,
	}
}

// ratingResult flattens a rating outcome for the response body
func ratingResult(o *services.RatingOutcome) dto.RatingResult {
	res := dto.RatingResult{
		RequestID:  o.Request.ID,
		StudentID:  o.Request.StudentID,
		RatedCount: o.RatedCount,
	}
	if o.Request.Rating != nil {
		res.Rating = *o.Request.Rating
	}
	if o.AverageRating != nil {
		res.AverageRating = *o.AverageRating
	}
	return res
}

// GetRequests lists requests visible to the caller
// @Summary List requests
// @Description Admins see every request; staff see the requests they made; students see the requests made to them.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Request}
// @Router /requests [get]
func (c *RequestController) GetRequests(ctx *gin.Context) {
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	requests, err := c.requestService.GetRequests(ctx, p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests, ""))
}

// GetRequestByID retrieves a request
// @Summary Get request by ID
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=models.Request}
// @Failure 403 {object} dto.ErrorResponse "Not a party to this request"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /requests/{id} [get]
func (c *RequestController) GetRequestByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	req, err := c.requestService.GetRequestByID(ctx, p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(req, ""))
}

// CreateRequest is the legacy direct create
// @Summary Create a request directly
// @Description Legacy flow. The request always starts Pending and the calling staff member is recorded as its author. The availability slot is not consumed; prefer /requests/from-availability.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRequestRequest true "Request"
// @Success 201 {object} dto.APIResponse{data=models.Request}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Only active staff can create requests"
// @Router /requests [post]
func (c *RequestController) CreateRequest(ctx *gin.Context) {
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	var body dto.CreateRequestRequest
	if !middleware.BindJSON(ctx, &body) {
		return
	}

	req := models.Request{
		StudentID:        body.StudentID,
		Title:            body.Title,
		Message:          body.Message,
		AvailabilityDate: body.AvailabilityDate,
		StartTime:        body.StartTime,
		EndTime:          body.EndTime,
		Status:           models.RequestStatus(body.Status),
	}
	if err := c.requestService.CreateRequest(ctx, p, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(req, "Request created successfully"))
}

// FromAvailability claims an availability slot and creates a pending request for it
// @Summary Request a student's availability slot
// @Description Atomically removes the slot and creates a Pending request with its date and times. Either both happen or neither.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FromAvailabilityRequest true "Slot and request details"
// @Success 201 {object} dto.APIResponse{data=models.Request}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Only active staff can create requests"
// @Failure 404 {object} dto.ErrorResponse "Availability not found"
// @Failure 409 {object} dto.ErrorResponse "Slot was claimed concurrently"
// @Failure 500 {object} dto.ErrorResponse "Failed step is reported in details"
// @Router /requests/from-availability [post]
func (c *RequestController) FromAvailability(ctx *gin.Context) {
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	var body dto.FromAvailabilityRequest
	if !middleware.BindJSON(ctx, &body) {
		return
	}

	req, err := c.requestService.FromAvailability(ctx, p, body.AvailabilityID, body.Title, body.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(req, "Request created from availability"))
}

// UpdateRequest edits the title and message of a request
// @Summary Update a request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.UpdateRequestRequest true "Request details"
// @Success 200 {object} dto.APIResponse{data=models.Request}
// @Failure 403 {object} dto.ErrorResponse "Not your request"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /requests/{id} [put]
func (c *RequestController) UpdateRequest(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	var body dto.UpdateRequestRequest
	if !middleware.BindJSON(ctx, &body) {
		return
	}

	req, err := c.requestService.UpdateRequest(ctx, p, id, body.Title, body.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(req, "Request updated successfully"))
}

// UpdateStatus approves or disapproves a pending request
// @Summary Respond to a request
// @Description Only the requested student can respond, and only while the request is Pending.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.UpdateRequestStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Request}
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 403 {object} dto.ErrorResponse "Not the requested student"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request is no longer pending"
// @Router /requests/{id}/status [patch]
func (c *RequestController) UpdateStatus(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	var body dto.UpdateRequestStatusRequest
	if !middleware.BindJSON(ctx, &body) {
		return
	}

	req, err := c.requestService.UpdateStatus(ctx, p, id, body.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(req, "Request status updated"))
}

// CompleteWithRating rates an approved request and refreshes the student's average
// @Summary Rate an approved request
// @Description Records the rating on the request and recomputes the student's average in one transaction.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.CompleteWithRatingRequest true "Rating between 1 and 5"
// @Success 200 {object} dto.APIResponse{data=dto.RatingResult}
// @Failure 400 {object} dto.ErrorResponse "Rating out of range"
// @Failure 403 {object} dto.ErrorResponse "Not the requesting staff member"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request not approved or already rated"
// @Router /requests/{id}/complete-with-rating [post]
func (c *RequestController) CompleteWithRating(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	var body dto.CompleteWithRatingRequest
	if !middleware.BindJSON(ctx, &body) {
		return
	}

	outcome, err := c.ratingService.CompleteWithRating(ctx, p, id, *body.Rating, body.Feedback)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(ratingResult(outcome), "Request rated successfully"))
}

// DeleteRequest deletes a request
// @Summary Delete a request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Not your request"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /requests/{id} [delete]
func (c *RequestController) DeleteRequest(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	if err := c.requestService.DeleteRequest(ctx, p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Request deleted successfully"}, ""))
}
