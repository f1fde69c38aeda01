package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/app/models/dto"
	"github.com/yigit/wish2work/internal/app/services"
	"github.com/yigit/wish2work/internal/middleware"
	"github.com/yigit/wish2work/internal/pkg/helpers"
)

// StudentController handles student records and their profile listings
type StudentController struct {
	studentService services.StudentService
	ratingService  services.RatingService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, ratingService services.RatingService) *StudentController {
	return &StudentController{
		studentService: studentService,
		ratingService:  ratingService,
	}
}

// GetStudents lists students page by page
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	page := helpers.PageFromQuery(ctx)

	students, total, err := c.studentService.ListStudents(ctx, page.Offset(), page.Limit())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.StudentListResponse{
		Students:       students,
		PaginationInfo: page.Info(total),
	}, ""))
}

// GetStudentByID retrieves a student
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// UpdateStudent updates a student's profile
// @Summary Update a student
// @Description Updates profile fields. The average rating cannot be written here.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 403 {object} dto.ErrorResponse "Not your profile"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}
	if !p.IsAdmin() && !p.IsStudent(id) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "You can only update your own profile")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student := models.Student{
		ID:                  id,
		ProgramID:           req.ProgramID,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		PhoneNumber:         req.PhoneNumber,
		PersonalDescription: req.PersonalDescription,
	}
	if err := c.studentService.UpdateStudent(ctx, &student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student updated successfully"))
}

// ActivateStudent re-enables a student
// @Summary Activate a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /students/{id}/activate [patch]
func (c *StudentController) ActivateStudent(ctx *gin.Context) {
	c.setActive(ctx, true)
}

// DeactivateStudent disables a student
// @Summary Deactivate a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /students/{id}/deactivate [patch]
func (c *StudentController) DeactivateStudent(ctx *gin.Context) {
	c.setActive(ctx, false)
}

func (c *StudentController) setActive(ctx *gin.Context, active bool) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.SetStudentActive(ctx, id, active); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	msg := "Student deactivated"
	if active {
		msg = "Student activated"
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: msg}, ""))
}

// DeleteStudent deletes a student, their profile data and account
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student still has requests"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Student deleted successfully"}, ""))
}

// GetStudentAvailability lists a student's open slots
// @Summary List a student's availability
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Availability}
// @Failure 404 {object} dto.ErrorResponse "Student not found or no availability"
// @Router /students/{id}/availability [get]
func (c *StudentController) GetStudentAvailability(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	slots, err := c.studentService.GetStudentAvailability(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(slots, ""))
}

// GetStudentCourses lists a student's enrollments
// @Summary List a student's courses
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.StudentCourse}
// @Failure 404 {object} dto.ErrorResponse "Student not found or no courses"
// @Router /students/{id}/courses [get]
func (c *StudentController) GetStudentCourses(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.studentService.GetStudentCourses(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, ""))
}

// GetStudentSkills lists a student's skills
// @Summary List a student's skills
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Skill}
// @Failure 404 {object} dto.ErrorResponse "Student not found or no skills"
// @Router /students/{id}/skills [get]
func (c *StudentController) GetStudentSkills(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	skills, err := c.studentService.GetStudentSkills(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(skills, ""))
}

// GetStudentRequests lists the requests made to a student
// @Summary List a student's requests
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Request}
// @Failure 404 {object} dto.ErrorResponse "Student not found or no requests"
// @Router /students/{id}/requests [get]
func (c *StudentController) GetStudentRequests(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	requests, err := c.studentService.GetStudentRequests(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests, ""))
}

// RecomputeRating rebuilds a student's average from their rated requests
// @Summary Recompute a student's average rating
// @Description Idempotent repair job: the stored average is rewritten from the rated requests.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.RecomputeRatingResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/recompute-rating [post]
func (c *StudentController) RecomputeRating(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	avg, count, err := c.ratingService.RecomputeAverage(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RecomputeRatingResponse{
		StudentID:     id,
		AverageRating: avg,
		RatedCount:    count,
	}, "Average rating recomputed"))
}
