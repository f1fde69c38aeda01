package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/wish2work/internal/app/models/dto"
	"github.com/yigit/wish2work/internal/app/services"
	"github.com/yigit/wish2work/internal/middleware"
)

// StudentCourseController handles course enrollments
type StudentCourseController struct {
	enrollmentService services.StudentCourseService
}

// NewStudentCourseController creates a new StudentCourseController
func NewStudentCourseController(enrollmentService services.StudentCourseService) *StudentCourseController {
	return &StudentCourseController{enrollmentService: enrollmentService}
}

// Enroll links a student to a course
// @Summary Enroll in a course
// @Tags student-courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentCourseRequest true "Enrollment"
// @Success 201 {object} dto.APIResponse{data=models.StudentCourse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown course"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Router /student-courses [post]
func (c *StudentCourseController) Enroll(ctx *gin.Context) {
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.StudentCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx, p, req.StudentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(enrollment, "Enrolled successfully"))
}

// GetEnrollmentByID retrieves an enrollment
// @Summary Get enrollment by ID
// @Tags student-courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.StudentCourse}
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /student-courses/{id} [get]
func (c *StudentCourseController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollment, ""))
}

// GetAllEnrollments lists enrollments
// @Summary List enrollments
// @Tags student-courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.StudentCourse}
// @Router /student-courses [get]
func (c *StudentCourseController) GetAllEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetAllEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollments, ""))
}

// Unenroll removes the (course, student) pair
// @Summary Remove an enrollment
// @Tags student-courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Not your profile"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /student-courses/{id}/{student_id} [delete]
func (c *StudentCourseController) Unenroll(ctx *gin.Context) {
	courseID, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	studentID, ok := middleware.ParseIDParam(ctx, "student_id")
	if !ok {
		return
	}
	p, ok := middleware.RequirePrincipal(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.Unenroll(ctx, p, courseID, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Enrollment removed successfully"}, ""))
}
