package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/wish2work/internal/app/controllers"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/middleware"
)

// Controllers groups every HTTP handler set the router mounts
type Controllers struct {
	Auth          *controllers.AuthController
	Department    *controllers.DepartmentController
	Program       *controllers.ProgramController
	Course        *controllers.CourseController
	Admin         *controllers.AdminController
	Staff         *controllers.StaffController
	Student       *controllers.StudentController
	Skill         *controllers.SkillController
	StudentCourse *controllers.StudentCourseController
	Availability  *controllers.AvailabilityController
	Request       *controllers.RequestController
	Rating        *controllers.RatingController
	Health        *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
	}

	// Reference data is readable without a token
	v1.GET("/departments", c.Department.GetAllDepartments)
	v1.GET("/departments/:id", c.Department.GetDepartmentByID)
	v1.GET("/departments/:id/programs", c.Department.GetDepartmentPrograms)
	v1.GET("/programs", c.Program.GetAllPrograms)
	v1.GET("/programs/:id", c.Program.GetProgramByID)
	v1.GET("/courses", c.Course.GetAllCourses)
	v1.GET("/courses/:id", c.Course.GetCourseByID)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	staffOrAdmin := authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff)

	authenticated.GET("/auth/me", c.Auth.Me)

	// Reference data writes
	reference := authenticated.Group("")
	reference.Use(adminOnly)
	{
		reference.POST("/departments", c.Department.CreateDepartment)
		reference.PUT("/departments/:id", c.Department.UpdateDepartment)
		reference.DELETE("/departments/:id", c.Department.DeleteDepartment)

		reference.POST("/programs", c.Program.CreateProgram)
		reference.PUT("/programs/:id", c.Program.UpdateProgram)
		reference.DELETE("/programs/:id", c.Program.DeleteProgram)

		reference.POST("/courses", c.Course.CreateCourse)
		reference.PUT("/courses/:id", c.Course.UpdateCourse)
		reference.DELETE("/courses/:id", c.Course.DeleteCourse)
	}

	// Student search
	search := authenticated.Group("/departments/:id/students")
	search.Use(staffOrAdmin)
	{
		search.GET("", c.Department.GetDepartmentStudents)
		search.GET("/search", c.Department.SearchDepartmentStudents)
	}

	admins := authenticated.Group("/admins")
	admins.Use(adminOnly)
	{
		admins.GET("", c.Admin.GetAllAdmins)
		admins.POST("", c.Admin.CreateAdmin)
		admins.GET("/:id", c.Admin.GetAdminByID)
		admins.PUT("/:id", c.Admin.UpdateAdmin)
		admins.DELETE("/:id", c.Admin.DeleteAdmin)
	}

	staff := authenticated.Group("/staff")
	{
		staff.GET("", c.Staff.GetAllStaff)
		staff.GET("/:id", c.Staff.GetStaffByID)
		staff.GET("/email/:email", c.Staff.GetStaffByEmail)
		staff.GET("/:id/requests", staffOrAdmin, c.Staff.GetStaffRequests)

		staffAdmin := staff.Group("")
		staffAdmin.Use(adminOnly)
		{
			staffAdmin.POST("", c.Staff.CreateStaff)
			staffAdmin.PUT("/:id", c.Staff.UpdateStaff)
			staffAdmin.PATCH("/:id/activate", c.Staff.ActivateStaff)
			staffAdmin.PATCH("/:id/deactivate", c.Staff.DeactivateStaff)
			staffAdmin.DELETE("/:id", c.Staff.DeleteStaff)
		}
	}

	students := authenticated.Group("/students")
	{
		students.GET("", staffOrAdmin, c.Student.GetStudents)
		students.GET("/:id", c.Student.GetStudentByID)
		students.PUT("/:id", c.Student.UpdateStudent)
		students.GET("/:id/availability", c.Student.GetStudentAvailability)
		students.GET("/:id/courses", c.Student.GetStudentCourses)
		students.GET("/:id/skills", c.Student.GetStudentSkills)
		students.GET("/:id/requests", c.Student.GetStudentRequests)

		studentsAdmin := students.Group("")
		studentsAdmin.Use(adminOnly)
		{
			studentsAdmin.PATCH("/:id/activate", c.Student.ActivateStudent)
			studentsAdmin.PATCH("/:id/deactivate", c.Student.DeactivateStudent)
			studentsAdmin.DELETE("/:id", c.Student.DeleteStudent)
			studentsAdmin.POST("/:id/recompute-rating", c.Student.RecomputeRating)
		}
	}

	// Profile data; ownership is checked by the services
	skills := authenticated.Group("/skills")
	{
		skills.GET("", c.Skill.GetAllSkills)
		skills.GET("/:id", c.Skill.GetSkillByID)
		skills.POST("", c.Skill.CreateSkill)
		skills.PUT("/:id", c.Skill.UpdateSkill)
		skills.DELETE("/:id", c.Skill.DeleteSkill)
	}

	enrollments := authenticated.Group("/student-courses")
	{
		enrollments.GET("", c.StudentCourse.GetAllEnrollments)
		enrollments.GET("/:id", c.StudentCourse.GetEnrollmentByID)
		enrollments.POST("", c.StudentCourse.Enroll)
		// :id is the course id; gin requires one wildcard name per segment
		enrollments.DELETE("/:id/:student_id", c.StudentCourse.Unenroll)
	}

	availability := authenticated.Group("/availability")
	{
		availability.GET("", c.Availability.GetAllAvailability)
		availability.GET("/:id", c.Availability.GetAvailabilityByID)
		availability.POST("", c.Availability.CreateAvailability)
		availability.PUT("/:id", c.Availability.UpdateAvailability)
		availability.DELETE("/:id", c.Availability.DeleteAvailability)
	}

	// Request workflow; party checks are done by the services
	requests := authenticated.Group("/requests")
	{
		requests.GET("", c.Request.GetRequests)
		requests.GET("/:id", c.Request.GetRequestByID)
		requests.POST("", c.Request.CreateRequest)
		requests.POST("/from-availability", c.Request.FromAvailability)
		requests.PUT("/:id", c.Request.UpdateRequest)
		requests.PATCH("/:id/status", c.Request.UpdateStatus)
		requests.POST("/:id/complete-with-rating", c.Request.CompleteWithRating)
		requests.DELETE("/:id", c.Request.DeleteRequest)
	}

	ratings := authenticated.Group("/student-rating")
	{
		ratings.POST("", c.Rating.CreateRating)
		ratings.GET("/:student_id", c.Rating.GetStudentRatings)
		ratings.GET("/staff/:staff_id", c.Rating.GetStaffRatings)
		ratings.GET("/entry/:rating_id", c.Rating.GetRating)
	}

	v1.GET("/health", c.Health.Check)
}
