package dto

// SkillRequest creates or updates a skill. StudentID is only read for admin callers.
type SkillRequest struct {
	StudentID   int64   `json:"student_id" binding:"omitempty,gt=0"`
	Title       string  `json:"title" binding:"required,notblank,max=100"`
	Description *string `json:"description"`
}

// StudentCourseRequest enrolls a student in a course
type StudentCourseRequest struct {
	StudentID int64 `json:"student_id" binding:"omitempty,gt=0"`
	CourseID  int64 `json:"course_id" binding:"required,gt=0"`
}

// AvailabilityRequest creates or updates an availability slot
type AvailabilityRequest struct {
	StudentID        int64  `json:"student_id" binding:"omitempty,gt=0"`
	AvailabilityDate string `json:"availability_date" binding:"required,datetime=2006-01-02"`
	StartTime        string `json:"start_time" binding:"required,clock"`
	EndTime          string `json:"end_time" binding:"required,clock"`
}
