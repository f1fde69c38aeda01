package services

import (
	"testing"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/wish2work/internal/app/auth"
	"github.com/yigit/wish2work/internal/app/models"
)

type fixture struct {
	t      *testing.T
	db     *memDB
	tx     *memTx
	stores Stores
	authz  *appauth.AuthorizationService
	log    zerolog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newMemDB()
	return &fixture{
		t:      t,
		db:     db,
		tx:     &memTx{db: db},
		stores: db.stores(),
		authz:  appauth.NewAuthorizationService(),
		log:    zerolog.Nop(),
	}
}

// resetWrites forgets the writes made while arranging a test
func (f *fixture) resetWrites() {
	f.db.writes = nil
}

func (f *fixture) department(name string) *models.Department {
	d := &models.Department{ID: f.db.next(), Name: name}
	f.db.departments[d.ID] = *d
	return d
}

func (f *fixture) program(departmentID int64, name string) *models.Program {
	p := &models.Program{ID: f.db.next(), Name: name, DepartmentID: departmentID}
	f.db.programs[p.ID] = *p
	return p
}

func (f *fixture) course(departmentID int64, name string) *models.Course {
	c := &models.Course{ID: f.db.next(), Name: name, DepartmentID: departmentID}
	f.db.courses[c.ID] = *c
	return c
}

func (f *fixture) student(programID int64, first, last string, avg ...float64) *models.Student {
	s := &models.Student{
		ID:        f.db.next(),
		ProgramID: &programID,
		FirstName: first,
		LastName:  last,
		Email:     first + "." + last + "@uni.test",
		IsActive:  true,
	}
	if len(avg) > 0 {
		s.AverageRating = &avg[0]
	}
	f.db.students[s.ID] = *s
	return s
}

func (f *fixture) skill(studentID int64, title, description string) *models.Skill {
	sk := &models.Skill{ID: f.db.next(), StudentID: studentID, Title: title}
	if description != "" {
		sk.Description = &description
	}
	f.db.skills[sk.ID] = *sk
	return sk
}

func (f *fixture) enroll(studentID, courseID int64) {
	id := f.db.next()
	f.db.enrollments[id] = models.StudentCourse{ID: id, StudentID: studentID, CourseID: courseID}
}

func (f *fixture) staffMember(first string, active bool) *models.Staff {
	st := &models.Staff{ID: f.db.next(), FirstName: first, LastName: "Staff", Email: first + "@staff.test", IsActive: active}
	f.db.staff[st.ID] = *st
	return st
}

func (f *fixture) slot(studentID int64, date, start, end string) *models.Availability {
	a := &models.Availability{ID: f.db.next(), StudentID: studentID, AvailabilityDate: date, StartTime: start, EndTime: end}
	f.db.slots[a.ID] = *a
	return a
}

func (f *fixture) request(staffID, studentID int64, status models.RequestStatus, rating ...int) *models.Request {
	r := &models.Request{
		ID:               f.db.next(),
		StaffID:          staffID,
		StudentID:        studentID,
		Title:            "Tutoring",
		AvailabilityDate: "2024-09-16",
		StartTime:        "09:00",
		EndTime:          "10:00",
		Status:           status,
	}
	if len(rating) > 0 {
		r.Rating = &rating[0]
	}
	f.db.requests[r.ID] = *r
	return r
}

func staffPrincipal(id int64) appauth.Principal {
	return appauth.Principal{AccountID: 100 + id, Email: "staff@test", Role: models.RoleStaff, SubjectID: id}
}

func studentPrincipal(id int64) appauth.Principal {
	return appauth.Principal{AccountID: 200 + id, Email: "student@test", Role: models.RoleStudent, SubjectID: id}
}

func adminPrincipal() appauth.Principal {
	return appauth.Principal{AccountID: 1, Email: "admin@test", Role: models.RoleAdmin, SubjectID: 1}
}

func studentIDs(students []*models.Student) []int64 {
	ids := make([]int64, len(students))
	for i, s := range students {
		ids[i] = s.ID
	}
	return ids
}
