package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/app/repositories"
	"github.com/yigit/wish2work/internal/db"
)

// Services defined in this package:
// - AuthService: login, student self-registration, token introspection
// - DepartmentService, ProgramService, CourseService, AdminService: reference data
// - StaffService, StudentService: people and their activation state
// - SkillService, StudentCourseService, AvailabilityService: student profile
// - SearchService: department-scoped student search
// - RequestService: request workflow and slot claims
// - RatingService: rating reconciliation and the derived rating ledger

// DepartmentStore persists departments
type DepartmentStore interface {
	Create(ctx context.Context, d *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByName(ctx context.Context, name string) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, d *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// ProgramStore persists programs of study
type ProgramStore interface {
	Create(ctx context.Context, p *models.Program) error
	GetByID(ctx context.Context, id int64) (*models.Program, error)
	GetAll(ctx context.Context) ([]*models.Program, error)
	GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Program, error)
	IDsByDepartment(ctx context.Context, departmentID int64, nameTerm string) ([]int64, error)
	Update(ctx context.Context, p *models.Program) error
	Delete(ctx context.Context, id int64) error
}

// CourseStore persists courses
type CourseStore interface {
	Create(ctx context.Context, c *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	IDsByName(ctx context.Context, term string) ([]int64, error)
	Update(ctx context.Context, c *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// AdminStore persists admins
type AdminStore interface {
	Create(ctx context.Context, a *models.Admin) error
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetAll(ctx context.Context) ([]*models.Admin, error)
	Update(ctx context.Context, a *models.Admin) error
	Delete(ctx context.Context, id int64) error
}

// StaffStore persists staff members
type StaffStore interface {
	Create(ctx context.Context, s *models.Staff) error
	GetByID(ctx context.Context, id int64) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	GetAll(ctx context.Context) ([]*models.Staff, error)
	Update(ctx context.Context, s *models.Staff) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// StudentStore persists students
type StudentStore interface {
	Create(ctx context.Context, s *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error)
	Search(ctx context.Context, s *models.StudentSearch) ([]*models.Student, error)
	Update(ctx context.Context, s *models.Student) error
	UpdateAverageRating(ctx context.Context, id int64, avg *float64) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// AccountStore persists login accounts
type AccountStore interface {
	Create(ctx context.Context, a *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	UpdateEmailBySubject(ctx context.Context, role models.RoleType, subjectID int64, email string) error
	DeleteBySubject(ctx context.Context, role models.RoleType, subjectID int64) error
}

// SkillStore persists student skills
type SkillStore interface {
	Create(ctx context.Context, s *models.Skill) error
	GetByID(ctx context.Context, id int64) (*models.Skill, error)
	GetAll(ctx context.Context) ([]*models.Skill, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Skill, error)
	StudentIDsMatching(ctx context.Context, term string) ([]int64, error)
	Update(ctx context.Context, s *models.Skill) error
	Delete(ctx context.Context, id int64) error
}

// StudentCourseStore persists course enrollments
type StudentCourseStore interface {
	Create(ctx context.Context, sc *models.StudentCourse) error
	GetByID(ctx context.Context, id int64) (*models.StudentCourse, error)
	GetAll(ctx context.Context) ([]*models.StudentCourse, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.StudentCourse, error)
	StudentIDsByCourses(ctx context.Context, courseIDs []int64) ([]int64, error)
	Delete(ctx context.Context, courseID, studentID int64) error
}

// AvailabilityStore persists availability slots
type AvailabilityStore interface {
	Create(ctx context.Context, a *models.Availability) error
	GetByID(ctx context.Context, id int64) (*models.Availability, error)
	GetAll(ctx context.Context) ([]*models.Availability, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Availability, error)
	Update(ctx context.Context, a *models.Availability) error
	Delete(ctx context.Context, id int64) error
	Claim(ctx context.Context, id int64) (*models.Availability, error)
}

// RequestStore persists requests and their ratings
type RequestStore interface {
	Create(ctx context.Context, req *models.Request) error
	GetByID(ctx context.Context, id int64) (*models.Request, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*models.Request, error)
	GetAll(ctx context.Context) ([]*models.Request, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Request, error)
	GetByStaff(ctx context.Context, staffID int64) ([]*models.Request, error)
	Update(ctx context.Context, req *models.Request) error
	TransitionStatus(ctx context.Context, id int64, from, to models.RequestStatus) error
	SetRating(ctx context.Context, id int64, rating int, feedback *string) error
	RatingsByStudent(ctx context.Context, studentID int64) ([]int, error)
	RatedRequests(ctx context.Context, f repositories.LedgerFilter) ([]*models.Request, error)
	Delete(ctx context.Context, id int64) error
}

// Stores bundles every store bound to one connection or transaction
type Stores struct {
	Departments    DepartmentStore
	Programs       ProgramStore
	Courses        CourseStore
	Admins         AdminStore
	Staff          StaffStore
	Students       StudentStore
	Accounts       AccountStore
	Skills         SkillStore
	StudentCourses StudentCourseStore
	Availability   AvailabilityStore
	Requests       RequestStore
}

// StoresFrom exposes a repository set through the store interfaces
func StoresFrom(r *repositories.Repositories) Stores {
	return Stores{
		Departments:    r.DepartmentRepository,
		Programs:       r.ProgramRepository,
		Courses:        r.CourseRepository,
		Admins:         r.AdminRepository,
		Staff:          r.StaffRepository,
		Students:       r.StudentRepository,
		Accounts:       r.AccountRepository,
		Skills:         r.SkillRepository,
		StudentCourses: r.StudentCourseRepository,
		Availability:   r.AvailabilityRepository,
		Requests:       r.RequestRepository,
	}
}

// Transactor runs fn with stores bound to one transaction. fn returning an
// error rolls back every write made through those stores.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx Stores) error) error
}

// PgTransactor is the PostgreSQL Transactor
type PgTransactor struct {
	db db.TxBeginner
}

// NewTransactor creates a Transactor on top of a pool
func NewTransactor(b db.TxBeginner) *PgTransactor {
	return &PgTransactor{db: b}
}

// WithinTransaction implements Transactor
func (t *PgTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx Stores) error) error {
	return db.WithTransaction(ctx, t.db, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, StoresFrom(repositories.NewRepositories(tx)))
	})
}
