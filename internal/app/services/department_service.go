package services

import (
	"context"
	"strings"

	"github.com/yigit/wish2work/internal/app/models"
)

// DepartmentService defines the interface for department operations
type DepartmentService interface {
	CreateDepartment(ctx context.Context, department *models.Department) error
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	GetProgramsByDepartment(ctx context.Context, departmentID int64) ([]*models.Program, error)
	UpdateDepartment(ctx context.Context, department *models.Department) error
	DeleteDepartment(ctx context.Context, id int64) error
}

type departmentServiceImpl struct {
	departments DepartmentStore
	programs    ProgramStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departments DepartmentStore, programs ProgramStore) DepartmentService {
	return &departmentServiceImpl{
		departments: departments,
		programs:    programs,
	}
}

func (s *departmentServiceImpl) validateDepartment(department *models.Department) error {
	department.Name = strings.TrimSpace(department.Name)
	return requireText("name", department.Name)
}

// CreateDepartment creates a new department
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}
	return s.departments.Create(ctx, department)
}

// GetDepartmentByID retrieves a department by ID
func (s *departmentServiceImpl) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	if err := requireID("department_id", id); err != nil {
		return nil, err
	}
	return s.departments.GetByID(ctx, id)
}

// GetAllDepartments retrieves all departments ordered by id
func (s *departmentServiceImpl) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departments.GetAll(ctx)
}

// GetProgramsByDepartment lists the programs offered by an existing department
func (s *departmentServiceImpl) GetProgramsByDepartment(ctx context.Context, departmentID int64) ([]*models.Program, error) {
	if _, err := s.GetDepartmentByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.programs.GetByDepartment(ctx, departmentID)
}

// UpdateDepartment updates an existing department
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, department *models.Department) error {
	if err := requireID("department_id", department.ID); err != nil {
		return err
	}
	if err := s.validateDepartment(department); err != nil {
		return err
	}
	return s.departments.Update(ctx, department)
}

// DeleteDepartment deletes a department that no program, course or staff member references
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	if err := requireID("department_id", id); err != nil {
		return err
	}
	return s.departments.Delete(ctx, id)
}
