package services

import (
	"context"
	"strings"

	"github.com/yigit/wish2work/internal/app/models"
)

// ProgramService defines the interface for program of study operations
type ProgramService interface {
	CreateProgram(ctx context.Context, program *models.Program) error
	GetProgramByID(ctx context.Context, id int64) (*models.Program, error)
	GetAllPrograms(ctx context.Context) ([]*models.Program, error)
	UpdateProgram(ctx context.Context, program *models.Program) error
	DeleteProgram(ctx context.Context, id int64) error
}

type programServiceImpl struct {
	programs ProgramStore
}

// NewProgramService creates a new program service instance
func NewProgramService(programs ProgramStore) ProgramService {
	return &programServiceImpl{programs: programs}
}

func (s *programServiceImpl) validateProgram(program *models.Program) error {
	program.Name = strings.TrimSpace(program.Name)
	if err := requireText("name", program.Name); err != nil {
		return err
	}
	return requireID("department_id", program.DepartmentID)
}

// CreateProgram creates a program inside an existing department
func (s *programServiceImpl) CreateProgram(ctx context.Context, program *models.Program) error {
	if err := s.validateProgram(program); err != nil {
		return err
	}
	return s.programs.Create(ctx, program)
}

func (s *programServiceImpl) GetProgramByID(ctx context.Context, id int64) (*models.Program, error) {
	if err := requireID("program_id", id); err != nil {
		return nil, err
	}
	return s.programs.GetByID(ctx, id)
}

func (s *programServiceImpl) GetAllPrograms(ctx context.Context) ([]*models.Program, error) {
	return s.programs.GetAll(ctx)
}

func (s *programServiceImpl) UpdateProgram(ctx context.Context, program *models.Program) error {
	if err := requireID("program_id", program.ID); err != nil {
		return err
	}
	if err := s.validateProgram(program); err != nil {
		return err
	}
	return s.programs.Update(ctx, program)
}

func (s *programServiceImpl) DeleteProgram(ctx context.Context, id int64) error {
	if err := requireID("program_id", id); err != nil {
		return err
	}
	return s.programs.Delete(ctx, id)
}
