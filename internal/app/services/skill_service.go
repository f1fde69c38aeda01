package services

import (
	"context"
	"strings"

	appauth "github.com/yigit/wish2work/internal/app/auth"
	"github.com/yigit/wish2work/internal/app/models"
)

// SkillService defines the interface for student skills
type SkillService interface {
	CreateSkill(ctx context.Context, p appauth.Principal, skill *models.Skill) error
	GetSkillByID(ctx context.Context, id int64) (*models.Skill, error)
	GetAllSkills(ctx context.Context) ([]*models.Skill, error)
	UpdateSkill(ctx context.Context, p appauth.Principal, skill *models.Skill) error
	DeleteSkill(ctx context.Context, p appauth.Principal, id int64) error
}

type skillServiceImpl struct {
	skills SkillStore
	authz  *appauth.AuthorizationService
}

// NewSkillService creates a new skill service instance
func NewSkillService(skills SkillStore, authz *appauth.AuthorizationService) SkillService {
	return &skillServiceImpl{skills: skills, authz: authz}
}

// CreateSkill adds a skill to the caller's profile (or, for admins, to skill.StudentID)
func (s *skillServiceImpl) CreateSkill(ctx context.Context, p appauth.Principal, skill *models.Skill) error {
	owner, err := profileOwner(s.authz, p, skill.StudentID)
	if err != nil {
		return err
	}
	skill.StudentID = owner
	skill.Title = strings.TrimSpace(skill.Title)
	if err := requireText("title", skill.Title); err != nil {
		return err
	}
	return s.skills.Create(ctx, skill)
}

func (s *skillServiceImpl) GetSkillByID(ctx context.Context, id int64) (*models.Skill, error) {
	if err := requireID("skill_id", id); err != nil {
		return nil, err
	}
	return s.skills.GetByID(ctx, id)
}

func (s *skillServiceImpl) GetAllSkills(ctx context.Context) ([]*models.Skill, error) {
	return s.skills.GetAll(ctx)
}

// UpdateSkill edits title and description. The owning student cannot change.
func (s *skillServiceImpl) UpdateSkill(ctx context.Context, p appauth.Principal, skill *models.Skill) error {
	existing, err := s.GetSkillByID(ctx, skill.ID)
	if err != nil {
		return err
	}
	if err := s.authz.CanManageStudentProfile(p, existing.StudentID); err != nil {
		return err
	}
	skill.StudentID = existing.StudentID
	skill.DateAdded = existing.DateAdded
	skill.Title = strings.TrimSpace(skill.Title)
	if err := requireText("title", skill.Title); err != nil {
		return err
	}
	return s.skills.Update(ctx, skill)
}

func (s *skillServiceImpl) DeleteSkill(ctx context.Context, p appauth.Principal, id int64) error {
	existing, err := s.GetSkillByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authz.CanManageStudentProfile(p, existing.StudentID); err != nil {
		return err
	}
	return s.skills.Delete(ctx, id)
}
