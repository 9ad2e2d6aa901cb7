package usecase

import (
	"context"
	"errors"

	"med-ready/internal/repository"

	"github.com/google/uuid"
)

type RoleItem struct {
	ID          uuid.UUID
	Title       string
	Description string
	Specialty   string
	SkillsCount int
}

type RoleDetail struct {
	RoleItem
	Requirements []repository.RoleRequirement
}

type RoleUsecase interface {
	ListRoles(ctx context.Context) ([]RoleItem, error)
	GetRole(ctx context.Context, id uuid.UUID) (RoleDetail, error)
}

type Role struct {
	repo repository.RoleRepository
}

func NewRoleUsecase(repo repository.RoleRepository) *Role {
	return &Role{repo: repo}
}

func (u *Role) ListRoles(ctx context.Context) ([]RoleItem, error) {
	roles, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]RoleItem, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleItem{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Specialty:   r.Specialty,
		})
	}
	return out, nil
}

func (u *Role) GetRole(ctx context.Context, id uuid.UUID) (RoleDetail, error) {
	if id == uuid.Nil {
		return RoleDetail{}, ErrRoleNotFound
	}
	role, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return RoleDetail{}, ErrRoleNotFound
		}
		return RoleDetail{}, ErrInternal
	}
	return RoleDetail{
		RoleItem: RoleItem{
			ID:          role.ID,
			Title:       role.Title,
			Description: role.Description,
			Specialty:   role.Specialty,
			SkillsCount: len(role.Requirements),
		},
		Requirements: role.Requirements,
	}, nil
}
