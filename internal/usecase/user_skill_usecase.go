package usecase

import (
	"context"
	"errors"

	"med-ready/internal/domain/proficiency"
	"med-ready/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrSkillNotFound = errors.New("skill not found")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidLevel  = errors.New("invalid proficiency level")
	ErrInvalidInput  = errors.New("invalid input")
)

type UpsertUserSkillInput struct {
	SkillID         uuid.UUID
	Level           string
	YearsExperience int
}

type UserSkillItem struct {
	ID              uuid.UUID
	SkillID         uuid.UUID
	SkillName       string
	Category        string
	Level           string
	YearsExperience int
}

type UserSkillUsecase interface {
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error)
	UpsertUserSkill(ctx context.Context, userID uuid.UUID, in UpsertUserSkillInput) (UserSkillItem, error)
	RemoveUserSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error
}

type UserSkill struct {
	repo repository.UserSkillRepository
}

func NewUserSkillUsecase(repo repository.UserSkillRepository) *UserSkill {
	return &UserSkill{repo: repo}
}

func (u *UserSkill) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error) {
	items, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]UserSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, toUserSkillItem(it))
	}
	return out, nil
}

func (u *UserSkill) UpsertUserSkill(ctx context.Context, userID uuid.UUID, in UpsertUserSkillInput) (UserSkillItem, error) {
	if in.SkillID == uuid.Nil {
		return UserSkillItem{}, ErrInvalidInput
	}
	if !proficiency.Known(in.Level) {
		return UserSkillItem{}, ErrInvalidLevel
	}
	if in.YearsExperience < 0 {
		return UserSkillItem{}, ErrInvalidInput
	}

	saved, err := u.repo.Upsert(ctx, repository.UserSkill{
		UserID:          userID,
		SkillID:         in.SkillID,
		Level:           in.Level,
		YearsExperience: in.YearsExperience,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserSkillNotFound):
			return UserSkillItem{}, ErrSkillNotFound
		case isForeignKeyViolation(err):
			return UserSkillItem{}, ErrSkillNotFound
		default:
			return UserSkillItem{}, ErrInternal
		}
	}
	return toUserSkillItem(saved), nil
}

func (u *UserSkill) RemoveUserSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error {
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, userID, skillID); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserSkillNotFound):
			return ErrSkillNotFound
		case errors.Is(err, repository.ErrUserSkillForbidden):
			return ErrForbidden
		default:
			return ErrInternal
		}
	}
	return nil
}

func toUserSkillItem(us repository.UserSkill) UserSkillItem {
	return UserSkillItem{
		ID:              us.ID,
		SkillID:         us.SkillID,
		SkillName:       us.SkillName,
		Category:        us.Category,
		Level:           us.Level,
		YearsExperience: us.YearsExperience,
	}
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
