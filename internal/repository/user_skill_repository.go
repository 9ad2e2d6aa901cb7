package repository

import (
	"context"
	"database/sql"
	"errors"

	"med-ready/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUserSkillNotFound  = errors.New("skill not found")
	ErrUserSkillForbidden = errors.New("forbidden")
)

type UserSkill struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	SkillID         uuid.UUID
	SkillName       string
	Category        string
	Level           string
	YearsExperience int
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	FindByUserAndSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) (UserSkill, error)
	SkillExistsByID(ctx context.Context, skillID uuid.UUID) (bool, error)
	Upsert(ctx context.Context, us UserSkill) (UserSkill, error)
	Delete(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT us.id, us.user_id, us.skill_id, s.name, COALESCE(s.category, 'General'),
		        COALESCE(us.level, 'none'), COALESCE(us.years_experience, 0)
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &us.Category, &us.Level, &us.YearsExperience); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) FindByUserAndSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) (UserSkill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT us.id, us.user_id, us.skill_id, s.name, COALESCE(s.category, 'General'),
		        COALESCE(us.level, 'none'), COALESCE(us.years_experience, 0)
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1 AND us.skill_id = $2`,
		userID, skillID,
	)

	var us UserSkill
	if err := row.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &us.Category, &us.Level, &us.YearsExperience); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return UserSkill{}, ErrUserSkillNotFound
		}
		return UserSkill{}, err
	}
	return us, nil
}

func (r *PostgresUserSkillRepository) SkillExistsByID(ctx context.Context, skillID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, skillID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Upsert inserts or replaces the user's proficiency record for a skill.
// The unique(user_id, skill_id) constraint makes re-submitting a skill
// an update rather than a duplicate row.
func (r *PostgresUserSkillRepository) Upsert(ctx context.Context, us UserSkill) (UserSkill, error) {
	exists, err := r.SkillExistsByID(ctx, us.SkillID)
	if err != nil {
		return UserSkill{}, err
	}
	if !exists {
		return UserSkill{}, ErrUserSkillNotFound
	}

	if us.ID == uuid.Nil {
		us.ID = uuid.New()
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO user_skills (id, user_id, skill_id, level, years_experience)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, skill_id)
		 DO UPDATE SET level = EXCLUDED.level, years_experience = EXCLUDED.years_experience, updated_at = NOW()`,
		us.ID, us.UserID, us.SkillID, us.Level, us.YearsExperience,
	)
	if err != nil {
		return UserSkill{}, err
	}

	return r.FindByUserAndSkill(ctx, us.UserID, us.SkillID)
}

func (r *PostgresUserSkillRepository) Delete(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error {
	exists, err := r.SkillExistsByID(ctx, skillID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserSkillNotFound
	}

	rowsAffected, err := r.db.Exec(ctx,
		`DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserSkillForbidden
	}
	return nil
}

var _ UserSkillRepository = (*PostgresUserSkillRepository)(nil)
