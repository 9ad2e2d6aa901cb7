package repository

import (
	"context"
	"database/sql"
	"errors"

	"med-ready/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrRoleNotFound = errors.New("career path not found")

// Role is a target career path with its resolved skill requirements.
type Role struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Specialty    string
	Requirements []RoleRequirement
}

type RoleRequirement struct {
	SkillID       uuid.UUID
	SkillName     string
	Category      string
	RequiredLevel string
	Importance    int
}

type RoleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Role, error)
	List(ctx context.Context) ([]Role, error)
}

type PostgresRoleRepository struct {
	db database.DB
}

func NewPostgresRoleRepository(db database.DB) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

func (r *PostgresRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (Role, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(specialty, 'General')
		 FROM career_paths
		 WHERE id = $1`,
		id,
	)

	var role Role
	if err := row.Scan(&role.ID, &role.Title, &role.Description, &role.Specialty); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}

	// INNER JOIN drops requirements whose skill reference dangles; a
	// broken reference is data noise, not a caller-visible failure.
	rows, err := r.db.Query(ctx,
		`SELECT cps.skill_id, s.name, COALESCE(s.category, 'General'),
		        COALESCE(cps.required_level, 'intermediate'), COALESCE(cps.importance, 5)
		 FROM career_path_skills cps
		 JOIN skills s ON s.id = cps.skill_id
		 WHERE cps.career_path_id = $1
		 ORDER BY cps.position ASC`,
		id,
	)
	if err != nil {
		return Role{}, err
	}
	defer rows.Close()

	role.Requirements = make([]RoleRequirement, 0)
	for rows.Next() {
		var req RoleRequirement
		if err := rows.Scan(&req.SkillID, &req.SkillName, &req.Category, &req.RequiredLevel, &req.Importance); err != nil {
			return Role{}, err
		}
		role.Requirements = append(role.Requirements, req)
	}
	if err := rows.Err(); err != nil {
		return Role{}, err
	}
	return role, nil
}

func (r *PostgresRoleRepository) List(ctx context.Context) ([]Role, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(specialty, 'General')
		 FROM career_paths
		 ORDER BY title ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Role, 0)
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Title, &role.Description, &role.Specialty); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ RoleRepository = (*PostgresRoleRepository)(nil)
