package repository

import (
	"context"

	"med-ready/internal/database"
	"med-ready/internal/domain/recommend"
)

type CourseRepository interface {
	FindAll(ctx context.Context) ([]recommend.Course, error)
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

const courseColumns = `id, title, COALESCE(description, ''), COALESCE(provider, ''), COALESCE(url, ''),
       COALESCE(specialty, 'General'), COALESCE(skills_covered, '{}'),
       COALESCE(duration, ''), COALESCE(difficulty, 'beginner'), COALESCE(cost, 0)`

func (r *PostgresCourseRepository) FindAll(ctx context.Context) ([]recommend.Course, error) {
	rows, err := r.db.Query(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourses(rows)
}

func scanCourses(rows database.Rows) ([]recommend.Course, error) {
	out := make([]recommend.Course, 0)
	for rows.Next() {
		var c recommend.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Provider, &c.URL,
			&c.Specialty, &c.SkillsCovered, &c.Duration, &c.Difficulty, &c.Cost); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ CourseRepository = (*PostgresCourseRepository)(nil)
