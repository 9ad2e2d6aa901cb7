package seeder

import (
	"context"

	"med-ready/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
