package usecase

import "context"

// SearchCache fronts the external project search. Implementations are
// best-effort: a miss and an unavailable backend look the same.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}
