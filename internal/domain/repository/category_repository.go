package repository

import (
	"context"

	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
)

// CategoryRepository defines the persistence port for Category (DIP).
type CategoryRepository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
