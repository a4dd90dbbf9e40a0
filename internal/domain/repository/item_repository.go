package repository

import (
	"context"
	"iter"

	"github.com/shreya-jain12/JainTriad/internal/domain/entity"
)

// ItemRepository defines the interface for catalog data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByIndex(ctx context.Context, index int) (*entity.Item, error)
	List(ctx context.Context) ([]entity.Item, error)
	// Search yields items whose name or type contains query,
	// case-insensitively. An empty query yields every item in insertion
	// order.
	Search(ctx context.Context, query string) iter.Seq[entity.Item]
	// UpdatePrice mutates the price of the item at index, in cents.
	UpdatePrice(ctx context.Context, index int, priceCents int64) error
	// Delete removes the item at index. Existing bills keep their price
	// snapshots and are not affected.
	Delete(ctx context.Context, index int) error
}
