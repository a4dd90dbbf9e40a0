package repository

import (
	"context"
	"errors"
	"iter"

	"github.com/shreya-jain12/JainTriad/internal/domain/entity"
)

// ErrNotFound is returned by repositories when an index or name does not
// resolve to a record.
var ErrNotFound = errors.New("record not found")

// CustomerRepository defines the interface for customer directory operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByIndex(ctx context.Context, index int) (*entity.Customer, error)
	// GetByName returns the first customer with that exact name, or nil.
	GetByName(ctx context.Context, name string) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
	// Search yields customers matching query case-insensitively against
	// name or email, or by raw substring against phone. An empty query
	// yields every customer in insertion order.
	Search(ctx context.Context, query string) iter.Seq[entity.Customer]
	// DeleteWithBills removes the customer at index together with every
	// bill carrying its name, as a single persisted operation. It returns
	// the number of bills swept.
	DeleteWithBills(ctx context.Context, index int) (int, error)
}
