package repository

import (
	"context"

	"github.com/shreya-jain12/JainTriad/internal/domain/entity"
)

// BillRepository defines the interface for bill data operations. Bills
// are append-only: there is no update or single-bill delete.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByIndex(ctx context.Context, index int) (*entity.Bill, error)
	List(ctx context.Context) ([]entity.Bill, error)
	// ListByCustomer returns the bills whose customer field equals name
	// exactly, in insertion order.
	ListByCustomer(ctx context.Context, name string) ([]entity.Bill, error)
}
