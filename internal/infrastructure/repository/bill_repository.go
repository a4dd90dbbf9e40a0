package repository

import (
	"context"

	"github.com/shreya-jain12/JainTriad/internal/domain/entity"
	domainRepo "github.com/shreya-jain12/JainTriad/internal/domain/repository"
	"github.com/shreya-jain12/JainTriad/internal/infrastructure/store"
)

type billRepository struct {
	store *store.Store
}

// NewBillRepository creates a new bill repository
func NewBillRepository(s *store.Store) domainRepo.BillRepository {
	return &billRepository{store: s}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.store.AppendBill(*bill)
}

func (r *billRepository) GetByIndex(ctx context.Context, index int) (*entity.Bill, error) {
	b, ok := r.store.BillAt(index)
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *billRepository) List(ctx context.Context) ([]entity.Bill, error) {
	return r.store.Bills(), nil
}

func (r *billRepository) ListByCustomer(ctx context.Context, name string) ([]entity.Bill, error) {
	var bills []entity.Bill
	for _, b := range r.store.Bills() {
		if b.Customer == name {
			bills = append(bills, b)
		}
	}
	return bills, nil
}
