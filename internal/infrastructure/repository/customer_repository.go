package repository

import (
	"context"
	"iter"
	"strings"

	"github.com/shreya-jain12/JainTriad/internal/domain/entity"
	domainRepo "github.com/shreya-jain12/JainTriad/internal/domain/repository"
	"github.com/shreya-jain12/JainTriad/internal/infrastructure/store"
)

type customerRepository struct {
	store *store.Store
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(s *store.Store) domainRepo.CustomerRepository {
	return &customerRepository{store: s}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.store.AppendCustomer(*customer)
}

func (r *customerRepository) GetByIndex(ctx context.Context, index int) (*entity.Customer, error) {
	c, ok := r.store.CustomerAt(index)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *customerRepository) GetByName(ctx context.Context, name string) (*entity.Customer, error) {
	for _, c := range r.store.Customers() {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *customerRepository) List(ctx context.Context) ([]entity.Customer, error) {
	return r.store.Customers(), nil
}

func (r *customerRepository) Search(ctx context.Context, query string) iter.Seq[entity.Customer] {
	lq := strings.ToLower(query)
	return func(yield func(entity.Customer) bool) {
		for _, c := range r.store.Customers() {
			if !customerMatches(c, query, lq) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// customerMatches folds case for name and email; phone is matched raw
// since phone numbers are digits.
func customerMatches(c entity.Customer, raw, lowered string) bool {
	if raw == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), lowered) ||
		strings.Contains(c.Phone, raw) ||
		strings.Contains(strings.ToLower(c.Email), lowered)
}

func (r *customerRepository) DeleteWithBills(ctx context.Context, index int) (int, error) {
	return r.store.DeleteCustomerAt(index)
}
