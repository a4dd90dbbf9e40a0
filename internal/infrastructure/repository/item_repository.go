package repository

import (
	"context"
	"iter"
	"strings"

	"github.com/shreya-jain12/JainTriad/internal/domain/entity"
	domainRepo "github.com/shreya-jain12/JainTriad/internal/domain/repository"
	"github.com/shreya-jain12/JainTriad/internal/infrastructure/store"
)

type itemRepository struct {
	store *store.Store
}

// NewItemRepository creates a new item repository
func NewItemRepository(s *store.Store) domainRepo.ItemRepository {
	return &itemRepository{store: s}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	return r.store.AppendItem(*item)
}

func (r *itemRepository) GetByIndex(ctx context.Context, index int) (*entity.Item, error) {
	i, ok := r.store.ItemAt(index)
	if !ok {
		return nil, nil
	}
	return &i, nil
}

func (r *itemRepository) List(ctx context.Context) ([]entity.Item, error) {
	return r.store.Items(), nil
}

func (r *itemRepository) Search(ctx context.Context, query string) iter.Seq[entity.Item] {
	lq := strings.ToLower(query)
	return func(yield func(entity.Item) bool) {
		for _, i := range r.store.Items() {
			if lq != "" &&
				!strings.Contains(strings.ToLower(i.Name), lq) &&
				!strings.Contains(strings.ToLower(i.Type), lq) {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

func (r *itemRepository) UpdatePrice(ctx context.Context, index int, priceCents int64) error {
	return r.store.UpdateItemPriceAt(index, priceCents)
}

func (r *itemRepository) Delete(ctx context.Context, index int) error {
	return r.store.DeleteItemAt(index)
}
