package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shreya-jain12/JainTriad/internal/domain/entity"
	"github.com/shreya-jain12/JainTriad/internal/domain/repository"
	"github.com/shreya-jain12/JainTriad/pkg/apperror"
	"github.com/shreya-jain12/JainTriad/pkg/money"
)

// ItemService handles catalog operations
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	Name  string
	Type  string
	Price float64
}

// CreateItem adds a catalog item. Name and type are required after
// trimming; price must be non-negative.
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	name := strings.TrimSpace(input.Name)
	itemType := strings.TrimSpace(input.Type)

	var fieldErrors []apperror.FieldError
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if itemType == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "type", Message: "Type is required"})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	item := &entity.Item{
		Name:  name,
		Type:  itemType,
		Price: money.ToCents(input.Price),
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetItem retrieves the item at index
func (s *ItemService) GetItem(ctx context.Context, index int) (*entity.Item, error) {
	item, err := s.itemRepo.GetByIndex(ctx, index)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems returns items whose name or type matches search (all of them
// when search is empty), in insertion order.
func (s *ItemService) ListItems(ctx context.Context, search string) ([]entity.Item, error) {
	items := []entity.Item{}
	for i := range s.itemRepo.Search(ctx, search) {
		items = append(items, i)
	}
	return items, nil
}

// UpdatePrice mutates the price of the item at index in place.
func (s *ItemService) UpdatePrice(ctx context.Context, index int, price float64) (*entity.Item, error) {
	if price < 0 {
		return nil, apperror.NewFieldError("price", "Price must not be negative")
	}

	if err := s.itemRepo.UpdatePrice(ctx, index, money.ToCents(price)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NewNotFoundError("Item")
		}
		return nil, err
	}

	return s.GetItem(ctx, index)
}

// DeleteItem removes the item at index. Bills keep their snapshots.
func (s *ItemService) DeleteItem(ctx context.Context, index int) error {
	if err := s.itemRepo.Delete(ctx, index); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NewNotFoundError("Item")
		}
		return err
	}
	return nil
}
