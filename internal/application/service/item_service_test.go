package service

import (
	"context"
	"testing"
)

func TestCreateItemValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateItemInput
		wantErr bool
	}{
		{
			name:  "valid item",
			input: CreateItemInput{Name: "Cooker", Type: "5L", Price: 1200},
		},
		{
			name:  "zero price is allowed",
			input: CreateItemInput{Name: "Spoon", Type: "Steel", Price: 0},
		},
		{
			name:    "empty name",
			input:   CreateItemInput{Name: "  ", Type: "5L", Price: 10},
			wantErr: true,
		},
		{
			name:    "empty type",
			input:   CreateItemInput{Name: "Cooker", Type: "", Price: 10},
			wantErr: true,
		},
		{
			name:    "negative price",
			input:   CreateItemInput{Name: "Cooker", Type: "5L", Price: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newTestRepos(t)
			svc := NewItemService(repos.items)

			item, err := svc.CreateItem(context.Background(), &tt.input)
			if tt.wantErr {
				assertValidationError(t, err)
				return
			}
			if err != nil {
				t.Fatalf("CreateItem: %v", err)
			}
			if item.Name != tt.input.Name || item.Type != tt.input.Type {
				t.Errorf("item = %+v, want name %q type %q", item, tt.input.Name, tt.input.Type)
			}
		})
	}
}

func TestCreateItemTrimsFields(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewItemService(repos.items)

	item, err := svc.CreateItem(context.Background(), &CreateItemInput{Name: " Cooker ", Type: " 5L ", Price: 1200})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Name != "Cooker" || item.Type != "5L" {
		t.Errorf("item = %+v, want trimmed name and type", item)
	}
}

func TestListItemsSearch(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewItemService(repos.items)
	ctx := context.Background()

	seed := []CreateItemInput{
		{Name: "Cooker", Type: "5L", Price: 1200},
		{Name: "Kadhai", Type: "Steel", Price: 450},
		{Name: "Fan", Type: "Ceiling", Price: 1800},
	}
	for i := range seed {
		if _, err := svc.CreateItem(ctx, &seed[i]); err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}

	tests := []struct {
		name      string
		search    string
		wantNames []string
	}{
		{name: "empty query yields all in insertion order", search: "", wantNames: []string{"Cooker", "Kadhai", "Fan"}},
		{name: "match on name is case-insensitive", search: "cook", wantNames: []string{"Cooker"}},
		{name: "match on type", search: "steel", wantNames: []string{"Kadhai"}},
		{name: "no match", search: "tv", wantNames: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := svc.ListItems(ctx, tt.search)
			if err != nil {
				t.Fatalf("ListItems: %v", err)
			}
			if len(items) != len(tt.wantNames) {
				t.Fatalf("got %d items, want %d", len(items), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if items[i].Name != want {
					t.Errorf("items[%d].Name = %q, want %q", i, items[i].Name, want)
				}
			}
		})
	}
}

func TestUpdatePrice(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewItemService(repos.items)
	ctx := context.Background()

	if _, err := svc.CreateItem(ctx, &CreateItemInput{Name: "Cooker", Type: "5L", Price: 1200}); err != nil {
		t.Fatalf("seed item: %v", err)
	}

	item, err := svc.UpdatePrice(ctx, 0, 1350.50)
	if err != nil {
		t.Fatalf("UpdatePrice: %v", err)
	}
	if item.Price != 135050 {
		t.Errorf("price = %d cents, want 135050", item.Price)
	}

	if _, err := svc.UpdatePrice(ctx, 0, -5); err == nil {
		t.Error("expected validation error for negative price")
	}

	_, err = svc.UpdatePrice(ctx, 7, 100)
	assertNotFoundError(t, err)
}

func TestDeleteItem(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewItemService(repos.items)
	ctx := context.Background()

	if _, err := svc.CreateItem(ctx, &CreateItemInput{Name: "Cooker", Type: "5L", Price: 1200}); err != nil {
		t.Fatalf("seed item: %v", err)
	}

	if err := svc.DeleteItem(ctx, 0); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	items, err := svc.ListItems(ctx, "")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items after delete, want 0", len(items))
	}

	assertNotFoundError(t, svc.DeleteItem(ctx, 0))
}
