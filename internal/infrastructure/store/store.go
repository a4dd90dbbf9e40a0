// Package store persists the shop's three collections as whole-file JSON
// documents: customers and bills share one document, items live in a
// second one holding a bare array. Every mutation rewrites the relevant
// file in full; there is no incremental persistence.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/shreya-jain12/JainTriad/internal/domain/entity"
	"github.com/shreya-jain12/JainTriad/internal/domain/repository"
)

// khaataDocument is the on-disk shape of the customer/bill store.
type khaataDocument struct {
	Customers []entity.Customer `json:"customers"`
	Bills     []entity.Bill     `json:"bills"`
}

// Options configures a Store.
type Options struct {
	// DataPath is the customer/bill document, ItemPath the item document.
	DataPath string
	ItemPath string
	// ResetOnCorruption makes Load substitute empty collections when a
	// store file is unreadable or malformed instead of returning the
	// error. This favors availability: a corrupt file means starting
	// fresh, never a crash. A missing file is always treated as empty.
	ResetOnCorruption bool
}

// Store holds the collections in memory and is the only I/O boundary.
// A single mutex serializes operations; the write model is still
// load-mutate-save per request, matching the single-shop scale.
type Store struct {
	mu   sync.RWMutex
	opts Options

	customers []entity.Customer
	bills     []entity.Bill
	items     []entity.Item
}

// New creates a Store. Call Load before use.
func New(opts Options) *Store {
	return &Store{opts: opts}
}

// Load reads both documents. Entries failing the load filters are
// dropped: customers need a non-empty name, items a non-empty name and
// type. With ResetOnCorruption set, unreadable documents yield empty
// collections and a nil error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc khaataDocument
	if err := readDocument(s.opts.DataPath, &doc); err != nil {
		if !s.opts.ResetOnCorruption {
			return fmt.Errorf("load khaata store: %w", err)
		}
		doc = khaataDocument{}
	}
	s.customers = filterCustomers(doc.Customers)
	s.bills = doc.Bills
	if s.bills == nil {
		s.bills = []entity.Bill{}
	}

	var items []entity.Item
	if err := readDocument(s.opts.ItemPath, &items); err != nil {
		if !s.opts.ResetOnCorruption {
			return fmt.Errorf("load item store: %w", err)
		}
		items = nil
	}
	s.items = filterItems(items)

	return nil
}

// readDocument decodes the JSON document at path into v. A missing file
// is not an error: a fresh install starts with empty collections.
func readDocument(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func filterCustomers(in []entity.Customer) []entity.Customer {
	out := make([]entity.Customer, 0, len(in))
	for _, c := range in {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func filterItems(in []entity.Item) []entity.Item {
	out := make([]entity.Item, 0, len(in))
	for _, i := range in {
		if strings.TrimSpace(i.Name) == "" || strings.TrimSpace(i.Type) == "" {
			continue
		}
		out = append(out, i)
	}
	return out
}

// saveKhaata rewrites the customer/bill document. Caller holds the lock.
func (s *Store) saveKhaata() error {
	doc := khaataDocument{Customers: s.customers, Bills: s.bills}
	return writeDocument(s.opts.DataPath, doc)
}

// saveItems rewrites the item document. Caller holds the lock.
func (s *Store) saveItems() error {
	return writeDocument(s.opts.ItemPath, s.items)
}

func writeDocument(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Customers returns a copy of the customer collection in insertion order.
func (s *Store) Customers() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Bills returns a copy of the bill collection in insertion order.
func (s *Store) Bills() []entity.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Bill, len(s.bills))
	copy(out, s.bills)
	return out
}

// Items returns a copy of the item collection in insertion order.
func (s *Store) Items() []entity.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Item, len(s.items))
	copy(out, s.items)
	return out
}

// CustomerAt returns the customer at index, if any.
func (s *Store) CustomerAt(index int) (entity.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.customers) {
		return entity.Customer{}, false
	}
	return s.customers[index], true
}

// BillAt returns the bill at index, if any.
func (s *Store) BillAt(index int) (entity.Bill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.bills) {
		return entity.Bill{}, false
	}
	return s.bills[index], true
}

// ItemAt returns the item at index, if any.
func (s *Store) ItemAt(index int) (entity.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.items) {
		return entity.Item{}, false
	}
	return s.items[index], true
}

// AppendCustomer adds a customer and persists the khaata document.
func (s *Store) AppendCustomer(c entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, c)
	return s.saveKhaata()
}

// DeleteCustomerAt removes the customer at index and sweeps every bill
// carrying its name, then persists once. It returns the number of bills
// removed. Duplicate customer names mean the sweep takes all of them;
// that mirrors the name-keyed back-reference model.
func (s *Store) DeleteCustomerAt(index int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.customers) {
		return 0, repository.ErrNotFound
	}
	name := s.customers[index].Name
	s.customers = append(s.customers[:index], s.customers[index+1:]...)

	kept := s.bills[:0]
	removed := 0
	for _, b := range s.bills {
		if b.Customer == name {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	s.bills = kept

	return removed, s.saveKhaata()
}

// AppendBill adds a bill and persists the khaata document.
func (s *Store) AppendBill(b entity.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills = append(s.bills, b)
	return s.saveKhaata()
}

// AppendItem adds an item and persists the item document.
func (s *Store) AppendItem(i entity.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, i)
	return s.saveItems()
}

// UpdateItemPriceAt mutates the price of the item at index, in cents,
// and persists the item document.
func (s *Store) UpdateItemPriceAt(index int, priceCents int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return repository.ErrNotFound
	}
	s.items[index].Price = priceCents
	return s.saveItems()
}

// DeleteItemAt removes the item at index and persists the item document.
func (s *Store) DeleteItemAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return repository.ErrNotFound
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return s.saveItems()
}
