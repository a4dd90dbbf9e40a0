package service

import (
	"context"
	"encoding/json"

	"github.com/shreya-jain12/JainTriad/internal/domain/entity"
	"github.com/shreya-jain12/JainTriad/internal/domain/enum"
	"github.com/shreya-jain12/JainTriad/internal/domain/repository"
	"github.com/shreya-jain12/JainTriad/pkg/money"
)

// LedgerService derives per-customer khaata summaries from the bill
// collection. It mutates nothing.
type LedgerService struct {
	billRepo repository.BillRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(billRepo repository.BillRepository) *LedgerService {
	return &LedgerService{billRepo: billRepo}
}

// Ledger summarizes one customer's bills. Matching is exact on the name
// string: a renamed customer orphans their old bills from this view.
type Ledger struct {
	Customer  string
	Count     int
	TotalPaid int64 // Stored in cents
	TotalDue  int64 // Stored in cents
	Bills     []entity.Bill
}

type ledgerJSON struct {
	Customer  string        `json:"customer"`
	Count     int           `json:"count"`
	TotalPaid float64       `json:"total_paid"`
	TotalDue  float64       `json:"total_due"`
	Bills     []entity.Bill `json:"bills"`
}

// MarshalJSON converts the cent totals to decimals for API responses
func (l Ledger) MarshalJSON() ([]byte, error) {
	bills := l.Bills
	if bills == nil {
		bills = []entity.Bill{}
	}
	return json.Marshal(ledgerJSON{
		Customer:  l.Customer,
		Count:     l.Count,
		TotalPaid: money.FromCents(l.TotalPaid),
		TotalDue:  money.FromCents(l.TotalDue),
		Bills:     bills,
	})
}

// LedgerFor aggregates the bills whose customer field equals name: bill
// count, total of Paid bills and total of Unpaid bills, with the bills
// themselves in insertion order.
func (s *LedgerService) LedgerFor(ctx context.Context, name string) (*Ledger, error) {
	bills, err := s.billRepo.ListByCustomer(ctx, name)
	if err != nil {
		return nil, err
	}

	ledger := &Ledger{Customer: name, Count: len(bills), Bills: bills}
	for _, b := range bills {
		switch b.Paid {
		case enum.PaidStatusPaid:
			ledger.TotalPaid += b.Total
		case enum.PaidStatusUnpaid:
			ledger.TotalDue += b.Total
		}
	}
	return ledger, nil
}
