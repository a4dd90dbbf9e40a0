package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shreya-jain12/JainTriad/internal/domain/entity"
	"github.com/shreya-jain12/JainTriad/internal/domain/enum"
	"github.com/shreya-jain12/JainTriad/internal/domain/repository"
	"github.com/shreya-jain12/JainTriad/internal/i18n"
	"github.com/shreya-jain12/JainTriad/pkg/apperror"
	"github.com/shreya-jain12/JainTriad/pkg/money"
)

// MaxQuantity bounds a single line's quantity to catch fat-finger input.
const MaxQuantity = 100

// BillService handles bill generation and export
type BillService struct {
	billRepo     repository.BillRepository
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
	now          func() time.Time
}

// NewBillService creates a new bill service
func NewBillService(
	billRepo repository.BillRepository,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
) *BillService {
	return &BillService{
		billRepo:     billRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		now:          time.Now,
	}
}

// SelectionInput is one picked catalog item, referenced by its
// "name (type)" label. Selection order is preserved in the bill.
type SelectionInput struct {
	Label string
	Qty   int
}

// GenerateBillInput represents the generate bill input
type GenerateBillInput struct {
	Customer   string
	Selections []SelectionInput
	Paid       enum.PaidStatus
}

// GenerateBill computes and appends a new bill: each selection resolves
// against the catalog, snapshots the current price, and contributes
// price*qty to the total. Bills are never mutated afterwards.
func (s *BillService) GenerateBill(ctx context.Context, input *GenerateBillInput) (*entity.Bill, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByName(ctx, input.Customer)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var lines []entity.BillLine
	var total int64
	for _, sel := range input.Selections {
		matched := false
		// Every catalog item carrying the label contributes a line;
		// duplicate (name, type) pairs are not collapsed.
		for i := range items {
			if items[i].Label() != sel.Label {
				continue
			}
			matched = true
			subtotal := items[i].Price * int64(sel.Qty)
			lines = append(lines, entity.BillLine{
				Name:     items[i].Name,
				Type:     items[i].Type,
				Price:    items[i].Price,
				Qty:      sel.Qty,
				Subtotal: subtotal,
			})
			total += subtotal
		}
		if !matched {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Item %q", sel.Label))
		}
	}

	bill := &entity.Bill{
		Customer: customer.Name,
		Date:     s.now().Format(entity.DateLayout),
		Items:    lines,
		Total:    total,
		Paid:     input.Paid,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	return bill, nil
}

func (s *BillService) validate(input *GenerateBillInput) error {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Customer) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer", Message: "Customer is required"})
	}
	if len(input.Selections) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "Select at least one item"})
	}
	for _, sel := range input.Selections {
		if sel.Qty < 1 || sel.Qty > MaxQuantity {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   "items",
				Message: fmt.Sprintf("Quantity for %q must be between 1 and %d", sel.Label, MaxQuantity),
			})
		}
	}
	if !input.Paid.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "paid", Message: "Paid status must be Paid or Unpaid"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// GetBill retrieves the bill at index
func (s *BillService) GetBill(ctx context.Context, index int) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByIndex(ctx, index)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills returns every bill in insertion order
func (s *BillService) ListBills(ctx context.Context) ([]entity.Bill, error) {
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if bills == nil {
		bills = []entity.Bill{}
	}
	return bills, nil
}

// Render produces the plain-text form of a bill. The layout is the
// export schema and must stay stable: one line per field, one line per
// item, no trailing metadata.
func (s *BillService) Render(bill *entity.Bill, lang i18n.Lang) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", lang.T("customer"), bill.Customer)
	fmt.Fprintf(&sb, "%s: %s\n", lang.T("date"), bill.Date)
	fmt.Fprintf(&sb, "%s:\n", lang.T("items"))
	for _, line := range bill.Items {
		fmt.Fprintf(&sb, "- %s (%s) x %d = ₹%s\n", line.Name, line.Type, line.Qty, money.Format(line.Subtotal))
	}
	fmt.Fprintf(&sb, "%s: ₹%s\n", lang.T("total"), money.Format(bill.Total))
	fmt.Fprintf(&sb, "%s: %s\n", lang.T("status"), bill.Paid)
	return sb.String()
}

var filenameSanitizer = strings.NewReplacer(":", "-", " ", "_")

// ExportFilename names a single-bill download after its customer and date.
func (s *BillService) ExportFilename(bill *entity.Bill) string {
	return fmt.Sprintf("%s_%s_bill.txt", bill.Customer, filenameSanitizer.Replace(bill.Date))
}

// ExportBill renders the bill at index for download.
func (s *BillService) ExportBill(ctx context.Context, index int, lang i18n.Lang) (filename, body string, err error) {
	bill, err := s.GetBill(ctx, index)
	if err != nil {
		return "", "", err
	}
	return s.ExportFilename(bill), s.Render(bill, lang), nil
}

// ExportAll serializes the full bill collection verbatim as JSON.
func (s *BillService) ExportAll(ctx context.Context) ([]byte, error) {
	bills, err := s.ListBills(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(bills, "", "  ")
}
