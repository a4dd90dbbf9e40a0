package service

import (
	"context"
	"testing"

	"github.com/shreya-jain12/JainTriad/internal/domain/entity"
	"github.com/shreya-jain12/JainTriad/internal/domain/enum"
	"github.com/shreya-jain12/JainTriad/internal/i18n"
)

func seedBillFixtures(t *testing.T, repos testRepos) {
	t.Helper()
	ctx := context.Background()
	if err := repos.customers.Create(ctx, &entity.Customer{Name: "Ravi", Phone: "999"}); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	items := []entity.Item{
		{Name: "Cooker", Type: "5L", Price: 120000},
		{Name: "Tawa", Type: "Iron", Price: 35050},
	}
	for i := range items {
		if err := repos.items.Create(ctx, &items[i]); err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}
}

func TestGenerateBill(t *testing.T) {
	repos := newTestRepos(t)
	seedBillFixtures(t, repos)
	svc := NewBillService(repos.bills, repos.items, repos.customers)
	svc.now = fixedClock(t, "2025-03-01 10:30")

	bill, err := svc.GenerateBill(context.Background(), &GenerateBillInput{
		Customer:   "Ravi",
		Selections: []SelectionInput{{Label: "Cooker (5L)", Qty: 2}},
		Paid:       enum.PaidStatusUnpaid,
	})
	if err != nil {
		t.Fatalf("GenerateBill: %v", err)
	}

	if bill.Customer != "Ravi" {
		t.Errorf("customer = %q, want Ravi", bill.Customer)
	}
	if bill.Date != "2025-03-01 10:30" {
		t.Errorf("date = %q, want 2025-03-01 10:30", bill.Date)
	}
	if bill.Total != 240000 {
		t.Errorf("total = %d, want 240000", bill.Total)
	}
	if len(bill.Items) != 1 {
		t.Fatalf("lines = %d, want 1", len(bill.Items))
	}
	want := entity.BillLine{Name: "Cooker", Type: "5L", Price: 120000, Qty: 2, Subtotal: 240000}
	if bill.Items[0] != want {
		t.Errorf("line = %+v, want %+v", bill.Items[0], want)
	}

	// The bill must have been appended to the collection.
	bills, err := svc.ListBills(context.Background())
	if err != nil {
		t.Fatalf("ListBills: %v", err)
	}
	if len(bills) != 1 {
		t.Errorf("bill count = %d, want 1", len(bills))
	}
}

func TestGenerateBillPriceSnapshot(t *testing.T) {
	repos := newTestRepos(t)
	seedBillFixtures(t, repos)
	ctx := context.Background()
	svc := NewBillService(repos.bills, repos.items, repos.customers)
	svc.now = fixedClock(t, "2025-03-01 10:30")

	bill, err := svc.GenerateBill(ctx, &GenerateBillInput{
		Customer:   "Ravi",
		Selections: []SelectionInput{{Label: "Cooker (5L)", Qty: 1}},
		Paid:       enum.PaidStatusPaid,
	})
	if err != nil {
		t.Fatalf("GenerateBill: %v", err)
	}

	// A later catalog price change must not touch the existing bill.
	if err := repos.items.UpdatePrice(ctx, 0, 99900); err != nil {
		t.Fatalf("UpdatePrice: %v", err)
	}
	stored, err := svc.GetBill(ctx, 0)
	if err != nil {
		t.Fatalf("GetBill: %v", err)
	}
	if stored.Items[0].Price != 120000 || stored.Total != bill.Total {
		t.Errorf("bill changed after price update: %+v", stored)
	}
}

func TestGenerateBillDuplicateLabels(t *testing.T) {
	repos := newTestRepos(t)
	seedBillFixtures(t, repos)
	ctx := context.Background()
	// Second catalog entry with the same label, at a different price.
	if err := repos.items.Create(ctx, &entity.Item{Name: "Cooker", Type: "5L", Price: 100000}); err != nil {
		t.Fatalf("seed duplicate: %v", err)
	}
	svc := NewBillService(repos.bills, repos.items, repos.customers)
	svc.now = fixedClock(t, "2025-03-01 10:30")

	bill, err := svc.GenerateBill(ctx, &GenerateBillInput{
		Customer:   "Ravi",
		Selections: []SelectionInput{{Label: "Cooker (5L)", Qty: 1}},
		Paid:       enum.PaidStatusPaid,
	})
	if err != nil {
		t.Fatalf("GenerateBill: %v", err)
	}
	if len(bill.Items) != 2 {
		t.Fatalf("lines = %d, want 2 (one per matching catalog entry)", len(bill.Items))
	}
	if bill.Total != 220000 {
		t.Errorf("total = %d, want 220000", bill.Total)
	}
}

func TestGenerateBillValidation(t *testing.T) {
	repos := newTestRepos(t)
	seedBillFixtures(t, repos)
	svc := NewBillService(repos.bills, repos.items, repos.customers)

	tests := []struct {
		name  string
		input GenerateBillInput
	}{
		{
			name:  "empty customer",
			input: GenerateBillInput{Selections: []SelectionInput{{Label: "Cooker (5L)", Qty: 1}}, Paid: enum.PaidStatusPaid},
		},
		{
			name:  "no selections",
			input: GenerateBillInput{Customer: "Ravi", Paid: enum.PaidStatusPaid},
		},
		{
			name:  "zero quantity",
			input: GenerateBillInput{Customer: "Ravi", Selections: []SelectionInput{{Label: "Cooker (5L)", Qty: 0}}, Paid: enum.PaidStatusPaid},
		},
		{
			name:  "quantity over limit",
			input: GenerateBillInput{Customer: "Ravi", Selections: []SelectionInput{{Label: "Cooker (5L)", Qty: 101}}, Paid: enum.PaidStatusPaid},
		},
		{
			name:  "invalid paid status",
			input: GenerateBillInput{Customer: "Ravi", Selections: []SelectionInput{{Label: "Cooker (5L)", Qty: 1}}, Paid: enum.PaidStatus("Pending")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GenerateBill(context.Background(), &tt.input)
			assertValidationError(t, err)
		})
	}
}

func TestGenerateBillNotFound(t *testing.T) {
	repos := newTestRepos(t)
	seedBillFixtures(t, repos)
	svc := NewBillService(repos.bills, repos.items, repos.customers)

	_, err := svc.GenerateBill(context.Background(), &GenerateBillInput{
		Customer:   "Nobody",
		Selections: []SelectionInput{{Label: "Cooker (5L)", Qty: 1}},
		Paid:       enum.PaidStatusPaid,
	})
	assertNotFoundError(t, err)

	_, err = svc.GenerateBill(context.Background(), &GenerateBillInput{
		Customer:   "Ravi",
		Selections: []SelectionInput{{Label: "Kadhai (3L)", Qty: 1}},
		Paid:       enum.PaidStatusPaid,
	})
	assertNotFoundError(t, err)

	// No partial bill may survive a failed generation.
	bills, err := svc.ListBills(context.Background())
	if err != nil {
		t.Fatalf("ListBills: %v", err)
	}
	if len(bills) != 0 {
		t.Errorf("bill count = %d, want 0", len(bills))
	}
}

func TestRenderBill(t *testing.T) {
	svc := NewBillService(nil, nil, nil)
	bill := &entity.Bill{
		Customer: "Ravi",
		Date:     "2025-03-01 10:30",
		Items: []entity.BillLine{
			{Name: "Cooker", Type: "5L", Price: 120000, Qty: 2, Subtotal: 240000},
		},
		Total: 240000,
		Paid:  enum.PaidStatusUnpaid,
	}

	got := svc.Render(bill, i18n.English)
	want := "Customer: Ravi\nDate: 2025-03-01 10:30\nItems:\n- Cooker (5L) x 2 = ₹2400\nTotal: ₹2400\nStatus: Unpaid\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}

	hindi := svc.Render(bill, i18n.Hindi)
	wantHindi := "ग्राहक: Ravi\nतारीख: 2025-03-01 10:30\nसामान:\n- Cooker (5L) x 2 = ₹2400\nकुल: ₹2400\nस्थिति: Unpaid\n"
	if hindi != wantHindi {
		t.Errorf("Render(hi) = %q, want %q", hindi, wantHindi)
	}
}

func TestExportFilename(t *testing.T) {
	svc := NewBillService(nil, nil, nil)
	bill := &entity.Bill{Customer: "Ravi", Date: "2025-03-01 10:30"}
	got := svc.ExportFilename(bill)
	if got != "Ravi_2025-03-01_10-30_bill.txt" {
		t.Errorf("filename = %q, want Ravi_2025-03-01_10-30_bill.txt", got)
	}
}
