package entity

import (
	"encoding/json"

	"github.com/shreya-jain12/JainTriad/internal/domain/enum"
	"github.com/shreya-jain12/JainTriad/pkg/money"
)

// DateLayout is the wall-clock format bills are stamped with (minute
// precision, local time).
const DateLayout = "2006-01-02 15:04"

// Bill is an immutable invoice snapshot. Customer is a denormalized copy
// of the customer name, not a foreign key; the lines carry their own
// price snapshots, so later catalog edits never change a generated bill.
type Bill struct {
	Customer string
	Date     string
	Items    []BillLine
	Total    int64 // Stored in cents
	Paid     enum.PaidStatus
}

// BillLine is one priced line of a bill, snapshotted at generation time.
type BillLine struct {
	Name     string
	Type     string
	Price    int64 // Stored in cents
	Qty      int
	Subtotal int64 // Stored in cents
}

type billLineJSON struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Price    float64  `json:"price"`
	Qty      *int     `json:"qty,omitempty"`
	Subtotal *float64 `json:"subtotal,omitempty"`
}

// MarshalJSON converts BillLine to JSON with decimal amounts
func (l BillLine) MarshalJSON() ([]byte, error) {
	qty := l.Qty
	subtotal := money.FromCents(l.Subtotal)
	return json.Marshal(billLineJSON{
		Name:     l.Name,
		Type:     l.Type,
		Price:    money.FromCents(l.Price),
		Qty:      &qty,
		Subtotal: &subtotal,
	})
}

// UnmarshalJSON parses a stored line. Older documents may lack qty and
// subtotal; those default to 1 and price*qty respectively.
func (l *BillLine) UnmarshalJSON(data []byte) error {
	var raw billLineJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.Name = raw.Name
	l.Type = raw.Type
	l.Price = money.ToCents(raw.Price)
	l.Qty = 1
	if raw.Qty != nil {
		l.Qty = *raw.Qty
	}
	if raw.Subtotal != nil {
		l.Subtotal = money.ToCents(*raw.Subtotal)
	} else {
		l.Subtotal = l.Price * int64(l.Qty)
	}
	return nil
}

type billJSON struct {
	Customer string          `json:"customer"`
	Date     string          `json:"date"`
	Items    []BillLine      `json:"items"`
	Total    float64         `json:"total"`
	Paid     enum.PaidStatus `json:"paid"`
}

// MarshalJSON converts Bill to JSON with a decimal total
func (b Bill) MarshalJSON() ([]byte, error) {
	items := b.Items
	if items == nil {
		items = []BillLine{}
	}
	return json.Marshal(billJSON{
		Customer: b.Customer,
		Date:     b.Date,
		Items:    items,
		Total:    money.FromCents(b.Total),
		Paid:     b.Paid,
	})
}

// UnmarshalJSON parses a stored bill back into cents
func (b *Bill) UnmarshalJSON(data []byte) error {
	var raw billJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Customer = raw.Customer
	b.Date = raw.Date
	b.Items = raw.Items
	b.Total = money.ToCents(raw.Total)
	b.Paid = raw.Paid
	return nil
}
