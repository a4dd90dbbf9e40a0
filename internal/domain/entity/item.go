package entity

import (
	"encoding/json"

	"github.com/shreya-jain12/JainTriad/pkg/money"
)

// Item represents a sellable catalog entry. Identity is the (Name, Type)
// pair, not enforced unique. Price is held in cents internally.
type Item struct {
	Name  string
	Type  string
	Price int64 // Stored in cents
}

// Label returns the "name (type)" form used to reference catalog items
// from bill selections.
func (i *Item) Label() string {
	return i.Name + " (" + i.Type + ")"
}

// itemJSON mirrors the on-disk shape, with the price as a decimal.
type itemJSON struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

// MarshalJSON converts Item to JSON with a decimal price
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{
		Name:  i.Name,
		Type:  i.Type,
		Price: money.FromCents(i.Price),
	})
}

// UnmarshalJSON parses the on-disk shape back into cents
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.Name = raw.Name
	i.Type = raw.Type
	i.Price = money.ToCents(raw.Price)
	return nil
}
