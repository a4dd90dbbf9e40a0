package request

// BillItemRequest is one selected catalog item, referenced by its
// "name (type)" label. Request order is the order lines appear on the
// bill.
type BillItemRequest struct {
	Label string `json:"label" binding:"required"`
	Qty   int    `json:"qty" binding:"required"`
}

// GenerateBillRequest represents a bill generation request
type GenerateBillRequest struct {
	Customer string            `json:"customer" binding:"required"`
	Items    []BillItemRequest `json:"items" binding:"required"`
	Paid     string            `json:"paid" binding:"required"`
}
