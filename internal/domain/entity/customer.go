package entity

// Customer represents a customer in the directory. Name doubles as the
// key bills refer back to; it is not enforced unique, so two customers
// sharing a name are indistinguishable to the ledger.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
