package enum

// PaidStatus marks whether a bill has been settled. The string values are
// stored verbatim in the khaata document and shown in exports.
type PaidStatus string

const (
	PaidStatusPaid   PaidStatus = "Paid"
	PaidStatusUnpaid PaidStatus = "Unpaid"
)

// IsValid checks if the paid status is one of the known values
func (s PaidStatus) IsValid() bool {
	return s == PaidStatusPaid || s == PaidStatusUnpaid
}

func (s PaidStatus) String() string {
	return string(s)
}
