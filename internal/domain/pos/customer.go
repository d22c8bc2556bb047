package pos

import "github.com/shopspring/decimal"

// WalkInCustomer is the sentinel customer identity used when no specific
// customer is selected at checkout.
const WalkInCustomer = "Walk-in Customer"

// CustomerType classifies the buyer for commission purposes.
// The associated commission rates are informational to the terminal;
// the backend computes the actual commission on invoice creation.
type CustomerType string

const (
	CustomerTypeDirect     CustomerType = "Direct"
	CustomerTypeFundi      CustomerType = "Fundi"
	CustomerTypeSalesTeam  CustomerType = "SalesTeam"
	CustomerTypeWholesaler CustomerType = "Wholesaler"
)

// IsValid checks if the value is a known CustomerType
func (t CustomerType) IsValid() bool {
	switch t {
	case CustomerTypeDirect, CustomerTypeFundi, CustomerTypeSalesTeam, CustomerTypeWholesaler:
		return true
	}
	return false
}

// String returns the string representation of CustomerType
func (t CustomerType) String() string {
	return string(t)
}

// CommissionRate returns the indicative commission percentage for the type.
// Direct sales carry no commission.
func (t CustomerType) CommissionRate() decimal.Decimal {
	switch t {
	case CustomerTypeFundi:
		return decimal.RequireFromString("5")
	case CustomerTypeSalesTeam:
		return decimal.RequireFromString("3")
	case CustomerTypeWholesaler:
		return decimal.RequireFromString("2")
	default:
		return decimal.Zero
	}
}

// RequiresReferral reports whether a referral code is economically meaningful
// for the type. It is not enforced as a checkout precondition.
func (t CustomerType) RequiresReferral() bool {
	return t.IsValid() && t != CustomerTypeDirect
}
