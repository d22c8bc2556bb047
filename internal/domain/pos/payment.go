package pos

// PaymentMode identifies how the customer settles the sale
type PaymentMode string

const (
	PaymentModeCash  PaymentMode = "Cash"
	PaymentModeMpesa PaymentMode = "M-Pesa"
	PaymentModeBank  PaymentMode = "Bank"
)

// DefaultPaymentMode applies when the cashier makes no explicit selection
const DefaultPaymentMode = PaymentModeCash

// IsValid checks if the value is a known PaymentMode
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeMpesa, PaymentModeBank:
		return true
	}
	return false
}

// String returns the string representation of PaymentMode
func (m PaymentMode) String() string {
	return string(m)
}
