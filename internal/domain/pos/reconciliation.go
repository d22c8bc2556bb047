package pos

import (
	"github.com/rangipos/terminal/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ReconciliationTolerance is the fixed band, in currency units, within which
// a drawer counts as balanced at session close.
var ReconciliationTolerance = decimal.NewFromInt(10)

// CashStatus classifies the drawer variance at session close
type CashStatus string

const (
	CashStatusBalanced CashStatus = "balanced"
	CashStatusShortage CashStatus = "shortage"
	CashStatusSurplus  CashStatus = "surplus"
)

// String returns the string representation of CashStatus
func (s CashStatus) String() string {
	return string(s)
}

// ReconciliationResult is the outcome of comparing the counted drawer
// against what the session should hold.
type ReconciliationResult struct {
	OpeningCash  valueobject.Money `json:"opening_cash"`
	CashSales    valueobject.Money `json:"cash_sales"`
	ExpectedCash valueobject.Money `json:"expected_cash"`
	ActualCash   valueobject.Money `json:"actual_cash"`
	Variance     valueobject.Money `json:"variance"`
	Status       CashStatus        `json:"status"`
}

// Reconcile computes the signed variance between the counted closing amount
// and the expected drawer contents (opening float plus the session's
// server-reported cash sales), and classifies it against the tolerance band.
// Pure: the caller supplies cashSalesTotal from the daily-summary
// collaborator.
func Reconcile(openingCash, cashSalesTotal, actualCount valueobject.Money) (ReconciliationResult, error) {
	expected, err := openingCash.Add(cashSalesTotal)
	if err != nil {
		return ReconciliationResult{}, err
	}
	variance, err := actualCount.Subtract(expected)
	if err != nil {
		return ReconciliationResult{}, err
	}

	status := CashStatusBalanced
	switch {
	case variance.Amount().GreaterThan(ReconciliationTolerance):
		status = CashStatusSurplus
	case variance.Amount().LessThan(ReconciliationTolerance.Neg()):
		status = CashStatusShortage
	}

	return ReconciliationResult{
		OpeningCash:  openingCash,
		CashSales:    cashSalesTotal,
		ExpectedCash: expected,
		ActualCash:   actualCount,
		Variance:     variance,
		Status:       status,
	}, nil
}
