package dto

// AddItemRequest adds a line to the cart. The rate is the one the line
// keeps for the whole transaction; negative and zero rates are accepted
// for manual adjustments.
type AddItemRequest struct {
	ItemCode string  `json:"item_code" binding:"required"`
	ItemName string  `json:"item_name"`
	UnitRate float64 `json:"unit_rate"`
}

// UpdateQuantityRequest adjusts a line's quantity by a signed delta
type UpdateQuantityRequest struct {
	ItemCode string `json:"item_code" binding:"required"`
	Delta    int64  `json:"delta" binding:"required"`
}

// SetCustomerRequest selects the customer for the current transaction
type SetCustomerRequest struct {
	Customer     string `json:"customer"`
	CustomerType string `json:"customer_type" binding:"omitempty,customertype"`
	ReferralCode string `json:"referral_code"`
}

// SetPaymentModeRequest selects how the sale will be settled
type SetPaymentModeRequest struct {
	Mode string `json:"mode" binding:"required,paymode"`
}

// StartSessionRequest opens a cash session with an opening float.
// Profile and warehouse are optional; resolution falls back to the
// terminal's configured preference, then the first profile.
type StartSessionRequest struct {
	OpeningCash float64 `json:"opening_cash" binding:"gte=0"`
	POSProfile  string  `json:"pos_profile"`
	Warehouse   string  `json:"warehouse"`
}

// CloseSessionRequest reconciles and closes the session with the counted
// drawer amount.
type CloseSessionRequest struct {
	ActualCash float64 `json:"actual_cash" binding:"gte=0"`
}

// ItemSearchRequest looks up sellable items by code or name fragment
type ItemSearchRequest struct {
	Query string `form:"q" binding:"required"`
}
