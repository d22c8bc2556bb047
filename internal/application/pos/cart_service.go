package pos

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rangipos/terminal/internal/domain/pos"
	"github.com/rangipos/terminal/internal/domain/shared"
)

// CartService owns the register's single transaction context. All access
// goes through its mutex; the domain cart itself is not safe for
// concurrent use.
type CartService struct {
	mu   sync.Mutex
	cart *pos.Cart
}

// NewCartService creates a cart service with an empty transaction context
func NewCartService() *CartService {
	return &CartService{
		cart: pos.NewCart(),
	}
}

// AddItem adds an item to the cart or increments its quantity. The rate
// passed on the first add is the one the line keeps. Negative and zero
// rates pass through unchecked; manual price adjustments use them.
func (s *CartService) AddItem(itemCode, itemName string, unitRate float64) (CartView, error) {
	if itemCode == "" {
		return CartView{}, shared.NewDomainError("VALIDATION", "item code is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.AddItem(itemCode, itemName, decimal.NewFromFloat(unitRate))
	return toCartView(s.cart), nil
}

// UpdateQuantity adjusts a line's quantity by delta. Reaching zero or
// below removes the line.
func (s *CartService) UpdateQuantity(itemCode string, delta int64) (CartView, error) {
	if itemCode == "" {
		return CartView{}, shared.NewDomainError("VALIDATION", "item code is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.UpdateQuantity(itemCode, delta)
	return toCartView(s.cart), nil
}

// RemoveItem removes a line entirely regardless of quantity
func (s *CartService) RemoveItem(itemCode string) (CartView, error) {
	if itemCode == "" {
		return CartView{}, shared.NewDomainError("VALIDATION", "item code is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.RemoveItem(itemCode)
	return toCartView(s.cart), nil
}

// SetCustomer records the customer selection for the current transaction.
// The referral code is optional even for commission-earning customer types;
// the backend decides what a missing code means for the commission.
func (s *CartService) SetCustomer(name string, customerType string, referralCode string) (CartView, error) {
	ct := pos.CustomerType(customerType)
	if customerType != "" && !ct.IsValid() {
		return CartView{}, shared.NewDomainError("VALIDATION", "unknown customer type")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.SetCustomer(name, ct, referralCode)
	return toCartView(s.cart), nil
}

// SetPaymentMode records the payment mode for the current transaction
func (s *CartService) SetPaymentMode(mode string) (CartView, error) {
	pm := pos.PaymentMode(mode)
	if !pm.IsValid() {
		return CartView{}, shared.NewDomainError("VALIDATION", "unknown payment mode")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.SetPaymentMode(pm)
	return toCartView(s.cart), nil
}

// ResetTransaction clears the lines and the customer, referral and
// payment selections in a single step
func (s *CartService) ResetTransaction() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	return toCartView(s.cart)
}

// View returns a snapshot of the current transaction context
func (s *CartService) View() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return toCartView(s.cart)
}

// BuildSaleRequest snapshots the cart into an immutable sale request
// bound to the given session. The cart itself is left untouched.
func (s *CartService) BuildSaleRequest(session *pos.Session) (*pos.SaleRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return pos.NewSaleRequest(s.cart, session)
}

// withCart runs fn while holding the cart lock. Used by the checkout
// orchestrator to clear the cart atomically after a confirmed sale.
func (s *CartService) withCart(fn func(cart *pos.Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.cart)
}
