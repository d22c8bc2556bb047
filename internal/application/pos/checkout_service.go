package pos

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/rangipos/terminal/internal/domain/pos"
	"github.com/rangipos/terminal/internal/domain/shared"
	"github.com/rangipos/terminal/internal/infrastructure/erpclient"
)

// CheckoutState is the phase of the checkout flow
type CheckoutState string

// recentInvoiceLimit is how many invoices the post-sale refresh pulls
const recentInvoiceLimit = 10

const (
	CheckoutIdle       CheckoutState = "idle"
	CheckoutValidating CheckoutState = "validating"
	CheckoutSubmitting CheckoutState = "submitting"
	CheckoutSucceeded  CheckoutState = "succeeded"
	CheckoutFailed     CheckoutState = "failed"
)

// CheckoutService drives the sale submission flow. Each Submit makes at most
// one invoice call: preconditions that fail stop the flow before any network
// traffic, a rejected or timed-out call leaves the cart intact for a
// user-driven retry, and a second Submit while one is in flight is refused.
type CheckoutService struct {
	cart       *CartService
	sessions   *SessionService
	summaries  *SummaryService
	gateway    ERPGateway
	logger     *zap.Logger
	processing atomic.Bool
	state      atomic.Value // CheckoutState
}

// NewCheckoutService creates a checkout service
func NewCheckoutService(cart *CartService, sessions *SessionService, summaries *SummaryService, gateway ERPGateway, logger *zap.Logger) *CheckoutService {
	s := &CheckoutService{
		cart:      cart,
		sessions:  sessions,
		summaries: summaries,
		gateway:   gateway,
		logger:    logger,
	}
	s.state.Store(CheckoutIdle)
	return s
}

// State returns the current checkout phase
func (s *CheckoutService) State() CheckoutState {
	return s.state.Load().(CheckoutState)
}

// Submit runs one checkout attempt. On success the transaction context is
// reset, a receipt print is queued, and the dashboard aggregates are
// refreshed in the background; on failure the cart is preserved untouched.
func (s *CheckoutService) Submit(ctx context.Context) (*CheckoutResult, error) {
	if !s.processing.CompareAndSwap(false, true) {
		return nil, shared.ErrSaleInFlight
	}
	defer s.processing.Store(false)

	s.state.Store(CheckoutValidating)

	session, err := s.sessions.Active()
	if err != nil {
		s.state.Store(CheckoutFailed)
		return nil, err
	}
	req, err := s.cart.BuildSaleRequest(session)
	if err != nil {
		s.state.Store(CheckoutFailed)
		return nil, err
	}

	s.state.Store(CheckoutSubmitting)
	s.logger.Info("submitting sale",
		zap.String("idempotency_token", req.IdempotencyToken.String()),
		zap.String("customer", req.Customer),
		zap.String("grand_total", req.GrandTotal.StringFixed(2)),
		zap.Int("lines", len(req.Lines)))

	invoice, err := s.gateway.CreateInvoice(ctx, req)
	if err != nil {
		s.state.Store(CheckoutFailed)
		s.logger.Error("sale submission failed",
			zap.String("idempotency_token", req.IdempotencyToken.String()),
			zap.Error(err))
		return nil, err
	}

	s.state.Store(CheckoutSucceeded)
	s.cart.withCart(func(cart *pos.Cart) {
		cart.Clear()
	})

	s.afterSale(ctx, invoice, session)

	result := &CheckoutResult{
		InvoiceID:   invoice.Name,
		GrandTotal:  invoice.GrandTotal.StringFixed(2),
		TotalQty:    invoice.TotalQty,
		PaymentMode: req.Payment.Mode.String(),
	}
	if !invoice.CommissionAmount.IsZero() {
		result.CommissionAmount = invoice.CommissionAmount.StringFixed(2)
	}
	return result, nil
}

// afterSale runs the post-sale side effects: queue the receipt and refresh
// the dashboard aggregates. All are best-effort; none can fail the sale,
// which is already committed server-side.
func (s *CheckoutService) afterSale(ctx context.Context, invoice *erpclient.Invoice, session *pos.Session) {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.gateway.QueueReceipt(ctx, invoice.Name); err != nil {
			s.logger.Warn("receipt queue failed", zap.String("invoice", invoice.Name), zap.Error(err))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.summaries.Refresh(ctx, session.CalendarDate)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := s.gateway.RecentInvoices(ctx, recentInvoiceLimit); err != nil {
			s.logger.Warn("recent invoices refresh failed", zap.Error(err))
		}
	}()

	wg.Wait()
}
