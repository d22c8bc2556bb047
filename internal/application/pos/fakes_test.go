package pos

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rangipos/terminal/internal/domain/pos"
	"github.com/rangipos/terminal/internal/infrastructure/erpclient"
)

// fakeGateway counts every backend call and lets tests script outcomes
type fakeGateway struct {
	mu sync.Mutex

	createInvoiceCalls int
	summaryCalls       int
	profileCalls       int
	receiptCalls       int
	recentCalls        int
	searchCalls        int

	createInvoiceErr error
	invoice          *erpclient.Invoice
	summary          *erpclient.DailySummary
	summaryErr       error
	profiles         []erpclient.POSProfile
	profilesErr      error
	lastRequest      *pos.SaleRequest
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		invoice: &erpclient.Invoice{
			Name:       "ACC-PSINV-2026-00042",
			GrandTotal: decimal.RequireFromString("1450.00"),
			TotalQty:   3,
		},
		summary: &erpclient.DailySummary{
			TotalSales:        decimal.RequireFromString("45000.00"),
			TotalTransactions: 12,
			ByPaymentMode: erpclient.PaymentModeTotals{
				Cash:  decimal.RequireFromString("20000.00"),
				Mpesa: decimal.RequireFromString("22000.00"),
				Bank:  decimal.RequireFromString("3000.00"),
				Total: decimal.RequireFromString("45000.00"),
			},
		},
		profiles: []erpclient.POSProfile{
			{Name: "Nairobi Shop", Warehouse: "Nairobi Store"},
			{Name: "Mombasa Shop", Warehouse: "Mombasa Store"},
		},
	}
}

func (f *fakeGateway) CreateInvoice(_ context.Context, req *pos.SaleRequest) (*erpclient.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createInvoiceCalls++
	f.lastRequest = req
	if f.createInvoiceErr != nil {
		return nil, f.createInvoiceErr
	}
	return f.invoice, nil
}

func (f *fakeGateway) GetDailySummary(_ context.Context, _ string) (*erpclient.DailySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaryCalls++
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	return f.summary, nil
}

func (f *fakeGateway) ListPOSProfiles(_ context.Context) ([]erpclient.POSProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profileCalls++
	if f.profilesErr != nil {
		return nil, f.profilesErr
	}
	return f.profiles, nil
}

func (f *fakeGateway) RecentInvoices(_ context.Context, _ int) ([]erpclient.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recentCalls++
	return []erpclient.Invoice{*f.invoice}, nil
}

func (f *fakeGateway) SearchItems(_ context.Context, _, _ string) ([]erpclient.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	return nil, nil
}

func (f *fakeGateway) QueueReceipt(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receiptCalls++
	return nil
}

func (f *fakeGateway) invoiceCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createInvoiceCalls
}

// memorySessionStore is an in-memory SessionStore for service tests
type memorySessionStore struct {
	mu      sync.Mutex
	session *pos.Session
	saves   int
	deletes int
}

func (s *memorySessionStore) Load(_ context.Context) (*pos.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, nil
}

func (s *memorySessionStore) Save(_ context.Context, session *pos.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.saves++
	return nil
}

func (s *memorySessionStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.deletes++
	return nil
}

const testTTL = 30 * time.Second
