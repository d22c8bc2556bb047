package pos

import (
	"context"

	"github.com/rangipos/terminal/internal/domain/pos"
	"github.com/rangipos/terminal/internal/infrastructure/erpclient"
)

// ERPGateway is the slice of the remote backend the terminal consumes.
// *erpclient.Client satisfies it; tests substitute a counting fake.
type ERPGateway interface {
	CreateInvoice(ctx context.Context, req *pos.SaleRequest) (*erpclient.Invoice, error)
	GetDailySummary(ctx context.Context, date string) (*erpclient.DailySummary, error)
	ListPOSProfiles(ctx context.Context) ([]erpclient.POSProfile, error)
	RecentInvoices(ctx context.Context, limit int) ([]erpclient.Invoice, error)
	SearchItems(ctx context.Context, warehouse, query string) ([]erpclient.Item, error)
	QueueReceipt(ctx context.Context, invoiceID string) error
}
