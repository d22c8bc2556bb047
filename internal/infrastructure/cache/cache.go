package cache

import (
	"context"

	"github.com/rangipos/terminal/internal/infrastructure/erpclient"
)

// SummaryCache holds short-lived copies of backend aggregates so the
// dashboard and reconciliation views do not hammer the ERP API between the
// post-sale refreshes. Misses are normal; callers always fall through to the
// client.
type SummaryCache interface {
	// GetSummary returns the cached daily summary for a date, if fresh
	GetSummary(ctx context.Context, date string) (*erpclient.DailySummary, bool)
	// SetSummary stores the daily summary for a date
	SetSummary(ctx context.Context, date string, summary *erpclient.DailySummary)
	// GetProfiles returns the cached POS profile list, if fresh
	GetProfiles(ctx context.Context) ([]erpclient.POSProfile, bool)
	// SetProfiles stores the POS profile list
	SetProfiles(ctx context.Context, profiles []erpclient.POSProfile)
	// InvalidateSummary drops the cached summary for a date
	InvalidateSummary(ctx context.Context, date string)
}
