package pos

import (
	"context"

	"go.uber.org/zap"

	"github.com/rangipos/terminal/internal/infrastructure/cache"
	"github.com/rangipos/terminal/internal/infrastructure/erpclient"
)

// SummaryService serves the dashboard's backend aggregates through the
// local cache. Every read falls through to the ERP on a miss.
type SummaryService struct {
	gateway ERPGateway
	cache   cache.SummaryCache
	logger  *zap.Logger
}

// NewSummaryService creates a summary service
func NewSummaryService(gateway ERPGateway, summaryCache cache.SummaryCache, logger *zap.Logger) *SummaryService {
	return &SummaryService{
		gateway: gateway,
		cache:   summaryCache,
		logger:  logger,
	}
}

// DailySummary returns the day's sales aggregate, cache-through
func (s *SummaryService) DailySummary(ctx context.Context, date string) (*erpclient.DailySummary, error) {
	if cached, ok := s.cache.GetSummary(ctx, date); ok {
		return cached, nil
	}
	summary, err := s.gateway.GetDailySummary(ctx, date)
	if err != nil {
		return nil, err
	}
	s.cache.SetSummary(ctx, date, summary)
	return summary, nil
}

// RecentInvoices returns the latest sales for the dashboard's recent list
func (s *SummaryService) RecentInvoices(ctx context.Context, limit int) ([]erpclient.Invoice, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.gateway.RecentInvoices(ctx, limit)
}

// SearchItems looks up sellable items in the given warehouse
func (s *SummaryService) SearchItems(ctx context.Context, warehouse, query string) ([]erpclient.Item, error) {
	return s.gateway.SearchItems(ctx, warehouse, query)
}

// Refresh re-fetches the day's summary, replacing the cached copy. Called
// after each confirmed sale so the dashboard reflects the new totals.
func (s *SummaryService) Refresh(ctx context.Context, date string) {
	s.cache.InvalidateSummary(ctx, date)
	summary, err := s.gateway.GetDailySummary(ctx, date)
	if err != nil {
		s.logger.Warn("summary refresh failed", zap.String("date", date), zap.Error(err))
		return
	}
	s.cache.SetSummary(ctx, date, summary)
}
