package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	appos "github.com/rangipos/terminal/internal/application/pos"
	"github.com/rangipos/terminal/internal/domain/pos"
	"github.com/rangipos/terminal/internal/interfaces/http/dto"
)

// SummaryHandler serves the dashboard's backend aggregates and item lookup
type SummaryHandler struct {
	BaseHandler
	summaries *appos.SummaryService
	sessions  *appos.SessionService
}

// NewSummaryHandler creates a summary handler
func NewSummaryHandler(summaries *appos.SummaryService, sessions *appos.SessionService) *SummaryHandler {
	return &SummaryHandler{summaries: summaries, sessions: sessions}
}

// RegisterRoutes registers summary and item-lookup routes
func (h *SummaryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/summary/daily", h.Daily)
	rg.GET("/invoices/recent", h.RecentInvoices)
	rg.GET("/items", h.SearchItems)
}

// Daily returns the day's sales aggregate
// GET /api/v1/summary/daily?date=2006-01-02
func (h *SummaryHandler) Daily(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(pos.DateLayout)
	} else if _, err := time.Parse(pos.DateLayout, date); err != nil {
		h.BadRequest(c, "date must be formatted as 2006-01-02")
		return
	}

	summary, err := h.summaries.DailySummary(c.Request.Context(), date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// RecentInvoices returns the latest sales
// GET /api/v1/invoices/recent?limit=10
func (h *SummaryHandler) RecentInvoices(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			h.BadRequest(c, "limit must be an integer between 1 and 100")
			return
		}
		limit = parsed
	}

	invoices, err := h.summaries.RecentInvoices(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoices)
}

// SearchItems looks up sellable items in the session's warehouse
// GET /api/v1/items?q=crown
func (h *SummaryHandler) SearchItems(c *gin.Context) {
	var req dto.ItemSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	session, err := h.sessions.Active()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items, err := h.summaries.SearchItems(c.Request.Context(), session.Warehouse, req.Query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}
