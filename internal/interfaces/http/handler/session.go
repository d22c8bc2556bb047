package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appos "github.com/rangipos/terminal/internal/application/pos"
	"github.com/rangipos/terminal/internal/domain/shared"
	"github.com/rangipos/terminal/internal/interfaces/http/dto"
)

// SessionHandler manages the register's cash session
type SessionHandler struct {
	BaseHandler
	sessions *appos.SessionService
}

// NewSessionHandler creates a session handler
func NewSessionHandler(sessions *appos.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// RegisterRoutes registers session routes
func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	session := rg.Group("/session")
	{
		session.GET("", h.Get)
		session.POST("", h.Start)
		session.POST("/close", h.Close)
		session.DELETE("", h.End)
	}
}

// Get returns the active session, or 404 when none is open
// GET /api/v1/session
func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.sessions.Active()
	if err != nil {
		if errors.Is(err, shared.ErrNoActiveSession) {
			h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, "No cash session is open")
			return
		}
		h.HandleError(c, err)
		return
	}
	h.Success(c, appos.ToSessionView(session))
}

// Start opens a session with an opening cash float
// POST /api/v1/session
func (h *SessionHandler) Start(c *gin.Context) {
	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	session, err := h.sessions.Start(c.Request.Context(), req.OpeningCash, req.POSProfile, req.Warehouse)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, appos.ToSessionView(session))
}

// Close reconciles the counted drawer and ends the session
// POST /api/v1/session/close
func (h *SessionHandler) Close(c *gin.Context) {
	var req dto.CloseSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.sessions.Close(c.Request.Context(), req.ActualCash)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// End discards the session without reconciliation
// DELETE /api/v1/session
func (h *SessionHandler) End(c *gin.Context) {
	if err := h.sessions.End(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
