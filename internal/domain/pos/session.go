package pos

import (
	"time"

	"github.com/google/uuid"
	"github.com/rangipos/terminal/internal/domain/shared"
	"github.com/rangipos/terminal/internal/domain/shared/valueobject"
)

// DateLayout is the calendar-day key format for persisted sessions.
// Same-day checks use the cashier's local date, not UTC.
const DateLayout = "2006-01-02"

// Session is a single cashier working period on one register, bounded by an
// opening cash float and a later close with a counted amount. A session is
// only valid on the calendar day it was opened.
type Session struct {
	ID           uuid.UUID          `json:"id"`
	CalendarDate string             `json:"calendar_date"`
	StartTime    time.Time          `json:"start_time"`
	OpeningCash  valueobject.Money  `json:"opening_cash"`
	POSProfileID string             `json:"pos_profile_id"`
	Warehouse    string             `json:"warehouse"`
}

// NewSession opens a session for today. The POS profile is required; the
// warehouse is the one bound to that profile. Opening cash must not be
// negative.
func NewSession(openingCash valueobject.Money, posProfileID, warehouse string) (*Session, error) {
	if posProfileID == "" {
		return nil, shared.NewDomainError("VALIDATION", "POS profile is required to start a session")
	}
	if openingCash.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION", "Opening cash cannot be negative")
	}

	now := time.Now()
	return &Session{
		ID:           uuid.New(),
		CalendarDate: now.Format(DateLayout),
		StartTime:    now,
		OpeningCash:  openingCash,
		POSProfileID: posProfileID,
		Warehouse:    warehouse,
	}, nil
}

// IsForDate reports whether the session was opened on the local calendar day
// of the given instant.
func (s *Session) IsForDate(t time.Time) bool {
	return s.CalendarDate == t.Format(DateLayout)
}

// IsStale reports whether the session belongs to a previous calendar day and
// must be discarded rather than carried over.
func (s *Session) IsStale(now time.Time) bool {
	return !s.IsForDate(now)
}
