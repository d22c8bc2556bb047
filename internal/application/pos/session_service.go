package pos

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rangipos/terminal/internal/domain/pos"
	"github.com/rangipos/terminal/internal/domain/shared"
	"github.com/rangipos/terminal/internal/domain/shared/valueobject"
	"github.com/rangipos/terminal/internal/infrastructure/cache"
	"github.com/rangipos/terminal/internal/infrastructure/erpclient"
)

// SessionService manages the register's cash session lifecycle: restore at
// startup, start with profile resolution, and close with reconciliation.
type SessionService struct {
	mu               sync.Mutex
	session          *pos.Session
	store            pos.SessionStore
	gateway          ERPGateway
	cache            cache.SummaryCache
	preferredProfile string
	logger           *zap.Logger
}

// NewSessionService creates a session service. preferredProfile is the
// terminal's configured default POS profile, if any.
func NewSessionService(store pos.SessionStore, gateway ERPGateway, summaryCache cache.SummaryCache, preferredProfile string, logger *zap.Logger) *SessionService {
	return &SessionService{
		store:            store,
		gateway:          gateway,
		cache:            summaryCache,
		preferredProfile: preferredProfile,
		logger:           logger,
	}
}

// Restore loads the persisted session at startup. A session from a previous
// calendar day is discarded and its record deleted; the cashier starts the
// new day with a fresh float. Returns the restored session, or nil when the
// register has no session for today.
func (s *SessionService) Restore(ctx context.Context) (*pos.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	if session.IsStale(time.Now()) {
		s.logger.Info("discarding stale session",
			zap.String("session_id", session.ID.String()),
			zap.String("calendar_date", session.CalendarDate))
		if err := s.store.Delete(ctx); err != nil {
			s.logger.Warn("failed to delete stale session", zap.Error(err))
		}
		return nil, nil
	}

	s.session = session
	s.logger.Info("session restored",
		zap.String("session_id", session.ID.String()),
		zap.String("pos_profile", session.POSProfileID))
	return session, nil
}

// Active returns the current session, or ErrNoActiveSession
func (s *SessionService) Active() (*pos.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, shared.ErrNoActiveSession
	}
	return s.session, nil
}

// Start opens a new session with the given opening cash float. The POS
// profile is resolved in order of precedence: the explicit profileID, the
// terminal's configured preference, the profile bound to the given
// warehouse, then the tenant's first profile. Starting while a session is
// already active is rejected.
func (s *SessionService) Start(ctx context.Context, openingCash float64, profileID, warehouse string) (*pos.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		return nil, shared.ErrSessionActive
	}

	profiles, err := s.profiles(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := resolveProfile(profiles, profileID, s.preferredProfile, warehouse)
	if err != nil {
		return nil, err
	}

	opening := valueobject.NewMoneyKESFromFloat(openingCash)
	session, err := pos.NewSession(opening, profile.Name, profile.Warehouse)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	s.session = session
	s.logger.Info("session started",
		zap.String("session_id", session.ID.String()),
		zap.String("pos_profile", session.POSProfileID),
		zap.String("warehouse", session.Warehouse),
		zap.String("opening_cash", session.OpeningCash.StringFixed(2)))
	return session, nil
}

// End closes the session without reconciliation, removing the persisted
// record. Ending with no active session is rejected.
func (s *SessionService) End(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.endLocked(ctx)
}

// Close reconciles the counted drawer against the expected amount and then
// ends the session. The cash-sales figure comes from the backend's daily
// summary for the session's calendar day.
func (s *SessionService) Close(ctx context.Context, actualCount float64) (*pos.ReconciliationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, shared.ErrNoActiveSession
	}

	summary, err := s.gateway.GetDailySummary(ctx, s.session.CalendarDate)
	if err != nil {
		return nil, err
	}
	cashSales := valueobject.NewMoneyKES(summary.ByPaymentMode.Cash)
	actual := valueobject.NewMoneyKESFromFloat(actualCount)

	result, err := pos.Reconcile(s.session.OpeningCash, cashSales, actual)
	if err != nil {
		return nil, err
	}
	if err := s.endLocked(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("session closed",
		zap.String("status", result.Status.String()),
		zap.String("variance", result.Variance.StringFixed(2)))
	return &result, nil
}

func (s *SessionService) endLocked(ctx context.Context) error {
	if s.session == nil {
		return shared.ErrNoActiveSession
	}
	if err := s.store.Delete(ctx); err != nil {
		return err
	}
	s.session = nil
	return nil
}

// profiles returns the tenant's POS profiles, cache-through
func (s *SessionService) profiles(ctx context.Context) ([]erpclient.POSProfile, error) {
	if cached, ok := s.cache.GetProfiles(ctx); ok {
		return cached, nil
	}
	profiles, err := s.gateway.ListPOSProfiles(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetProfiles(ctx, profiles)
	return profiles, nil
}

// resolveProfile picks the session's POS profile from the tenant's list
func resolveProfile(profiles []erpclient.POSProfile, explicit, preferred, warehouse string) (erpclient.POSProfile, error) {
	if len(profiles) == 0 {
		return erpclient.POSProfile{}, shared.ErrNoProfile
	}

	find := func(match func(p erpclient.POSProfile) bool) *erpclient.POSProfile {
		for i := range profiles {
			if match(profiles[i]) {
				return &profiles[i]
			}
		}
		return nil
	}

	if explicit != "" {
		if p := find(func(p erpclient.POSProfile) bool { return p.Name == explicit }); p != nil {
			return *p, nil
		}
		return erpclient.POSProfile{}, shared.NewDomainError("VALIDATION", "unknown POS profile: "+explicit)
	}
	if preferred != "" {
		if p := find(func(p erpclient.POSProfile) bool { return p.Name == preferred }); p != nil {
			return *p, nil
		}
	}
	if warehouse != "" {
		if p := find(func(p erpclient.POSProfile) bool { return p.Warehouse == warehouse }); p != nil {
			return *p, nil
		}
	}
	return profiles[0], nil
}
