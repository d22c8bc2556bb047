package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rangipos/terminal/internal/domain/pos"
	"github.com/rangipos/terminal/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRecord is the persisted shape of a cash session. One row per
// register; starting a session upserts it, ending the session deletes it.
type sessionRecord struct {
	RegisterID   string    `gorm:"primaryKey;size:64"`
	SessionID    string    `gorm:"size:36;not null"`
	CalendarDate string    `gorm:"size:10;not null"`
	StartTime    time.Time `gorm:"not null"`
	OpeningCash  string    `gorm:"not null"`
	POSProfileID string    `gorm:"size:140;not null"`
	Warehouse    string    `gorm:"size:140"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name
func (sessionRecord) TableName() string {
	return "cash_sessions"
}

// GormSessionStore implements pos.SessionStore on the local SQLite database
type GormSessionStore struct {
	db         *gorm.DB
	registerID string
}

// NewGormSessionStore creates a session store scoped to one register
func NewGormSessionStore(db *gorm.DB, registerID string) *GormSessionStore {
	return &GormSessionStore{db: db, registerID: registerID}
}

// Load returns the persisted session for this register, or nil when absent
func (s *GormSessionStore) Load(ctx context.Context) (*pos.Session, error) {
	var record sessionRecord
	err := s.db.WithContext(ctx).First(&record, "register_id = ?", s.registerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return record.toDomain()
}

// Save persists the session, replacing any existing record for the register
func (s *GormSessionStore) Save(ctx context.Context, session *pos.Session) error {
	record := sessionRecord{
		RegisterID:   s.registerID,
		SessionID:    session.ID.String(),
		CalendarDate: session.CalendarDate,
		StartTime:    session.StartTime,
		OpeningCash:  session.OpeningCash.Amount().String(),
		POSProfileID: session.POSProfileID,
		Warehouse:    session.Warehouse,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "register_id"}},
		UpdateAll: true,
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes the persisted session; absent records are not an error
func (s *GormSessionStore) Delete(ctx context.Context) error {
	err := s.db.WithContext(ctx).Delete(&sessionRecord{}, "register_id = ?", s.registerID).Error
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// toDomain rehydrates the persisted record into a domain session
func (r *sessionRecord) toDomain() (*pos.Session, error) {
	id, err := uuid.Parse(r.SessionID)
	if err != nil {
		return nil, fmt.Errorf("corrupt session record: %w", err)
	}
	amount, err := decimal.NewFromString(r.OpeningCash)
	if err != nil {
		return nil, fmt.Errorf("corrupt opening cash: %w", err)
	}
	return &pos.Session{
		ID:           id,
		CalendarDate: r.CalendarDate,
		StartTime:    r.StartTime,
		OpeningCash:  valueobject.NewMoneyKES(amount),
		POSProfileID: r.POSProfileID,
		Warehouse:    r.Warehouse,
	}, nil
}
