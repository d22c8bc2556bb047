package pos

import "context"

// SessionStore is the durable local storage for the register's cash session.
// One record per register: written on start, deleted on end, read once at
// startup. Single writer, single reader within one terminal process;
// concurrent writers from multiple processes are undefined.
type SessionStore interface {
	// Load returns the persisted session, or nil when none exists
	Load(ctx context.Context) (*Session, error)
	// Save persists the session, replacing any existing record
	Save(ctx context.Context, session *Session) error
	// Delete removes the persisted session; deleting an absent record is not an error
	Delete(ctx context.Context) error
}
