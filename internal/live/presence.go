package live

import (
	"sync"

	"github.com/openlearn/backend/internal/domain"
)

// Identity is what a connection announced about itself when joining.
type Identity struct {
	Username string
	Role     domain.Role
}

// JoinOutcome tells the caller whether a join changed anything.
type JoinOutcome int

const (
	// JoinedNew is the first join on this connection.
	JoinedNew JoinOutcome = iota
	// JoinDuplicate repeats a join with the same name, e.g. a client retry.
	JoinDuplicate
	// JoinRenamed re-joined with a different name; the record is replaced
	// silently, nobody else is told.
	JoinRenamed
)

// Presence maps a connection's session ID to its announced identity.
type Presence struct {
	mu      sync.RWMutex
	records map[string]Identity
}

func NewPresence() *Presence {
	return &Presence{records: make(map[string]Identity)}
}

func (p *Presence) RecordJoin(sessionID, username string, role domain.Role) JoinOutcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	if existing, ok := p.records[sessionID]; ok {
		if existing.Username == username {
			return JoinDuplicate
		}
		p.records[sessionID] = Identity{Username: username, Role: role}
		return JoinRenamed
	}
	p.records[sessionID] = Identity{Username: username, Role: role}
	return JoinedNew
}

func (p *Presence) Get(sessionID string) (Identity, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	id, ok := p.records[sessionID]
	return id, ok
}

func (p *Presence) Remove(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.records, sessionID)
}
