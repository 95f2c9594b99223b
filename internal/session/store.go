package session

import (
	"regexp"
	"sync"
	"time"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// Turn is one message of a conversation, either side.
type Turn struct {
	Role      Role
	Text      string
	Timestamp time.Time
}

// MaxTurns bounds the history kept per session; both roles share the ring.
const MaxTurns = 6

// maxIDLen caps normalized session identifiers.
const maxIDLen = 64

var idCleaner = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// NormalizeID strips a client-supplied session token down to a safe
// identifier. Returns "" when nothing usable remains, meaning "no session".
func NormalizeID(raw string) string {
	cleaned := idCleaner.ReplaceAllString(raw, "")
	if len(cleaned) > maxIDLen {
		cleaned = cleaned[:maxIDLen]
	}
	return cleaned
}

type sessionData struct {
	turns       []Turn
	lastTouched time.Time
}

// Store is a process-wide, thread-safe session history keyed by session id.
// Each session keeps at most MaxTurns turns; the oldest is evicted first.
// A ttl of 0 means sessions never expire.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*sessionData
	ttl      time.Duration
}

// NewStore creates an empty session store.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*sessionData),
		ttl:      ttl,
	}
}

// Remember appends a turn to the session, creating it lazily.
// A no-op when sessionID is empty.
func (s *Store) Remember(sessionID string, role Role, text string) {
	if sessionID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	data := s.sessions[sessionID]
	if data == nil || s.expired(data, now) {
		data = &sessionData{turns: make([]Turn, 0, MaxTurns)}
		s.sessions[sessionID] = data
	}

	data.turns = append(data.turns, Turn{Role: role, Text: text, Timestamp: now})
	if len(data.turns) > MaxTurns {
		data.turns = data.turns[len(data.turns)-MaxTurns:]
	}
	data.lastTouched = now
}

// RecentUserTexts returns the user-role texts of a session in insertion
// order. Empty slice when the session is unknown or sessionID is empty.
func (s *Store) RecentUserTexts(sessionID string) []string {
	if sessionID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.sessions[sessionID]
	if data == nil {
		return nil
	}
	if s.expired(data, time.Now()) {
		delete(s.sessions, sessionID)
		return nil
	}

	texts := make([]string, 0, len(data.turns))
	for _, t := range data.turns {
		if t.Role == RoleUser {
			texts = append(texts, t.Text)
		}
	}
	return texts
}

// Turns returns a copy of the full history of a session, both roles.
func (s *Store) Turns(sessionID string) []Turn {
	if sessionID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.sessions[sessionID]
	if data == nil {
		return nil
	}
	if s.expired(data, time.Now()) {
		delete(s.sessions, sessionID)
		return nil
	}

	turns := make([]Turn, len(data.turns))
	copy(turns, data.turns)
	return turns
}

// ClearExpired drops every session idle longer than the ttl relative to now.
// Returns the number of sessions removed. A no-op when ttl is 0.
func (s *Store) ClearExpired(now time.Time) int {
	if s.ttl == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int
	for id, data := range s.sessions {
		if now.Sub(data.lastTouched) > s.ttl {
			delete(s.sessions, id)
			deleted++
		}
	}
	return deleted
}

// expired reports lazy TTL expiry; callers hold the lock.
func (s *Store) expired(data *sessionData, now time.Time) bool {
	return s.ttl > 0 && now.Sub(data.lastTouched) > s.ttl
}
