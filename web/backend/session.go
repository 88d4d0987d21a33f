package backend

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// ViewSession holds the per-client browsing state: content mode and
// pagination positions per category. All access goes through the manager.
type ViewSession struct {
	ID         string
	FamilyMode bool
	Pages      map[string]int
	CreatedAt  time.Time
	LastSeen   time.Time
}

// SessionSnapshot is the JSON view of a session returned to clients.
type SessionSnapshot struct {
	SessionID  string         `json:"session_id"`
	FamilyMode bool           `json:"family_mode"`
	Pages      map[string]int `json:"pages"`
}

// SessionManager tracks view sessions for concurrent clients.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*ViewSession
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*ViewSession),
	}
}

// GetOrCreate returns the session for clientID, creating it with defaults
// on first sight. Family mode starts enabled.
func (sm *SessionManager) GetOrCreate(clientID string) SessionSnapshot {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	s, ok := sm.sessions[clientID]
	if !ok {
		s = &ViewSession{
			ID:         uuid.New().String(),
			FamilyMode: true,
			Pages:      make(map[string]int),
			CreatedAt:  time.Now(),
		}
		sm.sessions[clientID] = s
	}
	s.LastSeen = time.Now()
	return snapshotLocked(s)
}

// FamilyMode reports the content mode for clientID; unknown clients get
// the family-safe default.
func (sm *SessionManager) FamilyMode(clientID string) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if s, ok := sm.sessions[clientID]; ok {
		return s.FamilyMode
	}
	return true
}

// SetFamilyMode toggles the content mode, creating the session if needed.
func (sm *SessionManager) SetFamilyMode(clientID string, enabled bool) SessionSnapshot {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	s, ok := sm.sessions[clientID]
	if !ok {
		s = &ViewSession{
			ID:        uuid.New().String(),
			Pages:     make(map[string]int),
			CreatedAt: time.Now(),
		}
		sm.sessions[clientID] = s
	}
	s.FamilyMode = enabled
	s.LastSeen = time.Now()
	return snapshotLocked(s)
}

// SetPage records the pagination position for a category.
func (sm *SessionManager) SetPage(clientID, category string, page int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if s, ok := sm.sessions[clientID]; ok {
		s.Pages[category] = page
		s.LastSeen = time.Now()
	}
}

// RemoveSession drops the session for clientID.
func (sm *SessionManager) RemoveSession(clientID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, clientID)
}

// CleanupStale removes sessions idle for longer than maxIdle.
func (sm *SessionManager) CleanupStale(maxIdle time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	cutoff := time.Now().Add(-maxIdle)
	for clientID, s := range sm.sessions {
		if s.LastSeen.Before(cutoff) {
			delete(sm.sessions, clientID)
		}
	}
}

func snapshotLocked(s *ViewSession) SessionSnapshot {
	pages := make(map[string]int, len(s.Pages))
	for k, v := range s.Pages {
		pages[k] = v
	}
	return SessionSnapshot{
		SessionID:  s.ID,
		FamilyMode: s.FamilyMode,
		Pages:      pages,
	}
}
