package adminflow

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// State is the pending-action state of an admin conversation. The admin menu
// puts the session into an Awaiting state and the next free-form message from
// that admin is interpreted against it.
type State int

const (
	StateIdle State = iota
	StateAwaitingNewItem
	StateAwaitingBalanceEdit
	StateAwaitingDeletion
	StateAwaitingSearch
)

func (s State) String() string {
	switch s {
	case StateAwaitingNewItem:
		return "awaiting_new_item"
	case StateAwaitingBalanceEdit:
		return "awaiting_balance_edit"
	case StateAwaitingDeletion:
		return "awaiting_deletion"
	case StateAwaitingSearch:
		return "awaiting_search"
	default:
		return "idle"
	}
}

const (
	// SessionTTL bounds how long a pending admin action stays armed.
	SessionTTL = 10 * time.Minute
	// sessionCap is generous; there is normally one admin.
	sessionCap = 64
)

// SessionStore tracks per-admin pending actions. Sessions expire on their
// own, so an abandoned menu never leaves a stale trap for a later message.
type SessionStore struct {
	cache *expirable.LRU[int64, State]
}

// NewSessionStore creates a session store with the default TTL
func NewSessionStore() *SessionStore {
	return &SessionStore{
		cache: expirable.NewLRU[int64, State](sessionCap, nil, SessionTTL),
	}
}

// Begin arms the given state for the admin, replacing any pending one
func (s *SessionStore) Begin(adminID int64, state State) {
	s.cache.Add(adminID, state)
}

// Get returns the pending state, or StateIdle when none is armed
func (s *SessionStore) Get(adminID int64) State {
	state, ok := s.cache.Get(adminID)
	if !ok {
		return StateIdle
	}
	return state
}

// Clear disarms the admin's pending state
func (s *SessionStore) Clear(adminID int64) {
	s.cache.Remove(adminID)
}
