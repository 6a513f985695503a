// Package warns provides the in-memory warning store. Warnings live for
// the lifetime of the process only and are keyed by user ID globally,
// not per guild.
package warns

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/world-compute/LinuxBotGo/pkg/models"
)

// DefaultReason is recorded when a moderator warns without giving one.
const DefaultReason = "No reason provided"

var (
	// ErrInvalidTarget is returned when the target is a bot account.
	ErrInvalidTarget = errors.New("cannot warn a bot")
	// ErrSelfWarn is returned when a moderator tries to warn themselves.
	ErrSelfWarn = errors.New("cannot warn yourself")
)

// Store keeps per-user warning lists. Lists are append-only and are
// discarded on restart; there is no removal operation.
type Store struct {
	mu    sync.RWMutex
	warns map[string][]models.Warn
}

// NewStore creates an empty warning store.
func NewStore() *Store {
	return &Store{
		warns: make(map[string][]models.Warn),
	}
}

// Warn appends a warning for targetID and returns the new total count.
// Bot targets and self-warns are rejected without changing state.
func (s *Store) Warn(targetID, actorID, reason string, targetIsBot bool) (int, error) {
	if targetIsBot {
		return 0, ErrInvalidTarget
	}
	if targetID == actorID {
		return 0, ErrSelfWarn
	}
	if reason == "" {
		reason = DefaultReason
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.warns[targetID] = append(s.warns[targetID], models.Warn{
		ID:        uuid.NewString(),
		Reason:    reason,
		Moderator: actorID,
		Timestamp: time.Now().Unix(),
	})

	return len(s.warns[targetID]), nil
}

// Count returns how many times a user has been warned, 0 when never.
func (s *Store) Count(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.warns[userID])
}

// List returns a copy of a user's warnings in insertion order.
func (s *Store) List(userID string) []models.Warn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.warns[userID]
	out := make([]models.Warn, len(list))
	copy(out, list)
	return out
}

// TotalUsers returns how many distinct users carry at least one warning.
func (s *Store) TotalUsers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.warns)
}
