// Package session holds the in-memory view of one user session: the
// connected identity and the latest completed campaign load. Nothing
// here survives a restart; everything is rebuilt from the ledger.
package session

import (
	"sync"
	"time"

	"github.com/chokiwild/ChainFund-Dapp/internal/model"
	"github.com/chokiwild/ChainFund-Dapp/internal/state"
)

// Snapshot is a consistent read of the session view, display states
// derived at the instant the snapshot was taken.
type Snapshot struct {
	Identity  model.IdentityContext
	Campaigns []model.DerivedCampaignView
	LoadedAt  time.Time
}

// Store is the single holder of session state. It keeps raw ledger
// records only; display states are derived against the caller's clock
// on every read, so a campaign crossing its deadline is reported
// expired immediately, without waiting for a refresh tick. Loads apply
// atomically: Replace swaps the whole record list or nothing, so
// readers always see the latest completed load, never an in-flight
// partial one.
type Store struct {
	mu       sync.RWMutex
	identity model.IdentityContext
	records  []model.CampaignRecord
	loadedAt time.Time
}

// NewStore creates an empty session store (guest, no campaigns).
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns a consistent copy of the current view with display
// states derived at the given instant.
func (s *Store) Snapshot(now time.Time) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Identity:  s.identity,
		Campaigns: state.DeriveAll(s.records, now),
		LoadedAt:  s.loadedAt,
	}
}

// Identity returns the current identity context.
func (s *Store) Identity() model.IdentityContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// SetIdentity replaces the identity context.
func (s *Store) SetIdentity(identity model.IdentityContext) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
}

// Replace atomically installs a completed registry load.
func (s *Store) Replace(records []model.CampaignRecord, loadedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.loadedAt = loadedAt
}

// Find returns the derived view of a campaign by ordinal, derived at
// the given instant.
func (s *Store) Find(id uint64, now time.Time) (model.DerivedCampaignView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.Id == id {
			return state.Derive(record, now), true
		}
	}
	return model.DerivedCampaignView{}, false
}
