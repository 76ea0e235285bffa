package announcer

import "sync"

// Tracker owns the snapshot of the tracked channel between events. Events
// are handed to it one at a time by the gateway session; the mutex only
// guards the status endpoint reading the roster from another goroutine.
type Tracker struct {
	dir         Directory
	localUserID string
	snapshot    Snapshot
	mu          sync.RWMutex
}

func NewTracker(dir Directory, localUserID string) *Tracker {
	return &Tracker{dir: dir, localUserID: localUserID}
}

// Seed populates the snapshot from the channel the observed user is
// currently in, if any. Called once on startup.
func (t *Tracker) Seed() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.snapshot = t.dir.Roster(t.dir.CurrentVoiceChannelID())
}

// Handle classifies one event against the remembered snapshot and stores
// the replacement snapshot.
func (t *Tracker) Handle(ev Event, privateName string) Transition {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := Classify(t.dir, ev, t.snapshot, t.localUserID, privateName)
	t.snapshot = result.Snapshot
	return result.Transition
}

// Clear empties the snapshot on shutdown.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.snapshot = nil
}

// Roster returns a copy of the current snapshot.
func (t *Tracker) Roster() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	roster := make(Snapshot, len(t.snapshot))
	copy(roster, t.snapshot)
	return roster
}
