package board

import "sync"

// BreakTracker records the two per-row break flags. Its lifecycle is
// independent of the assignment store: a row can carry break state with no
// staff assigned, and toggling is allowed even in view mode.
type BreakTracker struct {
	mu    sync.RWMutex
	flags map[int][2]bool
}

func NewBreakTracker() *BreakTracker {
	return &BreakTracker{flags: make(map[int][2]bool)}
}

// Toggle flips one of the two break flags for a row, initializing the pair
// to [false, false] on first touch.
func (b *BreakTracker) Toggle(slot, breakIndex int) {
	if breakIndex < 0 || breakIndex > 1 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	pair := b.flags[slot]
	pair[breakIndex] = !pair[breakIndex]
	b.flags[slot] = pair
}

// Flags returns the break pair for a row.
func (b *BreakTracker) Flags(slot int) [2]bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.flags[slot]
}

// All returns a snapshot of every row with break state.
func (b *BreakTracker) All() map[int][2]bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snapshot := make(map[int][2]bool, len(b.flags))
	for idx, pair := range b.flags {
		snapshot[idx] = pair
	}
	return snapshot
}

// Clear drops all break state.
func (b *BreakTracker) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flags = make(map[int][2]bool)
}
