package board

import (
	"errors"
	"sync"

	"anesthesia-board/internal/models"
)

var (
	// ErrViewOnly is returned when a mutation is attempted in view mode.
	ErrViewOnly = errors.New("board is in view-only mode")
	// ErrSlotRange is returned for a row index outside the site registry.
	ErrSlotRange = errors.New("slot index out of range")
)

// Gate reports whether board mutations are currently permitted. The access
// controller implements it.
type Gate interface {
	CanEdit() bool
}

// Store holds the staff-to-slot assignments for the day. Rows are keyed by
// the registry's flattened site index. A staff name occupies at most one
// cell across the whole board at any time.
type Store struct {
	mu    sync.RWMutex
	rows  map[int]models.RowAssignment
	slots int
	gate  Gate
}

func NewStore(gate Gate, slots int) *Store {
	return &Store{
		rows:  make(map[int]models.RowAssignment),
		slots: slots,
		gate:  gate,
	}
}

// Place assigns name to (slot, role). Any cell name currently occupies is
// vacated first, so the single-occupancy invariant holds after every call;
// a name already in the target cell overwrites it and becomes unassigned.
// Blank names are the caller's responsibility: the store trusts that only
// real roster entries are dragged.
func (s *Store) Place(name string, slot int, role models.Role) error {
	if !s.gate.CanEdit() {
		return ErrViewOnly
	}
	if slot < 0 || slot >= s.slots {
		return ErrSlotRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, row := range s.rows {
		changed := false
		for _, r := range models.Roles {
			if row.Get(r) == name {
				row.Set(r, "")
				changed = true
			}
		}
		if changed {
			if row.Empty() {
				delete(s.rows, idx)
			} else {
				s.rows[idx] = row
			}
		}
	}

	row := s.rows[slot]
	row.Set(role, name)
	s.rows[slot] = row
	return nil
}

// Remove vacates (slot, role) if occupied; no-op otherwise.
func (s *Store) Remove(slot int, role models.Role) error {
	if !s.gate.CanEdit() {
		return ErrViewOnly
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[slot]
	if !ok {
		return nil
	}
	row.Set(role, "")
	if row.Empty() {
		delete(s.rows, slot)
	} else {
		s.rows[slot] = row
	}
	return nil
}

// AssignedNames returns the set of names currently occupying any cell.
func (s *Store) AssignedNames() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assigned := make(map[string]bool)
	for _, row := range s.rows {
		for _, r := range models.Roles {
			if name := row.Get(r); name != "" {
				assigned[name] = true
			}
		}
	}
	return assigned
}

// NameAt returns the occupant of (slot, role), or "" when empty.
func (s *Store) NameAt(slot int, role models.Role) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows[slot].Get(role)
}

// Rows returns a snapshot of all occupied rows.
func (s *Store) Rows() map[int]models.RowAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[int]models.RowAssignment, len(s.rows))
	for idx, row := range s.rows {
		snapshot[idx] = row
	}
	return snapshot
}

// Clear empties the whole board. Callers must have passed the privileged
// confirmation flow first.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = make(map[int]models.RowAssignment)
}
