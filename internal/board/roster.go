package board

import (
	"strings"
	"sync"

	"anesthesia-board/internal/models"
)

// Roster is the pool of draggable candidate names, one ordered list per
// role. It is only a source list: removing a name here never clears an
// assignment still holding that name on the board.
type Roster struct {
	mu    sync.RWMutex
	lists map[models.Role][]string
	gate  Gate
}

func NewRoster(gate Gate) *Roster {
	lists := make(map[models.Role][]string)
	for _, r := range models.Roles {
		lists[r] = nil
	}
	return &Roster{lists: lists, gate: gate}
}

// BulkAdd splits rawText on line breaks, trims each line, drops blanks, and
// appends the names not already present in the role's list, preserving input
// order. Returns the number of names added.
func (ro *Roster) BulkAdd(role models.Role, rawText string) (int, error) {
	if !ro.gate.CanEdit() {
		return 0, ErrViewOnly
	}

	ro.mu.Lock()
	defer ro.mu.Unlock()

	existing := make(map[string]bool)
	for _, name := range ro.lists[role] {
		existing[name] = true
	}

	added := 0
	for _, line := range strings.Split(rawText, "\n") {
		name := strings.TrimSpace(line)
		if name == "" || existing[name] {
			continue
		}
		ro.lists[role] = append(ro.lists[role], name)
		existing[name] = true
		added++
	}
	return added, nil
}

// RemoveOne drops name from the role's list. The board is left untouched.
func (ro *Roster) RemoveOne(role models.Role, name string) error {
	if !ro.gate.CanEdit() {
		return ErrViewOnly
	}

	ro.mu.Lock()
	defer ro.mu.Unlock()

	list := ro.lists[role]
	for i, n := range list {
		if n == name {
			ro.lists[role] = append(list[:i], list[i+1:]...)
			break
		}
	}
	return nil
}

// ClearRole empties one role's list after the UI has confirmed.
func (ro *Roster) ClearRole(role models.Role) error {
	if !ro.gate.CanEdit() {
		return ErrViewOnly
	}

	ro.mu.Lock()
	defer ro.mu.Unlock()
	ro.lists[role] = nil
	return nil
}

// List returns a copy of one role's names in order.
func (ro *Roster) List(role models.Role) []string {
	ro.mu.RLock()
	defer ro.mu.RUnlock()

	out := make([]string, len(ro.lists[role]))
	copy(out, ro.lists[role])
	return out
}

// ClearAll empties every list. Only the privileged clear-board action calls
// this, so it bypasses the edit gate.
func (ro *Roster) ClearAll() {
	ro.mu.Lock()
	defer ro.mu.Unlock()
	for _, r := range models.Roles {
		ro.lists[r] = nil
	}
}
