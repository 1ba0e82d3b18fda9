// Package directory holds the name-to-phone mapping used by the notify
// action. Unlike the rest of the board state it survives restarts: every
// mutation triggers a wholesale, best-effort write to the configured
// backend, and the directory is initialized from the backend at startup.
package directory

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"anesthesia-board/internal/models"
)

// Seed entries used when the backend holds no saved directory yet.
var seed = map[string]string{
	"Dr. Smith": "+15551234567",
	"Dr. Jones": "+15559876543",
	"Jane Doe":  "+15553456789",
}

// Backend is the durable storage for the directory. Load returns nil when
// nothing has been saved yet; Save rewrites the whole mapping.
type Backend interface {
	Load() (map[string]string, error)
	Save(entries map[string]string) error
}

type Directory struct {
	mu      sync.RWMutex
	entries map[string]string
	backend Backend
	log     *zap.Logger
}

// New loads the directory from the backend, falling back to the built-in
// seed set when the backend is empty or unreadable.
func New(backend Backend, log *zap.Logger) *Directory {
	d := &Directory{backend: backend, log: log}

	saved, err := backend.Load()
	if err != nil {
		log.Warn("phone directory load failed, using seed entries", zap.Error(err))
	}
	if saved == nil {
		saved = make(map[string]string, len(seed))
		for name, phone := range seed {
			saved[name] = phone
		}
	}
	d.entries = saved
	return d
}

// BulkImport parses rawText one line at a time. A line splits on its first
// comma, or failing that its first colon; with at least two fields the first
// trimmed field is the name and the remaining fields, rejoined and trimmed,
// are the phone. Parsed entries are upserted. Lines that do not split are
// silently skipped. Returns the number of entries imported; zero means the
// whole import failed.
func (d *Directory) BulkImport(rawText string) int {
	parsed := make(map[string]string)
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			parts = strings.Split(line, ":")
		}
		if len(parts) < 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		phone := strings.TrimSpace(strings.Join(parts[1:], ""))
		if name == "" || phone == "" {
			continue
		}
		parsed[name] = phone
	}

	if len(parsed) == 0 {
		return 0
	}

	d.mu.Lock()
	for name, phone := range parsed {
		d.entries[name] = phone
	}
	d.mu.Unlock()

	d.persist()
	return len(parsed)
}

// Lookup returns the phone on file for name.
func (d *Directory) Lookup(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	phone, ok := d.entries[name]
	return phone, ok
}

// Entries returns the directory sorted by name for rendering.
func (d *Directory) Entries() []models.DirectoryEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.DirectoryEntry, 0, len(d.entries))
	for name, phone := range d.entries {
		out = append(out, models.DirectoryEntry{Name: name, Phone: phone})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// persist writes the current mapping to the backend without blocking the
// caller. Failures are logged and never surfaced; the in-memory directory
// stays authoritative for the session.
func (d *Directory) persist() {
	d.mu.RLock()
	snapshot := make(map[string]string, len(d.entries))
	for name, phone := range d.entries {
		snapshot[name] = phone
	}
	d.mu.RUnlock()

	go func() {
		if err := d.backend.Save(snapshot); err != nil {
			d.log.Warn("phone directory save failed", zap.Error(err))
		}
	}()
}
