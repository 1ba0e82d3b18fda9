package board

import "anesthesia-board/internal/models"

// DefaultSections is the fixed site layout for the daily board. The flattened
// order of sites across sections assigns each site its stable row index.
var DefaultSections = []models.Section{
	{
		Title: "MOR",
		Sites: []string{
			"OR1", "OR2", "OR3", "OR4", "OR5", "OR6", "OR7", "OR8", "OR9", "OR10",
			"OR11", "OR12", "OR14", "OR15", "OR16", "OR17", "OR18", "OR19", "OR21", "OR23",
		},
	},
	{
		Title: "Endoscopy",
		Sites: []string{"ENDO1", "ENDO2", "ENDO3"},
	},
	{
		Title: "Radiology",
		Sites: []string{"MRI", "TEE/DH", "IR1", "IR2"},
	},
	{
		Title: "Heart Institute",
		Sites: []string{"CV1", "CV2", "CV3", "CV9", "EP4", "EP5", "EP10", "CCL6"},
	},
	{
		Title: "Same Day Surgery",
		Sites: []string{"SDS1", "SDS2", "SDS3", "SDS4", "SDS5", "SDS6"},
	},
	{
		Title: "Women's Hospital",
		Sites: []string{"WH1", "WH2", "WH3", "WH4", "WH5", "WH6", "WH7", "WH8", "WH9", "WH10"},
	},
}

// Registry resolves sites to row indexes and back. It is immutable after
// construction.
type Registry struct {
	sections []models.Section
	flat     []string
	index    map[string]int
}

func NewRegistry(sections []models.Section) *Registry {
	r := &Registry{
		sections: sections,
		index:    make(map[string]int),
	}
	for _, sec := range sections {
		for _, site := range sec.Sites {
			r.index[site] = len(r.flat)
			r.flat = append(r.flat, site)
		}
	}
	return r
}

func DefaultRegistry() *Registry {
	return NewRegistry(DefaultSections)
}

func (r *Registry) Sections() []models.Section { return r.sections }

// Slots returns all sites in flattened board order.
func (r *Registry) Slots() []string { return r.flat }

func (r *Registry) Len() int { return len(r.flat) }

// IndexOf returns the row index of a site, or -1 if unknown.
func (r *Registry) IndexOf(site string) int {
	if i, ok := r.index[site]; ok {
		return i
	}
	return -1
}

// SlotAt returns the site at a row index, or "" if out of range.
func (r *Registry) SlotAt(index int) string {
	if index < 0 || index >= len(r.flat) {
		return ""
	}
	return r.flat[index]
}
