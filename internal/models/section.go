package models

// Section is a named grouping of sites for display (e.g. "Heart Institute").
// Sections and their site order are fixed configuration, never mutated at
// runtime.
type Section struct {
	Title string   `json:"title"`
	Sites []string `json:"sites"`
}
