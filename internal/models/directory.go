package models

// DirectoryEntry is one name/phone pair from the phone directory.
type DirectoryEntry struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
