package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"anesthesia-board/internal/access"
	"anesthesia-board/internal/board"
	"anesthesia-board/internal/middleware"
	"anesthesia-board/internal/models"
)

// Page data for the board template.

type BoardCell struct {
	Role models.Role
	Name string
}

type BoardRow struct {
	Index  int
	Site   string
	Cells  []BoardCell
	Breaks [2]bool
}

type BoardSection struct {
	Title string
	Rows  []BoardRow
}

type RosterList struct {
	Role  models.Role
	Title string
	Names []RosterName
}

type RosterName struct {
	Name     string
	Assigned bool
}

type BoardPageData struct {
	Date           string
	ViewMode       bool
	Sections       []BoardSection
	Roles          []models.Role
	Rosters        []RosterList
	Directory      []models.DirectoryEntry
	DirectoryCount int
	CSRFToken      string
}

var rosterTitles = map[models.Role]string{
	models.RoleAnesthesiologist: "Anesthesiologists",
	models.RoleAHP:              "AHPs",
	models.RoleRelief:           "Relief",
}

func handleBoard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	rows := store.Rows()
	assigned := store.AssignedNames()

	var sections []BoardSection
	index := 0
	for _, sec := range registry.Sections() {
		bs := BoardSection{Title: sec.Title}
		for _, site := range sec.Sites {
			row := BoardRow{Index: index, Site: site, Breaks: breaks.Flags(index)}
			for _, role := range models.Roles {
				row.Cells = append(row.Cells, BoardCell{Role: role, Name: rows[index].Get(role)})
			}
			bs.Rows = append(bs.Rows, row)
			index++
		}
		sections = append(sections, bs)
	}

	var rosters []RosterList
	for _, role := range models.Roles {
		list := RosterList{Role: role, Title: rosterTitles[role]}
		for _, name := range roster.List(role) {
			list.Names = append(list.Names, RosterName{Name: name, Assigned: assigned[name]})
		}
		rosters = append(rosters, list)
	}

	token, _ := r.Context().Value(middleware.CSRFTokenKey).(string)
	data := BoardPageData{
		Date:           time.Now().Format("Monday, January 2, 2006"),
		ViewMode:       gate.Mode() == access.ModeView,
		Sections:       sections,
		Roles:          models.Roles,
		Rosters:        rosters,
		Directory:      phones.Entries(),
		DirectoryCount: phones.Len(),
		CSRFToken:      token,
	}
	render(w, data, "ui/templates/board.html")
}

func handleAssign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		// The store itself is permissive, so blank names are rejected here.
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	slot, err := strconv.Atoi(r.FormValue("slot"))
	if err != nil {
		http.Error(w, "Invalid slot", http.StatusBadRequest)
		return
	}
	role, ok := models.ParseRole(r.FormValue("role"))
	if !ok {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	if err := store.Place(name, slot, role); err != nil {
		writeBoardError(w, err)
		return
	}
	logg.Debug("assignment placed",
		zap.String("name", name), zap.Int("slot", slot), zap.String("role", string(role)))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func handleRemoveAssignment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	slot, err := strconv.Atoi(r.FormValue("slot"))
	if err != nil {
		http.Error(w, "Invalid slot", http.StatusBadRequest)
		return
	}
	role, ok := models.ParseRole(r.FormValue("role"))
	if !ok {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	if err := store.Remove(slot, role); err != nil {
		writeBoardError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Break toggling is allowed in both modes; only the row key is validated.
func handleToggleBreak(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	slot, err := strconv.Atoi(r.FormValue("slot"))
	if err != nil || slot < 0 || slot >= registry.Len() {
		http.Error(w, "Invalid slot", http.StatusBadRequest)
		return
	}
	breakIndex, err := strconv.Atoi(r.FormValue("break"))
	if err != nil || breakIndex < 0 || breakIndex > 1 {
		http.Error(w, "Invalid break index", http.StatusBadRequest)
		return
	}

	breaks.Toggle(slot, breakIndex)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleClearBoard empties assignments, breaks, and all roster lists as one
// action after passphrase confirmation. A wrong passphrase changes nothing.
func handleClearBoard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := gate.Confirm(r.FormValue("password")); err != nil {
		http.Error(w, "Incorrect password. Please try again.", http.StatusForbidden)
		return
	}

	store.Clear()
	breaks.Clear()
	roster.ClearAll()
	logg.Info("daily board cleared")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func handleEnterView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	gate.EnterView()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func handleUnlock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := gate.Unlock(r.FormValue("password")); err != nil {
		http.Error(w, "Incorrect password. Please try again.", http.StatusForbidden)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func writeBoardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, board.ErrViewOnly):
		http.Error(w, "Board is in view-only mode", http.StatusForbidden)
	case errors.Is(err, board.ErrSlotRange):
		http.Error(w, "Invalid slot", http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
