package main

import (
	"net/http"

	"go.uber.org/zap"

	"anesthesia-board/internal/models"
)

func handleRosterAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	role, ok := models.ParseRole(r.FormValue("role"))
	if !ok {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	added, err := roster.BulkAdd(role, r.FormValue("names"))
	if err != nil {
		writeBoardError(w, err)
		return
	}
	logg.Debug("roster updated", zap.String("role", string(role)), zap.Int("added", added))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func handleRosterRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	role, ok := models.ParseRole(r.FormValue("role"))
	if !ok {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	// Only the source list is touched; an assignment holding this name
	// stays on the board.
	if err := roster.RemoveOne(role, r.FormValue("name")); err != nil {
		writeBoardError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func handleRosterClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	role, ok := models.ParseRole(r.FormValue("role"))
	if !ok {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	if err := roster.ClearRole(role); err != nil {
		writeBoardError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
