package main

import (
	"net/http"
	"net/url"
	"testing"

	"anesthesia-board/internal/access"
	"anesthesia-board/internal/models"
)

func TestViewModeBlocksEditsButNotBreaksOrExport(t *testing.T) {
	setupTest(t)

	postForm(t, handleAssign, "/api/board/assign", url.Values{
		"name": {"Dr. X"}, "slot": {"0"}, "role": {"Anesthesiologist"},
	})

	w := postForm(t, handleEnterView, "/api/mode/view", url.Values{})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 entering view mode, got %d", w.Code)
	}
	if gate.Mode() != access.ModeView {
		t.Fatalf("expected view mode, got %s", gate.Mode())
	}

	// Assignment and roster mutations are rejected, state unchanged.
	w = postForm(t, handleAssign, "/api/board/assign", url.Values{
		"name": {"Dr. Y"}, "slot": {"1"}, "role": {"AHP"},
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for assign in view mode, got %d", w.Code)
	}
	w = postForm(t, handleRosterAdd, "/api/roster/add", url.Values{
		"role": {"AHP"}, "names": {"Dr. Y"},
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for roster add in view mode, got %d", w.Code)
	}
	if store.NameAt(1, models.RoleAHP) != "" || len(roster.List(models.RoleAHP)) != 0 {
		t.Error("view mode mutation must leave state unchanged")
	}

	// Break toggling stays allowed.
	w = postForm(t, handleToggleBreak, "/api/board/break", url.Values{
		"slot": {"0"}, "break": {"1"},
	})
	if w.Code != http.StatusSeeOther {
		t.Errorf("expected break toggle to succeed in view mode, got %d", w.Code)
	}

	// So does export.
	req, w2 := getRequest("/export")
	handleExport(w2, req)
	if w2.Code != http.StatusOK {
		t.Errorf("expected export to succeed in view mode, got %d", w2.Code)
	}
}

func TestUnlockRequiresPassphrase(t *testing.T) {
	setupTest(t)
	gate.EnterView()

	w := postForm(t, handleUnlock, "/api/mode/unlock", url.Values{
		"password": {"wrong"},
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for wrong password, got %d", w.Code)
	}
	if gate.Mode() != access.ModeView {
		t.Error("wrong password must leave mode unchanged")
	}

	w = postForm(t, handleUnlock, "/api/mode/unlock", url.Values{
		"password": {"admin"},
	})
	if w.Code != http.StatusSeeOther {
		t.Errorf("expected 303 for correct password, got %d", w.Code)
	}
	if gate.Mode() != access.ModeEdit {
		t.Error("expected edit mode after unlock")
	}
}

func TestClearBoardRequiresPassphrase(t *testing.T) {
	setupTest(t)

	postForm(t, handleAssign, "/api/board/assign", url.Values{
		"name": {"Dr. X"}, "slot": {"0"}, "role": {"Anesthesiologist"},
	})
	postForm(t, handleToggleBreak, "/api/board/break", url.Values{
		"slot": {"0"}, "break": {"0"},
	})
	postForm(t, handleRosterAdd, "/api/roster/add", url.Values{
		"role": {"Relief"}, "names": {"Dr. R"},
	})

	w := postForm(t, handleClearBoard, "/api/board/clear", url.Values{
		"password": {"wrong"},
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong password, got %d", w.Code)
	}
	if store.NameAt(0, models.RoleAnesthesiologist) != "Dr. X" {
		t.Error("assignments must survive a failed clear")
	}
	if breaks.Flags(0) != [2]bool{true, false} {
		t.Error("breaks must survive a failed clear")
	}
	if len(roster.List(models.RoleRelief)) != 1 {
		t.Error("roster must survive a failed clear")
	}

	w = postForm(t, handleClearBoard, "/api/board/clear", url.Values{
		"password": {"admin"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 for correct password, got %d", w.Code)
	}
	if len(store.Rows()) != 0 {
		t.Error("expected assignments cleared")
	}
	if breaks.Flags(0) != [2]bool{false, false} {
		t.Error("expected breaks cleared")
	}
	for _, role := range models.Roles {
		if len(roster.List(role)) != 0 {
			t.Errorf("expected %s roster cleared", role)
		}
	}
}

// Clear works from view mode too; it is gated on the passphrase, not the mode.
func TestClearBoardFromViewMode(t *testing.T) {
	setupTest(t)

	postForm(t, handleAssign, "/api/board/assign", url.Values{
		"name": {"Dr. X"}, "slot": {"2"}, "role": {"AHP"},
	})
	gate.EnterView()

	w := postForm(t, handleClearBoard, "/api/board/clear", url.Values{
		"password": {"admin"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if len(store.Rows()) != 0 {
		t.Error("expected board cleared from view mode")
	}
}
