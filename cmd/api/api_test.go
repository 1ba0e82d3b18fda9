package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"anesthesia-board/internal/models"
)

// testBackend keeps directory saves in memory.
type testBackend struct {
	entries map[string]string
}

func (b *testBackend) Load() (map[string]string, error) { return b.entries, nil }
func (b *testBackend) Save(entries map[string]string) error {
	b.entries = entries
	return nil
}

// setupTest resets the server state between cases.
func setupTest(t *testing.T) {
	t.Helper()
	initState("admin", &testBackend{})
}

func postForm(t *testing.T, handler http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func getRequest(path string) (*http.Request, *httptest.ResponseRecorder) {
	return httptest.NewRequest("GET", path, nil), httptest.NewRecorder()
}

func TestHandleAssign(t *testing.T) {
	setupTest(t)

	w := postForm(t, handleAssign, "/api/board/assign", url.Values{
		"name": {"Dr. X"},
		"slot": {"0"},
		"role": {"Anesthesiologist"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", w.Code, w.Body.String())
	}
	if got := store.NameAt(0, models.RoleAnesthesiologist); got != "Dr. X" {
		t.Errorf("expected Dr. X at slot 0, got %q", got)
	}
}

func TestHandleAssignMovesExisting(t *testing.T) {
	setupTest(t)

	postForm(t, handleAssign, "/api/board/assign", url.Values{
		"name": {"Dr. X"}, "slot": {"0"}, "role": {"Anesthesiologist"},
	})
	postForm(t, handleAssign, "/api/board/assign", url.Values{
		"name": {"Dr. X"}, "slot": {"5"}, "role": {"Relief"},
	})

	if got := store.NameAt(0, models.RoleAnesthesiologist); got != "" {
		t.Errorf("expected slot 0 vacated, got %q", got)
	}
	if got := store.NameAt(5, models.RoleRelief); got != "Dr. X" {
		t.Errorf("expected Dr. X at slot 5, got %q", got)
	}
}

func TestHandleAssignRejectsBlankName(t *testing.T) {
	setupTest(t)

	w := postForm(t, handleAssign, "/api/board/assign", url.Values{
		"name": {"   "}, "slot": {"0"}, "role": {"AHP"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for blank name, got %d", w.Code)
	}
}

func TestHandleAssignRejectsBadInput(t *testing.T) {
	setupTest(t)

	w := postForm(t, handleAssign, "/api/board/assign", url.Values{
		"name": {"Dr. X"}, "slot": {"notanumber"}, "role": {"AHP"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad slot, got %d", w.Code)
	}

	w = postForm(t, handleAssign, "/api/board/assign", url.Values{
		"name": {"Dr. X"}, "slot": {"0"}, "role": {"Janitor"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown role, got %d", w.Code)
	}

	w = postForm(t, handleAssign, "/api/board/assign", url.Values{
		"name": {"Dr. X"}, "slot": {"99"}, "role": {"AHP"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for out-of-range slot, got %d", w.Code)
	}
}

func TestHandleRemoveAssignment(t *testing.T) {
	setupTest(t)

	postForm(t, handleAssign, "/api/board/assign", url.Values{
		"name": {"Dr. X"}, "slot": {"3"}, "role": {"AHP"},
	})
	w := postForm(t, handleRemoveAssignment, "/api/board/remove", url.Values{
		"slot": {"3"}, "role": {"AHP"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if got := store.NameAt(3, models.RoleAHP); got != "" {
		t.Errorf("expected empty cell, got %q", got)
	}
}

func TestHandleToggleBreak(t *testing.T) {
	setupTest(t)

	w := postForm(t, handleToggleBreak, "/api/board/break", url.Values{
		"slot": {"5"}, "break": {"0"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if flags := breaks.Flags(5); flags != [2]bool{true, false} {
		t.Errorf("expected break 1 taken, got %v", flags)
	}

	w = postForm(t, handleToggleBreak, "/api/board/break", url.Values{
		"slot": {"5"}, "break": {"2"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for break index 2, got %d", w.Code)
	}
}

func TestBoardPageRenders(t *testing.T) {
	setupTest(t)

	postForm(t, handleAssign, "/api/board/assign", url.Values{
		"name": {"Dr. X"}, "slot": {"0"}, "role": {"Anesthesiologist"},
	})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handleBoard(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "Anesthesia Daily Board") {
		t.Error("expected page title in body")
	}
	if !strings.Contains(body, "Dr. X") {
		t.Error("expected assignment rendered on board")
	}
	if !strings.Contains(body, "Heart Institute") {
		t.Error("expected section headers rendered")
	}
}

func TestBoardPageNotFoundForOtherPaths(t *testing.T) {
	setupTest(t)

	req := httptest.NewRequest("GET", "/nosuch", nil)
	w := httptest.NewRecorder()
	handleBoard(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
