package main

import (
	"fmt"
	"net/http"
	"time"

	"anesthesia-board/internal/export"
	"anesthesia-board/internal/notify"
)

// handleDirectoryImport parses the pasted name/phone list. The sidebar
// fetches this endpoint and shows the response text, so a zero count comes
// back as an error and the input is kept for the user to fix.
func handleDirectoryImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	count := phones.BulkImport(r.FormValue("entries"))
	if count == 0 {
		http.Error(w, "Could not parse any phone numbers. Please use 'Name, Phone' format.", http.StatusBadRequest)
		return
	}
	fmt.Fprintf(w, "Successfully imported %d phone numbers.", count)
}

// handleNotify is the stub SMS action for an assigned name. No transport
// exists; the response states what would be sent.
func handleNotify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	site := r.FormValue("site")

	phone, ok := phones.Lookup(name)
	if !ok {
		http.Error(w, fmt.Sprintf("No phone number found for %s. Please update the Phone Directory.", name), http.StatusNotFound)
		return
	}

	message := notify.Compose(site)
	if err := sender.Send(name, phone, message); err != nil {
		http.Error(w, "Notification failed: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	fmt.Fprintf(w, "Sending SMS to %s (%s): %q", name, phone, message)
}

// handleExport streams the board as a date-stamped CSV download. Allowed in
// both access modes.
func handleExport(w http.ResponseWriter, r *http.Request) {
	csv := export.Encode(registry.Sections(), store.Rows(), breaks.All())

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(time.Now())))
	w.Write([]byte(csv))
}
