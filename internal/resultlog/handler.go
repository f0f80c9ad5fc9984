package resultlog

import (
	"encoding/json"
	"net/http"
	"time"

	auth "Bearing/internal/auth"
	footing "Bearing/internal/calc/footing"
)

type Handler struct {
	Logs *Registry
}

// Save computes and appends the result to the caller's session log. The
// stored entry keeps full precision; rounding happens on export.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input footing.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := footing.Calculate(input)
	if err != nil {
		http.Error(w, footing.InvalidInputMsg, http.StatusBadRequest)
		return
	}

	entry := Entry{
		Timestamp: time.Now(),
		Input:     input,
		QmaxKNM2:  res.QmaxKNM2,
		Case:      res.Case,
	}
	h.Logs.Get(userID).Append(entry)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	entries := h.Logs.Get(userID).Entries()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// Export streams the session log as CSV. An empty log yields 404 instead of
// a header-only document.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	logbook := h.Logs.Get(userID)
	if logbook.Len() == 0 {
		http.Error(w, "No results to export", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+ExportFilename+"\"")
	if err := logbook.WriteCSV(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.Logs.Get(userID).Clear()
	w.WriteHeader(http.StatusNoContent)
}
