package footing

import (
	"encoding/json"
	"net/http"
)

// InvalidInputMsg is the user-facing message for any validation failure.
// Every bad input is recoverable by correcting the form, so one message
// covers them all.
const InvalidInputMsg = "Please enter valid positive numbers for all fields"

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, InvalidInputMsg, http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
