package performance

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

// Calc validates the process record at the boundary and runs the model. The
// model itself accepts anything; rejecting non-physical input is this
// layer's job.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := ValidateProcess(input.Process); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res := Calculate(input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
