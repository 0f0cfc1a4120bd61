package gas

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Properties(w http.ResponseWriter, r *http.Request) {
	var input Composition
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PropertiesOf(input))
}
