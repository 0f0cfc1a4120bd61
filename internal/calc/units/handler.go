package units

import (
	"encoding/json"
	"net/http"
)

type Input struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}

type Result struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type Handler struct{}

func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	v, err := Convert(input.Value, input.From, input.To)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Result{Value: v, Unit: input.To})
}
