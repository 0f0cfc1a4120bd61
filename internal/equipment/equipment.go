package equipment

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	auth "Recip/internal/auth"
	performance "Recip/internal/calc/performance"
	repo "Recip/internal/repo"

	"github.com/gorilla/mux"
)

// Handler exposes stored frame configurations: save, list, load, delete,
// and run the performance model against a stored frame.
type Handler struct {
	Repo repo.Repository
}

type saveResponse struct {
	ID int `json:"id"`
}

func (h *Handler) SaveFrame(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var frame repo.FrameRecord
	if err := json.NewDecoder(r.Body).Decode(&frame); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if frame.Model == "" || frame.Stages < 1 {
		http.Error(w, "Model and stage count required", http.StatusBadRequest)
		return
	}
	frame.OwnerID = userID

	id, err := h.Repo.SaveFrame(r.Context(), frame)
	if err != nil {
		log.Printf("SaveFrame error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saveResponse{ID: id})
}

func (h *Handler) ListFrames(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	frames, err := h.Repo.ListFrames(r.Context(), userID)
	if err != nil {
		log.Printf("ListFrames error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if frames == nil {
		frames = []repo.FrameRecord{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(frames)
}

func (h *Handler) GetFrame(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	frameID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid frame id", http.StatusBadRequest)
		return
	}
	frame, err := h.Repo.GetFrame(r.Context(), userID, frameID)
	if err == repo.ErrNotFound {
		http.Error(w, "Frame not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("GetFrame error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(frame)
}

func (h *Handler) DeleteFrame(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	frameID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid frame id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteFrame(r.Context(), userID, frameID); err != nil {
		if err == repo.ErrNotFound {
			http.Error(w, "Frame not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteFrame error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Calc loads a stored frame and runs the performance model with the posted
// process conditions. The frame's throws and their stage numbers become the
// throw list and assignment.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	frameID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid frame id", http.StatusBadRequest)
		return
	}

	var process performance.ProcessInput
	if err := json.NewDecoder(r.Body).Decode(&process); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	frame, err := h.Repo.GetFrame(r.Context(), userID, frameID)
	if err == repo.ErrNotFound {
		http.Error(w, "Frame not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("GetFrame error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	if process.Stages == 0 {
		process.Stages = frame.Stages
	}
	if err := performance.ValidateProcess(process); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := performance.Calculate(PerformanceInput(frame, process))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// PerformanceInput builds a model input from a stored frame and process
// conditions.
func PerformanceInput(frame repo.FrameRecord, process performance.ProcessInput) performance.Input {
	in := performance.Input{
		Process:    process,
		Throws:     make([]performance.Throw, 0, len(frame.Throws)),
		Assignment: make(map[int][]string, process.Stages),
	}
	for _, th := range frame.Throws {
		id := fmt.Sprintf("throw-%d", th.Number)
		in.Throws = append(in.Throws, performance.Throw{
			ID:           id,
			VVCPPct:      th.VVCPPct,
			SACEPct:      th.SACEPct,
			SAHEPct:      th.SAHEPct,
			BoreMM:       th.BoreMM,
			ClearancePct: th.ClearancePct,
		})
		if th.StageNumber > 0 {
			in.Assignment[th.StageNumber] = append(in.Assignment[th.StageNumber], id)
		}
	}
	return in
}
