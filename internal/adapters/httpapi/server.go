// Package httpapi exposes the questlog services over a small JSON HTTP API.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/example/questlog/internal/ports/primary"
)

// Server routes HTTP requests to the progress and checklist services.
type Server struct {
	progress  primary.ProgressService
	checklist primary.ChecklistService
	rewards   primary.RewardService
	logger    *log.Logger
}

// NewServer creates an HTTP server over the given services.
func NewServer(progress primary.ProgressService, checklist primary.ChecklistService, rewards primary.RewardService, logger *log.Logger) *Server {
	return &Server{progress: progress, checklist: checklist, rewards: rewards, logger: logger}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("POST /v1/tracked/{trackedID}/items/{itemID}/toggle", s.handleToggle)
	mux.HandleFunc("GET /v1/tracked/{trackedID}/status", s.handleStatus)
	mux.HandleFunc("GET /v1/tracked/{trackedID}/rewards", s.handleAllRewards)
	mux.HandleFunc("GET /v1/tracked/{trackedID}/rewards/{rewardID}/tally", s.handleTally)
	mux.HandleFunc("GET /v1/tracked/{trackedID}/problematic", s.handleProblematic)
	mux.HandleFunc("GET /v1/checklists", s.handleListChecklists)
	mux.HandleFunc("GET /v1/checklists/{checklistID}", s.handleGetChecklist)
	mux.HandleFunc("GET /v1/rewards", s.handleRewardCatalog)

	return mux
}

type toggleResponse struct {
	Success bool `json:"success"`
	*primary.ToggleResult
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	trackedID := r.PathValue("trackedID")
	itemID := r.PathValue("itemID")

	result, err := s.progress.ToggleProgress(r.Context(), trackedID, itemID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toggleResponse{Success: true, ToggleResult: result})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.progress.Status(r.Context(), r.PathValue("trackedID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleAllRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := s.progress.AllAvailableRewards(r.Context(), r.PathValue("trackedID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if rewards == nil {
		rewards = []*primary.RewardAvailability{}
	}
	s.writeJSON(w, http.StatusOK, rewards)
}

func (s *Server) handleTally(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := s.progress.Tally(r.Context(), primary.TallyRequest{
		TrackedID: r.PathValue("trackedID"),
		RewardID:  r.PathValue("rewardID"),
		Location:  q.Get("location"),
		Category:  q.Get("category"),
		Chained:   q.Get("chained") == "true",
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleProblematic(w http.ResponseWriter, r *http.Request) {
	items, err := s.progress.ProblematicItems(r.Context(), r.PathValue("trackedID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if items == nil {
		items = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"problematic_items": items})
}

func (s *Server) handleListChecklists(w http.ResponseWriter, r *http.Request) {
	checklists, err := s.checklist.ListChecklists(r.Context(), primary.ChecklistFilters{
		GameID: r.URL.Query().Get("game_id"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	if checklists == nil {
		checklists = []*primary.Checklist{}
	}
	s.writeJSON(w, http.StatusOK, checklists)
}

func (s *Server) handleGetChecklist(w http.ResponseWriter, r *http.Request) {
	detail, err := s.checklist.GetChecklist(r.Context(), r.PathValue("checklistID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleRewardCatalog(w http.ResponseWriter, r *http.Request) {
	rewards, err := s.rewards.ListRewards(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if rewards == nil {
		rewards = []*primary.Reward{}
	}
	s.writeJSON(w, http.StatusOK, rewards)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && s.logger != nil {
		s.logger.Printf("write response: %v", err)
	}
}

// writeError maps service errors to HTTP statuses: a rejected completion is
// a client error, a missing entity is 404, anything else is a server error.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, primary.ErrPrerequisitesNotMet):
		status = http.StatusBadRequest
	case strings.Contains(err.Error(), "not found"):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError && s.logger != nil {
		s.logger.Printf("request failed: %v", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
