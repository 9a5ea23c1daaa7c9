// Package apitest provides an in-process fake of the remote NextSteps
// service for client tests. State is plain exported fields so tests
// can seed and inspect it directly.
package apitest

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/nextsteps/nextsteps-cli/api"
)

// Account is a seeded login identity.
type Account struct {
	Password string
	UserID   string
	Token    string
}

// Service is a fake NextSteps backend. Zero value is usable; seed the
// maps before serving.
type Service struct {
	mu sync.Mutex

	// Accounts maps username (email) to its account.
	Accounts map[string]Account
	// Profiles maps user id to profile. Missing ids return 404.
	Profiles map[string]api.Profile
	// Dashboards maps user id to snapshot.
	Dashboards map[string]api.DashboardSnapshot
	// Generated is returned by the generate endpoint.
	Generated api.Roadmap

	// GenerateStatus and DeleteStatus override the happy-path status
	// codes when non-zero.
	GenerateStatus int
	DeleteStatus   int

	// LoginMessage is returned with a rejected login.
	LoginMessage string
	// RegisterMessage is returned with a rejected registration; a
	// registration succeeds when it is empty.
	RegisterMessage string

	// Recorded requests.
	GenerateRequests []api.GenerateRequest
	RegisterRequests []api.RegisterRequest
	DeletedIDs       []string
}

// Handler returns the routed fake service.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Post("/api/auth/login", s.handleLogin)
	r.Post("/api/auth/register", s.handleRegister)
	r.Get("/api/profile/{userID}", s.handleProfile)
	r.Get("/api/dashboard/{userID}", s.handleDashboard)
	r.Post("/api/roadmaps/generate", s.handleGenerate)
	r.Delete("/api/roadmaps/{id}", s.handleDelete)
	return r
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	account, found := s.Accounts[req.Username]
	message := s.LoginMessage
	s.mu.Unlock()

	if !found || account.Password != req.Password {
		writeJSON(w, http.StatusUnauthorized, api.LoginResponse{Success: false, Message: message})
		return
	}
	writeJSON(w, http.StatusOK, api.LoginResponse{
		Success: true,
		UserID:  account.UserID,
		Email:   req.Username,
		Token:   account.Token,
	})
}

func (s *Service) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.RegisterRequests = append(s.RegisterRequests, req)
	message := s.RegisterMessage
	s.mu.Unlock()

	if message != "" {
		writeJSON(w, http.StatusBadRequest, api.RegisterResponse{Success: false, Message: message})
		return
	}
	writeJSON(w, http.StatusOK, api.RegisterResponse{Success: true})
}

func (s *Service) handleProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	profile, found := s.Profiles[chi.URLParam(r, "userID")]
	s.mu.Unlock()

	if !found {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Service) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	s.mu.Lock()
	account, authorized := s.accountForBearerLocked(bearerToken(r))
	snapshot, found := s.Dashboards[userID]
	s.mu.Unlock()

	if !authorized || account.UserID != userID {
		http.Error(w, "invalid credential", http.StatusUnauthorized)
		return
	}
	if !found {
		snapshot = api.DashboardSnapshot{Roadmaps: []api.RoadmapSummary{}}
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Service) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req api.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.GenerateRequests = append(s.GenerateRequests, req)
	status := s.GenerateStatus
	generated := s.Generated
	s.mu.Unlock()

	if status != 0 && status != http.StatusOK {
		http.Error(w, "generation failed", status)
		return
	}
	writeJSON(w, http.StatusOK, generated)
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	status := s.DeleteStatus
	if status == 0 || status == http.StatusNoContent {
		s.DeletedIDs = append(s.DeletedIDs, id)
	}
	s.mu.Unlock()

	if status != 0 && status != http.StatusNoContent {
		http.Error(w, "delete failed", status)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) accountForBearerLocked(token string) (Account, bool) {
	if token == "" {
		return Account{}, false
	}
	for _, account := range s.Accounts {
		if account.Token == token {
			return account, true
		}
	}
	return Account{}, false
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return ""
	}
	return header[len(prefix):]
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
