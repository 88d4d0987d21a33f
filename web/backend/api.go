package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"mediarec/internal/match"
	"mediarec/internal/suggest"
)

const (
	cacheTTL        = 10 * time.Minute
	janitorInterval = time.Hour
	sessionMaxIdle  = 24 * time.Hour
)

// API serves the search and suggestion endpoints.
type API struct {
	sessions  *SessionManager
	cache     *QueryCache
	client    suggest.MetadataClient
	suggester *suggest.Suggester
}

func NewAPI(client suggest.MetadataClient, suggester *suggest.Suggester) *API {
	api := &API{
		sessions:  NewSessionManager(),
		cache:     NewQueryCache(cacheTTL),
		client:    client,
		suggester: suggester,
	}

	// Periodically drop expired cache entries and stale sessions
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for range ticker.C {
			api.cache.Sweep()
			api.sessions.CleanupStale(sessionMaxIdle)
		}
	}()

	return api
}

// HandleSearch runs a literal search with the fuzzy fallback. The content
// mode comes from the caller's session; results are cached per
// (query, mode) pair.
func (api *API) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	userID := r.URL.Query().Get("user_id")
	familyMode := api.sessions.FamilyMode(userID)

	key := fmt.Sprintf("search|%t|%s", familyMode, query)
	if data, ok := api.cache.Get(key); ok {
		writeJSONBytes(w, data)
		return
	}

	outcome, err := api.suggester.SearchWithFallback(r.Context(), api.client, query, familyMode)
	if errors.Is(err, match.ErrEmptyQuery) {
		http.Error(w, "q required", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	data, err := json.Marshal(outcome)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	api.cache.Set(key, data)
	writeJSONBytes(w, data)
}

// HandleSuggest exposes the fuzzy matcher directly, without touching the
// metadata API.
func (api *API) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	familyMode := true
	if v := r.URL.Query().Get("family"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "family must be a boolean", http.StatusBadRequest)
			return
		}
		familyMode = parsed
	}

	m, ok, err := api.suggester.Suggest(query, familyMode)
	if errors.Is(err, match.ErrEmptyQuery) {
		http.Error(w, "q required", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := struct {
		Found bool         `json:"found"`
		Match *match.Match `json:"match,omitempty"`
	}{Found: ok}
	if ok {
		resp.Match = &m
	}
	writeJSON(w, resp)
}

// HandleSession returns (creating if needed) the caller's view state.
func (api *API) HandleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id required", http.StatusBadRequest)
		return
	}
	writeJSON(w, api.sessions.GetOrCreate(userID))
}

// HandleFamilyMode toggles the caller's content mode.
func (api *API) HandleFamilyMode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id required", http.StatusBadRequest)
		return
	}
	enabled, err := strconv.ParseBool(r.URL.Query().Get("enabled"))
	if err != nil {
		http.Error(w, "enabled must be a boolean", http.StatusBadRequest)
		return
	}
	writeJSON(w, api.sessions.SetFamilyMode(userID, enabled))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeJSONBytes(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
