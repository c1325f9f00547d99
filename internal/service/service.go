// Package service exposes groups, expense ledgers and settlement over a JSON
// HTTP API. All computation is delegated to the calculator package; this
// layer only loads the ledger, runs it and shapes the response.
package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jakobj/money-helsinki/internal/auth"
	"github.com/jakobj/money-helsinki/internal/middleware"
	"github.com/jakobj/money-helsinki/internal/storage"
)

// ExpenseService handles the HTTP API.
type ExpenseService struct {
	store  storage.Store
	authn  *auth.PasswordAuthenticator
	tokens *auth.TokenManager
}

// New creates an ExpenseService.
func New(store storage.Store, authn *auth.PasswordAuthenticator, tokens *auth.TokenManager) *ExpenseService {
	return &ExpenseService{store: store, authn: authn, tokens: tokens}
}

// RegisterRoutes attaches all API routes to mux. Mutating endpoints require
// a valid session token.
func (s *ExpenseService) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)

	mux.Handle("POST /api/groups", s.requireAuth(s.handleCreateGroup))
	mux.HandleFunc("GET /api/groups", s.handleListGroups)
	mux.HandleFunc("GET /api/groups/{id}", s.handleGetGroup)

	mux.Handle("POST /api/groups/{id}/expenses", s.requireAuth(s.handleAddExpenses))
	mux.HandleFunc("GET /api/groups/{id}/expenses", s.handleListExpenses)
	mux.HandleFunc("GET /api/groups/{id}/balances", s.handleBalances)
	mux.HandleFunc("GET /api/groups/{id}/settlement", s.handleSettlement)
}

func (s *ExpenseService) requireAuth(h http.HandlerFunc) http.Handler {
	return middleware.RequireAuth(s.tokens, h)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}
