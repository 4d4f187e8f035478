// Package server exposes the earnings engine over a small JSON API
// plus a WebSocket stream that re-pushes reports on price refreshes.
// It renders nothing: consumers receive structured rows and display
// them literally.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
	"github.com/iamyahyr/rollercoin-league-calculator/internal/engine"
)

// apiError is the standard JSON error envelope.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	errCodeInvalidInput  = "INVALID_INPUT"
	errCodeInternalError = "INTERNAL_ERROR"
)

func writeJSONError(w http.ResponseWriter, statusCode int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]apiError{"error": {Code: errCode, Message: message}})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("Response encode failed", slog.Any("error", err))
	}
}

// PriceSource supplies the latest snapshot; satisfied by
// infra.PriceClient.
type PriceSource interface {
	Snapshot() domain.PriceSnapshot
}

// Server routes API requests to the engine.
type Server struct {
	router         *mux.Router
	engine         *engine.Engine
	prices         PriceSource
	hub            *streamHub
	allowedOrigins []string
}

// NewServer wires the engine and price source into a router.
func NewServer(eng *engine.Engine, prices PriceSource, allowedOrigins []string) *Server {
	s := &Server{
		router:         mux.NewRouter(),
		engine:         eng,
		prices:         prices,
		hub:            newStreamHub(),
		allowedOrigins: allowedOrigins,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/api/v1/estimates", s.handleEstimates()).Methods(http.MethodPost)
	s.router.HandleFunc("/api/v1/prices", s.handlePrices()).Methods(http.MethodGet)
	s.router.HandleFunc("/api/v1/assets", s.handleAssets()).Methods(http.MethodGet)
	s.router.HandleFunc("/api/v1/stream", s.handleStream())
	s.router.HandleFunc("/api/v1/health", s.handleHealth()).Methods(http.MethodGet)
}

// Handler returns the router wrapped with CORS for browser clients.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(s.router)
}

// estimateRequest is one calculation request. Power is a string so
// browser clients can pass locale-formatted input ("1,5") unchanged.
type estimateRequest struct {
	Power       string `json:"power"`
	Unit        string `json:"unit"`
	NetworkData string `json:"network_data"`
	Mode        string `json:"mode"`
}

func (r estimateRequest) toInput() (engine.Input, error) {
	power, err := engine.ParseLocaleNumber(r.Power)
	if err != nil {
		return engine.Input{}, err
	}
	return engine.Input{
		Power:       power,
		Unit:        hashUnit(r.Unit),
		NetworkData: r.NetworkData,
		Mode:        domain.ParseDisplayMode(r.Mode),
	}, nil
}

func (s *Server) handleEstimates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req estimateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, errCodeInvalidInput, "malformed request body")
			return
		}

		in, err := req.toInput()
		if err != nil {
			// Non-numeric power is the engine's no-power state, not a
			// transport failure.
			in = engine.Input{NetworkData: req.NetworkData, Mode: domain.ParseDisplayMode(req.Mode)}
		}

		sess := domain.NewSession()
		report := s.engine.Compute(sess, in, s.prices.Snapshot())
		writeJSON(w, http.StatusOK, report)
	}
}

func (s *Server) handlePrices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.prices.Snapshot())
	}
}

func (s *Server) handleAssets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.Assets())
	}
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := s.prices.Snapshot()
		writeJSON(w, http.StatusOK, map[string]any{
			"status":             "ok",
			"priced_assets":      len(snap.USD),
			"prices_updated_um":  snap.UpdatedAtUnixM,
			"stream_subscribers": s.hub.count(),
		})
	}
}
