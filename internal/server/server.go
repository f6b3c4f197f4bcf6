package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"hostel-assistant-backend/internal/assistant"
	"hostel-assistant-backend/internal/config"
	"hostel-assistant-backend/internal/metrics"
	"hostel-assistant-backend/internal/store"
	"hostel-assistant-backend/internal/types"
	"hostel-assistant-backend/web"
)

// contextSentinel is the reserved message the page sends to hydrate its
// menus, notices and FAQs without a model round-trip.
const contextSentinel = "__context__"

// IntentResolver classifies a message against the hostel context.
type IntentResolver interface {
	Resolve(ctx context.Context, message string, hostelCtx assistant.Context) assistant.IntentResult
}

// TicketCreator decides whether a resolved result opens a complaint ticket.
type TicketCreator interface {
	MaybeCreateTicket(ctx context.Context, result assistant.IntentResult, profile assistant.UserProfile) (assistant.IntentResult, error)
}

// ComplaintLister serves the complaints listing endpoint.
type ComplaintLister interface {
	ListComplaints(ctx context.Context, f store.ComplaintFilter) ([]store.Complaint, error)
}

type Server struct {
	router     *chi.Mux
	cfg        config.Config
	contexts   *assistant.ContextBuilder
	resolver   IntentResolver
	tickets    TicketCreator
	complaints ComplaintLister
}

func New(cfg config.Config, contexts *assistant.ContextBuilder, resolver IntentResolver, tickets TicketCreator, complaints ComplaintLister) *Server {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s := &Server{
		router:     r,
		cfg:        cfg,
		contexts:   contexts,
		resolver:   resolver,
		tickets:    tickets,
		complaints: complaints,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/chat", s.handleChat)
	s.router.Get("/api/complaints", s.handleComplaints)
	s.router.Handle("/metrics", promhttp.Handler())
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(web.IndexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// A missing or malformed message flows through the normal pipeline
		// as an empty string; the chat path never rejects input.
		req = types.ChatRequest{}
	}
	message := strings.TrimSpace(req.Message)
	sid := getOrCreateSessionID(r, w)

	hostelCtx, err := s.contexts.Build(r.Context(), req.User)
	if err != nil {
		log.Error().Err(err).Str("session", sid).Msg("context build failed")
		s.writeError(w, http.StatusInternalServerError, "failed to load hostel data")
		return
	}

	if message == contextSentinel {
		metrics.ContextHydrations.Inc()
		s.writeJSON(w, types.ContextResponse{Context: hostelCtx})
		return
	}

	metrics.ChatRequests.Inc()
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	result := s.resolver.Resolve(ctx, message, hostelCtx)

	result, err = s.tickets.MaybeCreateTicket(r.Context(), result, req.User)
	if err != nil {
		log.Error().Err(err).Str("session", sid).Msg("ticket creation failed")
		s.writeError(w, http.StatusInternalServerError, "failed to register complaint")
		return
	}
	if result.TicketID != 0 {
		metrics.TicketsCreated.Inc()
		log.Info().Int("ticket", result.TicketID).Str("session", sid).Msg("complaint ticket created")
	}

	s.writeJSON(w, result)
}

func (s *Server) handleComplaints(w http.ResponseWriter, r *http.Request) {
	filter := store.ComplaintFilter{
		Contact: r.URL.Query().Get("contact"),
		Room:    r.URL.Query().Get("room"),
	}
	complaints, err := s.complaints.ListComplaints(r.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("complaint listing failed")
		s.writeError(w, http.StatusInternalServerError, "failed to list complaints")
		return
	}
	s.writeJSON(w, complaints)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg})
}
