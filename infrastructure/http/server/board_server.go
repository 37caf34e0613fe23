package server

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"kindwall/auth"
	"kindwall/domain"
	"kindwall/observability"
	"kindwall/repositories"
	"kindwall/services"

	"github.com/samber/lo"
)

const (
	defaultSampleCount = 10
	maxSampleCount     = 50
)

// BoardServer exposes the JSON API: message submission, random
// sampling and a debug stats endpoint.
type BoardServer struct {
	log      *slog.Logger
	gate     services.IGateService
	board    services.IBoardService
	messages repositories.IMessageRepository
	verifier auth.Verifier
	monitor  *observability.Monitor
}

func NewBoardServer(log *slog.Logger, gate services.IGateService,
	board services.IBoardService, messages repositories.IMessageRepository,
	verifier auth.Verifier, monitor *observability.Monitor) *BoardServer {
	return &BoardServer{
		log: log, gate: gate, board: board, messages: messages,
		verifier: verifier, monitor: monitor,
	}
}

// Handler builds the route table wrapped with request logging.
func (s *BoardServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/messages", s.handleSubmit)
	mux.HandleFunc("GET /api/messages", s.handleSample)
	mux.HandleFunc("GET /debug/stats", s.handleStats)
	return s.withLogging(mux)
}

type submitResponse struct {
	Accepted          bool   `json:"accepted"`
	IsPositive        bool   `json:"isPositive"`
	Reason            string `json:"reason,omitempty"`
	Error             string `json:"error,omitempty"`
	RateLimitExceeded bool   `json:"rateLimitExceeded,omitempty"`
	// Pointer so a blocked submission reports "remaining":0 explicitly
	// while other outcomes omit the field entirely.
	Remaining *int   `json:"remaining,omitempty"`
	ResetTime string `json:"resetTime,omitempty"`
}

func (s *BoardServer) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req auth.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := auth.ValidateSubmit(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var email string
	if user := s.verifier.UserFromRequest(r); user != nil {
		email = user.Email
	}

	outcome, err := s.gate.Submit(r.Context(), domain.Submission{
		Text:    req.Message,
		Country: req.CountryCode,
		Email:   email,
		IP:      clientIP(r),
	})
	if err != nil {
		s.log.Error("Submission failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch outcome.Kind {
	case domain.OutcomeAccepted:
		writeJSON(w, http.StatusCreated, submitResponse{Accepted: true, IsPositive: true})
	case domain.OutcomeInvalid:
		writeError(w, http.StatusBadRequest, outcome.Reason)
	case domain.OutcomeRateLimited:
		writeJSON(w, http.StatusTooManyRequests, submitResponse{
			Error:             "Rate limit exceeded. You can send up to 10 messages per day.",
			RateLimitExceeded: true,
			Remaining:         &outcome.Remaining,
			ResetTime:         outcome.ResetTime.UTC().Format(time.RFC3339),
		})
	case domain.OutcomeNotPositive:
		writeJSON(w, http.StatusUnprocessableEntity, submitResponse{Reason: outcome.Reason})
	case domain.OutcomeClassifierFailed:
		writeError(w, http.StatusBadGateway, "failed to process message")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type sampleMessage struct {
	Text        string `json:"text"`
	CountryCode string `json:"countryCode,omitempty"`
	Lang        string `json:"lang,omitempty"`
}

type sampleResponse struct {
	Messages       []sampleMessage `json:"messages"`
	TotalCount     int             `json:"totalCount"`
	RequestedCount int             `json:"requestedCount"`
	ReturnedCount  int             `json:"returnedCount"`
}

func (s *BoardServer) handleSample(w http.ResponseWriter, r *http.Request) {
	count := defaultSampleCount
	if param := r.URL.Query().Get("count"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil {
			writeError(w, http.StatusBadRequest, "count must be a number")
			return
		}
		count = parsed
	}
	if count < 1 || count > maxSampleCount {
		writeError(w, http.StatusBadRequest, "count must be between 1 and 50")
		return
	}

	messages, total, err := s.board.Sample(count)
	if err != nil {
		s.log.Error("Sampling failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch messages")
		return
	}

	writeJSON(w, http.StatusOK, sampleResponse{
		Messages: lo.Map(messages, func(item domain.Message, _ int) sampleMessage {
			return sampleMessage{Text: item.Text, CountryCode: item.Country, Lang: item.Lang}
		}),
		TotalCount:     total,
		RequestedCount: count,
		ReturnedCount:  len(messages),
	})
}

func (s *BoardServer) handleStats(w http.ResponseWriter, r *http.Request) {
	total, err := s.messages.Count()
	if err != nil {
		s.log.Error("Store count failed", "error", err)
		writeError(w, http.StatusInternalServerError, "store unavailable")
		return
	}
	writeJSON(w, http.StatusOK, s.monitor.Snapshot(total))
}

// clientIP prefers the first X-Forwarded-For hop, then falls back to
// the connection's remote address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
