package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"team-form-service/internal/domain"
	"team-form-service/internal/form"
	"team-form-service/internal/poller"
	"team-form-service/internal/schedule"
)

const (
	defaultN = 5
	minN     = 1
	maxN     = 20
)

// Handler wires HTTP routes to the form and schedule services.
type Handler struct {
	formSvc  *form.Service
	schedSvc *schedule.Service
	logger   *slog.Logger
	statusFn func() poller.Status
	now      func() time.Time
}

// NewHandler constructs a Handler. statusFn may be nil when the background
// refresher is disabled.
func NewHandler(formSvc *form.Service, schedSvc *schedule.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		formSvc:  formSvc,
		schedSvc: schedSvc,
		logger:   logger,
		statusFn: statusFn,
		now:      time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness; with the refresher enabled it reflects the recent
// refresh health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
		return
	}
	status := h.statusFn()
	code := nethttp.StatusOK
	if !status.IsReady() {
		code = nethttp.StatusServiceUnavailable
	}
	h.writeJSON(w, code, map[string]any{
		"ready":                status.IsReady(),
		"consecutive_failures": status.ConsecutiveFailures,
		"last_error":           status.LastError,
	})
}

// TeamForm returns last-N completed-game averages for one team.
func (h *Handler) TeamForm(w nethttp.ResponseWriter, r *nethttp.Request) {
	sport, ok := h.querySport(w, r)
	if !ok {
		return
	}
	teamID := r.URL.Query().Get("teamId")
	if teamID == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing teamId")
		return
	}

	summary, err := h.formSvc.TeamForm(r.Context(), sport, teamID, clampN(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, summary)
}

// MatchupForm returns last-N form for two teams of the same sport.
func (h *Handler) MatchupForm(w nethttp.ResponseWriter, r *nethttp.Request) {
	sport, ok := h.querySport(w, r)
	if !ok {
		return
	}
	teamAID := r.URL.Query().Get("team1Id")
	teamBID := r.URL.Query().Get("team2Id")
	if teamAID == "" || teamBID == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing team1Id or team2Id")
		return
	}

	matchup, err := h.formSvc.MatchupForm(r.Context(), sport, teamAID, teamBID, clampN(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, matchup)
}

// Schedule returns the day's events for a sport.
func (h *Handler) Schedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	sport, ok := h.routeSport(w, r)
	if !ok {
		return
	}

	events, err := h.schedSvc.Schedule(r.Context(), sport, r.URL.Query().Get("date"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, events)
}

// Projections returns model output for the day's events.
func (h *Handler) Projections(w nethttp.ResponseWriter, r *nethttp.Request) {
	sport, ok := h.routeSport(w, r)
	if !ok {
		return
	}
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}

	rows, err := h.schedSvc.Projections(r.Context(), sport, r.URL.Query().Get("date"), scope)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, rows)
}

// Slate returns schedule rows joined with projections, markets, and edges.
func (h *Handler) Slate(w nethttp.ResponseWriter, r *nethttp.Request) {
	sport, ok := h.routeSport(w, r)
	if !ok {
		return
	}
	scope, ok := h.scope(w, r)
	if !ok {
		return
	}

	rows, err := h.schedSvc.Slate(r.Context(), sport, r.URL.Query().Get("date"), scope)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, rows)
}

func (h *Handler) querySport(w nethttp.ResponseWriter, r *nethttp.Request) (domain.Sport, bool) {
	return h.parseSport(w, r.URL.Query().Get("sport"))
}

func (h *Handler) routeSport(w nethttp.ResponseWriter, r *nethttp.Request) (domain.Sport, bool) {
	return h.parseSport(w, chi.URLParam(r, "sport"))
}

func (h *Handler) parseSport(w nethttp.ResponseWriter, raw string) (domain.Sport, bool) {
	sport, err := domain.ParseSport(raw)
	if err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "unsupported sport: "+raw)
		return "", false
	}
	return sport, true
}

func (h *Handler) scope(w nethttp.ResponseWriter, r *nethttp.Request) (string, bool) {
	scope := r.URL.Query().Get("scope")
	if scope == "" {
		scope = "1H"
	}
	if scope != "1H" && scope != "FG" {
		h.writeError(w, nethttp.StatusBadRequest, "scope must be '1H' or 'FG'")
		return "", false
	}
	return scope, true
}

// clampN parses the n query param, defaulting to 5 and clamping to [1, 20].
func clampN(r *nethttp.Request) int {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return defaultN
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultN
	}
	if n < minN {
		return minN
	}
	if n > maxN {
		return maxN
	}
	return n
}

func (h *Handler) writeServiceError(w nethttp.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrUnsupportedSport) {
		h.writeError(w, nethttp.StatusBadRequest, err.Error())
		return
	}
	h.writeError(w, nethttp.StatusBadGateway, "upstream unavailable")
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
