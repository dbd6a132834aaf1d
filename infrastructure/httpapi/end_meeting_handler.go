package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"huddle/auth"
	"huddle/domain"
	huddleerrors "huddle/errors"
	"huddle/services"
)

// EndMeetingHandler is the HTTP transport for the endMeeting mutation:
// POST /mutations/endMeeting with a bearer token and {"teamId": ...}.
type EndMeetingHandler struct {
	finalizer services.IMeetingFinalizer
	log       *slog.Logger
}

func NewEndMeetingHandler(finalizer services.IMeetingFinalizer, log *slog.Logger) *EndMeetingHandler {
	return &EndMeetingHandler{finalizer: finalizer, log: log}
}

type endMeetingRequest struct {
	TeamID string `json:"teamId"`
}

type endMeetingResponse struct {
	Team domain.Team `json:"team"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *EndMeetingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	claims, err := bearerClaims(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid or missing token")
		return
	}

	var req endMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TeamID == "" {
		writeError(w, http.StatusBadRequest, "teamId is required")
		return
	}

	if err := auth.RequireTeamMember(claims, req.TeamID); err != nil {
		writeError(w, http.StatusForbidden, err.Error())
		return
	}

	team, err := h.finalizer.EndMeeting(r.Context(), services.EndMeetingCommand{
		TeamID: req.TeamID,
		UserID: claims.UserID,
		// The client's connection id, so subscribers can skip their own echo.
		MutatorID:   r.Header.Get("X-Connection-Id"),
		OperationID: uuid.New().String(),
	})
	if err != nil {
		h.respondError(w, req.TeamID, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(endMeetingResponse{Team: team})
}

func (h *EndMeetingHandler) respondError(w http.ResponseWriter, teamID string, err error) {
	switch {
	case errors.Is(err, huddleerrors.ErrNoActiveMeeting):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, huddleerrors.ErrMeetingAlreadyEnded):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, huddleerrors.ErrNotTeamMember):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		h.log.With("error", err, "teamId", teamID).Error("endMeeting mutation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func bearerClaims(r *http.Request) (*auth.CustomClaims, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, huddleerrors.ErrNotTeamMember
	}
	return auth.ValidateToken(token)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}
