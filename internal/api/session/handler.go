package session

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FACorreiaa/go-trip-itinerary/internal/api"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	CreateSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	store  *Store
	logger *slog.Logger
}

func NewHandlerImpl(store *Store, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{store: store, logger: logger}
}

type CreateResponse struct {
	SessionID string `json:"session_id"`
}

// CreateSession godoc
// @Summary      Start a trip session
// @Tags         Sessions
// @Produce      json
// @Success      201 {object} CreateResponse
// @Router       /sessions [post]
func (h *HandlerImpl) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Create(r.Context())
	api.WriteJSONResponse(w, r, http.StatusCreated, CreateResponse{SessionID: sess.ID})
}

// GetSession godoc
// @Summary      Session state
// @Description  Current plan, transcript and whether a generation or chat request is running.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} Snapshot
// @Failure      404 {object} types.Response
// @Router       /sessions/{sessionID} [get]
func (h *HandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, sess.Snapshot())
}
