package handler

import (
	"net/http"
	"time"

	"github.com/chokiwild/ChainFund-Dapp/internal/coordinator"
	"github.com/chokiwild/ChainFund-Dapp/internal/errs"
	"github.com/chokiwild/ChainFund-Dapp/internal/session"
	"github.com/gin-gonic/gin"
)

// SessionHandler serves wallet connection and the session view.
type SessionHandler struct {
	coord   *coordinator.Coordinator
	store   *session.Store
	factory *session.FactoryPointer
}

// NewSessionHandler creates the session handler.
func NewSessionHandler(coord *coordinator.Coordinator, store *session.Store, factory *session.FactoryPointer) *SessionHandler {
	return &SessionHandler{coord: coord, store: store, factory: factory}
}

// Connect attaches the configured wallet identity and performs the
// initial full load. A failed registry load is recoverable: the wallet
// stays connected, so the response carries the session view (with an
// empty campaign list) for the client to retry from.
func (h *SessionHandler) Connect(c *gin.Context) {
	snapshot, err := h.coord.Connect(c.Request.Context())
	if err != nil {
		if errs.IsKind(err, errs.KindRegistryUnavailable) {
			ClassifiedErrorResponseWithData(c, err,
				renderSession(snapshot.Identity, h.factory.Get(), snapshot.LoadedAt))
			return
		}
		ClassifiedErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "wallet connected",
		renderSession(snapshot.Identity, h.factory.Get(), snapshot.LoadedAt))
}

// GetSession returns the current session context.
func (h *SessionHandler) GetSession(c *gin.Context) {
	snapshot := h.store.Snapshot(time.Now())
	SuccessResponse(c, http.StatusOK, "session",
		renderSession(snapshot.Identity, h.factory.Get(), snapshot.LoadedAt))
}
