package handler

import (
	"net/http"

	"github.com/chokiwild/ChainFund-Dapp/internal/governance"
	"github.com/chokiwild/ChainFund-Dapp/internal/session"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the privileged platform operations.
type AdminHandler struct {
	gov     *governance.Governance
	store   *session.Store
	factory *session.FactoryPointer
}

// NewAdminHandler creates the admin handler.
func NewAdminHandler(gov *governance.Governance, store *session.Store, factory *session.FactoryPointer) *AdminHandler {
	return &AdminHandler{gov: gov, store: store, factory: factory}
}

// GetAdminInfo returns the admin panel data: admin address and the
// active factory pointer.
func (h *AdminHandler) GetAdminInfo(c *gin.Context) {
	ident := h.store.Identity()
	SuccessResponse(c, http.StatusOK, "admin info", gin.H{
		"admin_address":   ident.AdminAddress.Hex(),
		"active_factory":  h.factory.Get().Hex(),
		"is_ledger_admin": ident.IsLedgerAdmin,
	})
}

// SetMinter rotates the reward token's minter.
func (h *AdminHandler) SetMinter(c *gin.Context) {
	var req SetMinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.gov.RotateMinter(c.Request.Context(), req.Address); err != nil {
		ClassifiedErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "minter rotated", gin.H{
		"minter": req.Address,
	})
}

// RedeployFactory runs the factory redeployment workflow. A partial
// failure response names the orphaned factory address for the operator.
func (h *AdminHandler) RedeployFactory(c *gin.Context) {
	newFactory, err := h.gov.RedeployFactory(c.Request.Context())
	if err != nil {
		ClassifiedErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "factory redeployed", gin.H{
		"active_factory": newFactory.Hex(),
	})
}
