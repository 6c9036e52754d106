package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/chokiwild/ChainFund-Dapp/internal/coordinator"
	"github.com/chokiwild/ChainFund-Dapp/internal/session"
	"github.com/gin-gonic/gin"
)

// CampaignHandler serves campaign listing and mutating actions. All
// authorization and validation lives behind the coordinator; handlers
// are pure I/O glue.
type CampaignHandler struct {
	coord *coordinator.Coordinator
	store *session.Store
}

// NewCampaignHandler creates the campaign handler.
func NewCampaignHandler(coord *coordinator.Coordinator, store *session.Store) *CampaignHandler {
	return &CampaignHandler{coord: coord, store: store}
}

// GetCampaigns returns the latest completed load, display states and
// per-campaign actions derived at request time for the connected
// identity.
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	snapshot := h.store.Snapshot(time.Now())

	views := make([]CampaignView, 0, len(snapshot.Campaigns))
	for _, view := range snapshot.Campaigns {
		views = append(views, renderCampaign(view, snapshot.Identity.ConnectedAddress))
	}

	SuccessResponse(c, http.StatusOK, "campaigns", gin.H{
		"campaigns": views,
		"loaded_at": snapshot.LoadedAt,
	})
}

// CreateCampaign launches a new campaign.
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.coord.CreateCampaign(c.Request.Context(), req.Goal, req.Duration); err != nil {
		ClassifiedErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "campaign created", nil)
}

// Contribute sends ether to a campaign.
func (h *CampaignHandler) Contribute(c *gin.Context) {
	id, ok := h.campaignId(c)
	if !ok {
		return
	}

	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.coord.Contribute(c.Request.Context(), id, req.Amount); err != nil {
		ClassifiedErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "contribution confirmed", nil)
}

// Withdraw collects the funds of a funded campaign.
func (h *CampaignHandler) Withdraw(c *gin.Context) {
	id, ok := h.campaignId(c)
	if !ok {
		return
	}

	if err := h.coord.Withdraw(c.Request.Context(), id); err != nil {
		ClassifiedErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "withdraw confirmed", nil)
}

// Refund requests a refund on an expired campaign.
func (h *CampaignHandler) Refund(c *gin.Context) {
	id, ok := h.campaignId(c)
	if !ok {
		return
	}

	if err := h.coord.Refund(c.Request.Context(), id); err != nil {
		ClassifiedErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "refund confirmed", nil)
}

// ClaimRefund recovers a contribution from a failed campaign.
func (h *CampaignHandler) ClaimRefund(c *gin.Context) {
	id, ok := h.campaignId(c)
	if !ok {
		return
	}

	if err := h.coord.ClaimRefund(c.Request.Context(), id); err != nil {
		ClassifiedErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "refund claimed", nil)
}

func (h *CampaignHandler) campaignId(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid campaign id")
		return 0, false
	}
	return id, true
}
