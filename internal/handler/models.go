package handler

import (
	"time"

	"github.com/chokiwild/ChainFund-Dapp/internal/amount"
	"github.com/chokiwild/ChainFund-Dapp/internal/gate"
	"github.com/chokiwild/ChainFund-Dapp/internal/model"
	"github.com/ethereum/go-ethereum/common"
)

// CampaignView is the rendered form of one campaign for the connected
// identity, monetary amounts formatted as decimal ether strings.
type CampaignView struct {
	Id               uint64        `json:"id"`
	Address          string        `json:"address"`
	Owner            string        `json:"owner"`
	Goal             string        `json:"goal"`
	TotalContributed string        `json:"total_contributed"`
	Deadline         uint64        `json:"deadline"`
	State            string        `json:"state"`
	IsDeadlinePassed bool          `json:"is_deadline_passed"`
	Role             string        `json:"role"`
	AllowedActions   []gate.Action `json:"allowed_actions"`
}

// SessionView is the rendered session context.
type SessionView struct {
	ConnectedAddress   string        `json:"connected_address,omitempty"`
	EthBalance         string        `json:"eth_balance"`
	RewardTokenBalance string        `json:"reward_token_balance"`
	IsLedgerAdmin      bool          `json:"is_ledger_admin"`
	TokenName          string        `json:"token_name,omitempty"`
	TokenSymbol        string        `json:"token_symbol,omitempty"`
	ChainId            uint64        `json:"chain_id,omitempty"`
	NetworkName        string        `json:"network_name,omitempty"`
	AdminAddress       string        `json:"admin_address,omitempty"`
	ActiveFactory      string        `json:"active_factory"`
	PlatformActions    []gate.Action `json:"platform_actions"`
	LoadedAt           time.Time     `json:"loaded_at"`
}

// CreateCampaignRequest carries the create form: decimal ether goal and
// whole-second duration, both as strings (parsed exactly server-side).
type CreateCampaignRequest struct {
	Goal     string `json:"goal" binding:"required"`
	Duration string `json:"duration" binding:"required"`
}

// ContributeRequest carries a decimal ether amount string.
type ContributeRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// SetMinterRequest carries the new minter address.
type SetMinterRequest struct {
	Address string `json:"address" binding:"required"`
}

func renderCampaign(view model.DerivedCampaignView, connected *common.Address) CampaignView {
	role := model.RoleFor(view.CampaignRecord, connected)
	return CampaignView{
		Id:               view.Id,
		Address:          view.Address.Hex(),
		Owner:            view.Owner.Hex(),
		Goal:             amount.FormatEther(view.Goal),
		TotalContributed: amount.FormatEther(view.TotalContributed),
		Deadline:         view.Deadline,
		State:            view.DisplayState.Label(),
		IsDeadlinePassed: view.IsDeadlinePassed,
		Role:             string(role),
		AllowedActions:   gate.CampaignActions(role, view.DisplayState),
	}
}

func renderSession(ident model.IdentityContext, activeFactory common.Address, loadedAt time.Time) SessionView {
	view := SessionView{
		EthBalance:         amount.FormatEther(ident.EthBalance),
		RewardTokenBalance: amount.FormatEther(ident.RewardTokenBalance),
		IsLedgerAdmin:      ident.IsLedgerAdmin,
		TokenName:          ident.TokenName,
		TokenSymbol:        ident.TokenSymbol,
		ChainId:            ident.ChainId,
		NetworkName:        ident.NetworkName,
		ActiveFactory:      activeFactory.Hex(),
		PlatformActions:    gate.PlatformActions(ident.Connected(), ident.IsLedgerAdmin),
		LoadedAt:           loadedAt,
	}
	if ident.Connected() {
		view.ConnectedAddress = ident.ConnectedAddress.Hex()
		view.AdminAddress = ident.AdminAddress.Hex()
	}
	return view
}
