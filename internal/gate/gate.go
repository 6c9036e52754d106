// Package gate maps (role, display state, admin flag) to the set of
// operations the client may legally attempt. The ledger re-validates
// everything; the gate exists so the client never submits a call it
// already knows will fail.
package gate

import (
	"github.com/chokiwild/ChainFund-Dapp/internal/model"
)

// Action is a mutating operation the client can submit.
type Action string

const (
	ActionContribute     Action = "contribute"
	ActionWithdraw       Action = "withdraw"
	ActionRefund         Action = "refund"
	ActionClaimRefund    Action = "claim_refund"
	ActionCreateCampaign Action = "create_campaign"
	ActionSetMinter      Action = "set_minter"
	ActionDeployFactory  Action = "deploy_factory"
)

// CampaignActions returns the mutating actions permitted on a single
// campaign for the given role and display state. Guests get nothing:
// they must connect first.
func CampaignActions(role model.Role, display model.DisplayState) []Action {
	if role == model.RoleGuest {
		return nil
	}

	switch display {
	case model.DisplayActive:
		return []Action{ActionContribute}
	case model.DisplayExpiredPending:
		return []Action{ActionRefund}
	case model.DisplayFunded:
		if role == model.RoleOwner {
			return []Action{ActionWithdraw}
		}
		return nil
	case model.DisplayFailed:
		return []Action{ActionClaimRefund}
	default:
		return nil
	}
}

// PlatformActions returns the platform-wide actions available to the
// session. Admin-only actions are withheld, not merely hidden, when the
// connected identity is not the ledger admin.
func PlatformActions(connected, isLedgerAdmin bool) []Action {
	if !connected {
		return nil
	}
	actions := []Action{ActionCreateCampaign}
	if isLedgerAdmin {
		actions = append(actions, ActionSetMinter, ActionDeployFactory)
	}
	return actions
}

// Allows reports whether a campaign-scoped action is permitted.
func Allows(role model.Role, display model.DisplayState, action Action) bool {
	for _, allowed := range CampaignActions(role, display) {
		if allowed == action {
			return true
		}
	}
	return false
}

// AllowsPlatform reports whether a platform-wide action is permitted.
func AllowsPlatform(connected, isLedgerAdmin bool, action Action) bool {
	for _, allowed := range PlatformActions(connected, isLedgerAdmin) {
		if allowed == action {
			return true
		}
	}
	return false
}
