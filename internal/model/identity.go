package model

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Role is the per-campaign role of the connected identity. It is derived
// on read and orthogonal to the platform-wide admin flag.
type Role string

const (
	RoleOwner Role = "owner"
	RoleDonor Role = "donor"
	RoleGuest Role = "guest"
)

// RoleFor derives the caller's role for a campaign. Owner comparison is
// case-insensitive on the hex form.
func RoleFor(campaign CampaignRecord, connected *common.Address) Role {
	if connected == nil {
		return RoleGuest
	}
	if strings.EqualFold(campaign.Owner.Hex(), connected.Hex()) {
		return RoleOwner
	}
	return RoleDonor
}

// IdentityContext describes the connected identity's session-scoped
// view: balances and the platform admin flag. Rebuilt from the ledger on
// every resynchronization.
type IdentityContext struct {
	ConnectedAddress   *common.Address
	EthBalance         *big.Int
	RewardTokenBalance *big.Int
	IsLedgerAdmin      bool

	// Display-only token and network metadata, loaded once on connect.
	TokenName    string
	TokenSymbol  string
	ChainId      uint64
	NetworkName  string
	AdminAddress common.Address
}

// Connected reports whether a wallet identity is attached to the session.
func (c IdentityContext) Connected() bool {
	return c.ConnectedAddress != nil
}
