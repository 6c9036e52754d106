package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// RawState is the authoritative three-state campaign enum stored by the
// ledger. The client never writes it.
type RawState uint8

const (
	RawStateActive RawState = iota
	RawStateFunded
	RawStateFailed
)

// DisplayState is the richer, time-aware classification shown to users.
// ExpiredPending is client-only: the ledger keeps such a campaign Active
// until a refund-triggering call is confirmed.
type DisplayState uint8

const (
	DisplayActive DisplayState = iota
	DisplayFunded
	DisplayFailed
	DisplayExpiredPending
)

// Label returns the presentation label. Authorization decisions always
// use the enum, never this string.
func (s DisplayState) Label() string {
	switch s {
	case DisplayActive:
		return "Active"
	case DisplayFunded:
		return "Funded"
	case DisplayFailed:
		return "Failed"
	case DisplayExpiredPending:
		return "Deadline expired"
	default:
		return "Unknown"
	}
}

// CampaignRecord is an immutable snapshot of a campaign as fetched from
// the ledger. Only TotalContributed and RawState ever change between
// snapshots, and only through confirmed ledger transactions.
type CampaignRecord struct {
	Id               uint64
	Address          common.Address
	Owner            common.Address
	Goal             *big.Int
	TotalContributed *big.Int
	Deadline         uint64 // unix seconds, fixed at creation
	RawState         RawState
}

// DerivedCampaignView is a CampaignRecord plus the time-aware display
// classification. Computed on read, never persisted.
type DerivedCampaignView struct {
	CampaignRecord
	DisplayState     DisplayState
	IsDeadlinePassed bool
}
