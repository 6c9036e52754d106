// Package state derives the time-aware display classification from raw
// ledger campaign records. Pure computation: no I/O, no hidden state.
package state

import (
	"time"

	"github.com/chokiwild/ChainFund-Dapp/internal/model"
)

// Derive computes the display view of a campaign at the given instant.
// ExpiredPending is reported iff the ledger still says Active but the
// deadline has passed; the ledger itself only moves Active to Failed
// after a refund-triggering call is confirmed.
func Derive(record model.CampaignRecord, now time.Time) model.DerivedCampaignView {
	deadlinePassed := uint64(now.Unix()) >= record.Deadline

	display := displayFor(record.RawState)
	if record.RawState == model.RawStateActive && deadlinePassed {
		display = model.DisplayExpiredPending
	}

	return model.DerivedCampaignView{
		CampaignRecord:   record,
		DisplayState:     display,
		IsDeadlinePassed: deadlinePassed,
	}
}

// DeriveAll derives views for a whole registry load, preserving order.
func DeriveAll(records []model.CampaignRecord, now time.Time) []model.DerivedCampaignView {
	views := make([]model.DerivedCampaignView, 0, len(records))
	for _, record := range records {
		views = append(views, Derive(record, now))
	}
	return views
}

func displayFor(raw model.RawState) model.DisplayState {
	switch raw {
	case model.RawStateFunded:
		return model.DisplayFunded
	case model.RawStateFailed:
		return model.DisplayFailed
	default:
		return model.DisplayActive
	}
}
