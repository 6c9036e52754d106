package state

import (
	"math/big"
	"testing"
	"time"

	"github.com/chokiwild/ChainFund-Dapp/internal/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(raw model.RawState, deadline time.Time) model.CampaignRecord {
	return model.CampaignRecord{
		Id:               7,
		Address:          common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Owner:            common.HexToAddress("0x2222222222222222222222222222222222222222"),
		Goal:             big.NewInt(1_000_000_000_000_000_000),
		TotalContributed: big.NewInt(400_000_000_000_000_000),
		Deadline:         uint64(deadline.Unix()),
		RawState:         raw,
	}
}

func TestDeriveBeforeDeadline(t *testing.T) {
	deadline := time.Now().Add(time.Hour)

	tests := []struct {
		raw  model.RawState
		want model.DisplayState
	}{
		{model.RawStateActive, model.DisplayActive},
		{model.RawStateFunded, model.DisplayFunded},
		{model.RawStateFailed, model.DisplayFailed},
	}

	for _, tt := range tests {
		view := Derive(record(tt.raw, deadline), deadline.Add(-time.Hour))
		assert.Equal(t, tt.want, view.DisplayState)
		assert.False(t, view.IsDeadlinePassed)
	}
}

func TestDeriveAfterDeadline(t *testing.T) {
	deadline := time.Now()

	tests := []struct {
		raw  model.RawState
		want model.DisplayState
	}{
		// Only the ledger's Active becomes the client-only annotation.
		{model.RawStateActive, model.DisplayExpiredPending},
		{model.RawStateFunded, model.DisplayFunded},
		{model.RawStateFailed, model.DisplayFailed},
	}

	for _, tt := range tests {
		view := Derive(record(tt.raw, deadline), deadline.Add(time.Second))
		assert.Equal(t, tt.want, view.DisplayState)
		assert.True(t, view.IsDeadlinePassed)
	}
}

func TestDeriveDeadlineBoundaryIsInclusive(t *testing.T) {
	deadline := time.Unix(1_700_000_000, 0)

	view := Derive(record(model.RawStateActive, deadline), deadline)
	assert.Equal(t, model.DisplayExpiredPending, view.DisplayState)
	assert.True(t, view.IsDeadlinePassed)

	view = Derive(record(model.RawStateActive, deadline), deadline.Add(-time.Second))
	assert.Equal(t, model.DisplayActive, view.DisplayState)
}

func TestDeriveIsIdempotent(t *testing.T) {
	deadline := time.Unix(1_700_000_000, 0)
	now := deadline.Add(time.Minute)
	r := record(model.RawStateActive, deadline)

	first := Derive(r, now)
	second := Derive(r, now)
	assert.Equal(t, first, second)
}

func TestDeriveKeepsRecordUntouched(t *testing.T) {
	deadline := time.Unix(1_700_000_000, 0)
	r := record(model.RawStateActive, deadline)

	view := Derive(r, deadline.Add(time.Second))
	assert.Equal(t, r, view.CampaignRecord)
	assert.Equal(t, model.RawStateActive, view.RawState)
}

func TestDisplayLabels(t *testing.T) {
	assert.Equal(t, "Active", model.DisplayActive.Label())
	assert.Equal(t, "Funded", model.DisplayFunded.Label())
	assert.Equal(t, "Failed", model.DisplayFailed.Label())
	assert.Equal(t, "Deadline expired", model.DisplayExpiredPending.Label())
}

func TestDeriveAllPreservesOrder(t *testing.T) {
	deadline := time.Now().Add(time.Hour)
	records := []model.CampaignRecord{
		record(model.RawStateActive, deadline),
		record(model.RawStateFunded, deadline),
	}
	records[1].Id = 8

	views := DeriveAll(records, time.Now())
	require.Len(t, views, 2)
	assert.Equal(t, uint64(7), views[0].Id)
	assert.Equal(t, uint64(8), views[1].Id)
}

func TestExpiredCampaignScenario(t *testing.T) {
	// goal=1.0, totalContributed=0.4, rawState=Active, evaluated one
	// second past the deadline.
	deadline := time.Unix(1_700_000_000, 0)
	r := record(model.RawStateActive, deadline)

	view := Derive(r, deadline.Add(time.Second))
	assert.Equal(t, model.DisplayExpiredPending, view.DisplayState)
	assert.Equal(t, "Deadline expired", view.DisplayState.Label())
}
