package session

import (
	"math/big"
	"testing"
	"time"

	"github.com/chokiwild/ChainFund-Dapp/internal/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeRecord(id uint64, deadline time.Time) model.CampaignRecord {
	return model.CampaignRecord{
		Id:               id,
		Address:          common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Owner:            common.HexToAddress("0x2222222222222222222222222222222222222222"),
		Goal:             big.NewInt(1_000_000_000_000_000_000),
		TotalContributed: big.NewInt(0),
		Deadline:         uint64(deadline.Unix()),
		RawState:         model.RawStateActive,
	}
}

// TestReadsDeriveAgainstCallerClock stores a record once and reads it at
// instants on both sides of the deadline: the same load must report
// Active before and ExpiredPending after, with no reload in between.
func TestReadsDeriveAgainstCallerClock(t *testing.T) {
	store := NewStore()

	loadedAt := time.Now()
	deadline := loadedAt.Add(time.Hour)
	store.Replace([]model.CampaignRecord{activeRecord(0, deadline)}, loadedAt)

	view, ok := store.Find(0, deadline.Add(-time.Second))
	require.True(t, ok)
	assert.Equal(t, model.DisplayActive, view.DisplayState)
	assert.False(t, view.IsDeadlinePassed)

	view, ok = store.Find(0, deadline)
	require.True(t, ok)
	assert.Equal(t, model.DisplayExpiredPending, view.DisplayState)
	assert.True(t, view.IsDeadlinePassed)

	before := store.Snapshot(deadline.Add(-time.Second))
	after := store.Snapshot(deadline.Add(time.Second))
	require.Len(t, before.Campaigns, 1)
	require.Len(t, after.Campaigns, 1)
	assert.Equal(t, model.DisplayActive, before.Campaigns[0].DisplayState)
	assert.Equal(t, model.DisplayExpiredPending, after.Campaigns[0].DisplayState)
}

func TestReplaceSwapsWholeList(t *testing.T) {
	store := NewStore()

	loadedAt := time.Now()
	deadline := loadedAt.Add(time.Hour)
	store.Replace([]model.CampaignRecord{activeRecord(0, deadline), activeRecord(1, deadline)}, loadedAt)
	require.Len(t, store.Snapshot(loadedAt).Campaigns, 2)

	reload := loadedAt.Add(time.Minute)
	store.Replace([]model.CampaignRecord{activeRecord(3, deadline)}, reload)

	snapshot := store.Snapshot(reload)
	require.Len(t, snapshot.Campaigns, 1)
	assert.Equal(t, uint64(3), snapshot.Campaigns[0].Id)
	assert.Equal(t, reload, snapshot.LoadedAt)

	_, ok := store.Find(0, reload)
	assert.False(t, ok)
}

func TestFindUnknownOrdinal(t *testing.T) {
	store := NewStore()
	_, ok := store.Find(7, time.Now())
	assert.False(t, ok)
}
