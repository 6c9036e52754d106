// Package registry pulls the authoritative campaign set from the
// factory. Loads are all-or-nothing: a failed pass never surfaces a
// partial list.
package registry

import (
	"context"

	"github.com/chokiwild/ChainFund-Dapp/internal/errs"
	"github.com/chokiwild/ChainFund-Dapp/internal/ethereum"
	"github.com/chokiwild/ChainFund-Dapp/internal/logger"
	"github.com/chokiwild/ChainFund-Dapp/internal/model"
	"github.com/ethereum/go-ethereum/common"
)

// Reader loads campaign records through the gateway. It holds no cache:
// every Load re-reads everything from the ledger.
type Reader struct {
	gw ethereum.Gateway
}

// NewReader creates a registry reader.
func NewReader(gw ethereum.Gateway) *Reader {
	return &Reader{gw: gw}
}

// Load returns ordered records for every ordinal 0..count-1 reported by
// the given factory, silently skipping tombstoned slots. Any read
// failure yields an empty result classified RegistryUnavailable so the
// caller never reconciles against a torn view.
func (r *Reader) Load(ctx context.Context, factory common.Address) ([]model.CampaignRecord, error) {
	count, err := r.gw.GetCampaignsCount(ctx, factory)
	if err != nil {
		logger.Error("Registry load failed reading campaign count: %v", err)
		return nil, errs.Wrap(errs.KindRegistryUnavailable, "load_campaigns", err)
	}

	records := make([]model.CampaignRecord, 0, count)
	for id := uint64(0); id < count; id++ {
		entry, err := r.gw.GetCampaign(ctx, factory, id)
		if err != nil {
			logger.Error("Registry load failed reading campaign %d: %v", id, err)
			return nil, errs.Wrap(errs.KindRegistryUnavailable, "load_campaigns", err)
		}
		if !entry.Exists {
			continue
		}

		total, err := r.gw.TotalContributed(ctx, entry.Address)
		if err != nil {
			logger.Error("Registry load failed reading contributions of campaign %d: %v", id, err)
			return nil, errs.Wrap(errs.KindRegistryUnavailable, "load_campaigns", err)
		}

		rawState, err := r.gw.CampaignState(ctx, entry.Address)
		if err != nil {
			logger.Error("Registry load failed reading state of campaign %d: %v", id, err)
			return nil, errs.Wrap(errs.KindRegistryUnavailable, "load_campaigns", err)
		}

		records = append(records, model.CampaignRecord{
			Id:               id,
			Address:          entry.Address,
			Owner:            entry.Owner,
			Goal:             entry.Goal,
			TotalContributed: total,
			Deadline:         entry.Deadline.Uint64(),
			RawState:         model.RawState(rawState),
		})
	}

	logger.Debug("Registry load completed: %d campaigns (%d ordinals)", len(records), count)
	return records, nil
}
