// Package governance implements the two privileged platform operations:
// reward-token minter rotation and factory redeployment. Both must keep
// the cross-contract invariant that the token's minter address equals
// the active factory address whenever they complete successfully.
package governance

import (
	"context"

	"github.com/chokiwild/ChainFund-Dapp/internal/coordinator"
	"github.com/chokiwild/ChainFund-Dapp/internal/errs"
	"github.com/chokiwild/ChainFund-Dapp/internal/ethereum"
	"github.com/chokiwild/ChainFund-Dapp/internal/gate"
	"github.com/chokiwild/ChainFund-Dapp/internal/logger"
	"github.com/chokiwild/ChainFund-Dapp/internal/session"
	"github.com/ethereum/go-ethereum/common"
)

// Governance runs the admin-only workflows. It is the single writer of
// the active factory pointer.
type Governance struct {
	gw      ethereum.Gateway
	coord   *coordinator.Coordinator
	store   *session.Store
	factory *session.FactoryPointer
}

// New creates the governance component.
func New(gw ethereum.Gateway, coord *coordinator.Coordinator, store *session.Store, factory *session.FactoryPointer) *Governance {
	return &Governance{
		gw:      gw,
		coord:   coord,
		store:   store,
		factory: factory,
	}
}

// RotateMinter points the reward token's minter at a new address. The
// address must be syntactically valid before anything is submitted.
func (g *Governance) RotateMinter(ctx context.Context, newAddress string) error {
	const op = "set_minter"

	if err := g.authorize(op, gate.ActionSetMinter); err != nil {
		return err
	}
	if !common.IsHexAddress(newAddress) {
		return errs.New(errs.KindInvalidAddress, op, "not a valid address: %q", newAddress)
	}

	release, err := g.coord.BeginMutation(op)
	if err != nil {
		return err
	}
	defer release()

	tx, err := g.gw.SetMinter(ctx, common.HexToAddress(newAddress))
	if err != nil {
		return errs.Wrap(errs.KindTxRejected, op, err)
	}
	if _, err := g.gw.WaitMined(ctx, tx); err != nil {
		return err
	}

	logger.Info("Reward token minter rotated to %s", newAddress)
	return g.coord.Resync(ctx)
}

// RedeployFactory deploys a new factory bound to the existing reward
// token, rotates the minter to it, switches the active factory pointer
// and resynchronizes against the new factory.
//
// If any step after the deployment fails, a new minter-mismatched
// factory exists on chain while the client keeps pointing at the old
// one. That outcome is reported as PartialGovernanceFailure naming the
// orphaned address and is never retried automatically: each deployment
// attempt creates another contract instance. Campaigns registered under
// the old factory become unreachable after a successful switch; that is
// an accepted consequence of redeployment.
func (g *Governance) RedeployFactory(ctx context.Context) (common.Address, error) {
	const op = "deploy_factory"

	if err := g.authorize(op, gate.ActionDeployFactory); err != nil {
		return common.Address{}, err
	}

	release, err := g.coord.BeginMutation(op)
	if err != nil {
		return common.Address{}, err
	}
	defer release()

	// Step 1: deploy. A failure here leaves nothing orphaned.
	deployTx, err := g.gw.DeployFactory(ctx)
	if err != nil {
		if errs.KindOf(err) != "" {
			return common.Address{}, err
		}
		return common.Address{}, errs.Wrap(errs.KindTxRejected, op, err)
	}
	receipt, err := g.gw.WaitMined(ctx, deployTx)
	if err != nil {
		return common.Address{}, err
	}
	newFactory := receipt.ContractAddress
	logger.Info("Deployed new factory at %s", newFactory.Hex())

	// Step 2: rotate the minter to the new factory.
	minterTx, err := g.gw.SetMinter(ctx, newFactory)
	if err != nil {
		return newFactory, g.partialFailure(op, newFactory, err)
	}
	if _, err := g.gw.WaitMined(ctx, minterTx); err != nil {
		return newFactory, g.partialFailure(op, newFactory, err)
	}

	// Verify the invariant before switching anything client-side.
	minter, err := g.gw.Minter(ctx)
	if err != nil || minter != newFactory {
		return newFactory, g.partialFailure(op, newFactory, err)
	}

	// Step 3: switch the pointer, then reload through it. A failed
	// reload rolls the pointer back so the session keeps a consistent,
	// old-factory view.
	oldFactory := g.factory.Get()
	g.factory.Set(newFactory)
	if err := g.coord.Resync(ctx); err != nil {
		g.factory.Set(oldFactory)
		return newFactory, g.partialFailure(op, newFactory, err)
	}

	logger.Info("Active factory switched from %s to %s", oldFactory.Hex(), newFactory.Hex())
	return newFactory, nil
}

func (g *Governance) authorize(op string, action gate.Action) error {
	ident := g.store.Identity()
	if !ident.Connected() {
		return errs.New(errs.KindPreconditionFailed, op, "connect a wallet first")
	}
	if !gate.AllowsPlatform(true, ident.IsLedgerAdmin, action) {
		return errs.New(errs.KindPreconditionFailed, op, "connected identity is not the ledger admin")
	}
	return nil
}

func (g *Governance) partialFailure(op string, orphaned common.Address, cause error) error {
	logger.Error("Factory redeployment incomplete: new factory %s is orphaned (minter mismatch), manual intervention required: %v",
		orphaned.Hex(), cause)
	return &errs.Error{
		Kind: errs.KindPartialGovernanceFailure,
		Op:   op,
		Msg:  "new factory " + orphaned.Hex() + " deployed but not activated",
		Err:  cause,
	}
}
