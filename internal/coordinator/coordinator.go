// Package coordinator submits mutating ledger operations and keeps the
// session view consistent afterwards. Every confirmed write is followed
// by a full resynchronization from the ledger: the registry is reloaded
// and both balances recomputed, discarding all prior in-memory values.
// Nothing is patched speculatively.
package coordinator

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/chokiwild/ChainFund-Dapp/internal/amount"
	"github.com/chokiwild/ChainFund-Dapp/internal/errs"
	"github.com/chokiwild/ChainFund-Dapp/internal/ethereum"
	"github.com/chokiwild/ChainFund-Dapp/internal/gate"
	"github.com/chokiwild/ChainFund-Dapp/internal/logger"
	"github.com/chokiwild/ChainFund-Dapp/internal/model"
	"github.com/chokiwild/ChainFund-Dapp/internal/registry"
	"github.com/chokiwild/ChainFund-Dapp/internal/session"
)

// Coordinator serializes mutations for one session: while a submitted
// transaction awaits confirmation no second mutation may start.
type Coordinator struct {
	gw      ethereum.Gateway
	reader  *registry.Reader
	store   *session.Store
	factory *session.FactoryPointer

	inFlight atomic.Bool
}

// New creates a coordinator over the given session state.
func New(gw ethereum.Gateway, reader *registry.Reader, store *session.Store, factory *session.FactoryPointer) *Coordinator {
	return &Coordinator{
		gw:      gw,
		reader:  reader,
		store:   store,
		factory: factory,
	}
}

// Connect attaches the wallet identity and performs the initial full
// load: admin detection, token metadata, balances and the campaign
// registry. WalletUnavailable is the only fatal outcome.
func (c *Coordinator) Connect(ctx context.Context) (session.Snapshot, error) {
	identity, err := c.gw.Connect(ctx)
	if err != nil {
		return session.Snapshot{}, err
	}

	factory := c.factory.Get()
	admin, err := c.gw.Admin(ctx, factory)
	if err != nil {
		return session.Snapshot{}, errs.Wrap(errs.KindRegistryUnavailable, "connect", err)
	}

	tokenName, err := c.gw.TokenName(ctx)
	if err != nil {
		return session.Snapshot{}, errs.Wrap(errs.KindRegistryUnavailable, "connect", err)
	}
	tokenSymbol, err := c.gw.TokenSymbol(ctx)
	if err != nil {
		return session.Snapshot{}, errs.Wrap(errs.KindRegistryUnavailable, "connect", err)
	}

	addr := identity.Address
	ident := model.IdentityContext{
		ConnectedAddress: &addr,
		IsLedgerAdmin:    admin == addr,
		TokenName:        tokenName,
		TokenSymbol:      tokenSymbol,
		ChainId:          identity.ChainId,
		NetworkName:      identity.NetworkName,
		AdminAddress:     admin,
	}
	c.store.SetIdentity(ident)

	if err := c.Resync(ctx); err != nil {
		// The session is connected; the view is just empty until a
		// retried load succeeds.
		logger.Warn("Initial registry load failed: %v", err)
		return c.store.Snapshot(time.Now()), err
	}

	logger.Info("Session connected as %s (admin: %t)", addr.Hex(), ident.IsLedgerAdmin)
	return c.store.Snapshot(time.Now()), nil
}

// Contribute sends ether to an active campaign.
func (c *Coordinator) Contribute(ctx context.Context, campaignId uint64, amountStr string) error {
	const op = "contribute"

	release, err := c.beginMutation(op)
	if err != nil {
		return err
	}
	defer release()

	view, err := c.authorizeCampaign(op, campaignId, gate.ActionContribute)
	if err != nil {
		return err
	}

	value, err := amount.ParseEther(amountStr)
	if err != nil {
		return err
	}

	tx, err := c.gw.Contribute(ctx, view.Address, value)
	if err != nil {
		return classifySubmit(op, err)
	}
	if _, err := c.gw.WaitMined(ctx, tx); err != nil {
		return err
	}

	return c.Resync(ctx)
}

// CreateCampaign creates a new campaign via the active factory.
func (c *Coordinator) CreateCampaign(ctx context.Context, goalStr, durationStr string) error {
	const op = "create_campaign"

	release, err := c.beginMutation(op)
	if err != nil {
		return err
	}
	defer release()

	ident := c.store.Identity()
	if !gate.AllowsPlatform(ident.Connected(), ident.IsLedgerAdmin, gate.ActionCreateCampaign) {
		return errs.New(errs.KindPreconditionFailed, op, "connect a wallet first")
	}

	goal, err := amount.ParseEther(goalStr)
	if err != nil {
		return err
	}
	duration, err := amount.ParseDurationSeconds(durationStr)
	if err != nil {
		return err
	}

	tx, err := c.gw.CreateCampaign(ctx, c.factory.Get(), goal, duration)
	if err != nil {
		return classifySubmit(op, err)
	}
	if _, err := c.gw.WaitMined(ctx, tx); err != nil {
		return err
	}

	return c.Resync(ctx)
}

// Withdraw collects the funds of a funded campaign and triggers the
// reward-token distribution. Owner only.
func (c *Coordinator) Withdraw(ctx context.Context, campaignId uint64) error {
	const op = "withdraw"

	release, err := c.beginMutation(op)
	if err != nil {
		return err
	}
	defer release()

	if _, err := c.authorizeCampaign(op, campaignId, gate.ActionWithdraw); err != nil {
		return err
	}

	tx, err := c.gw.WithdrawCampaign(ctx, c.factory.Get(), campaignId)
	if err != nil {
		return classifySubmit(op, err)
	}
	if _, err := c.gw.WaitMined(ctx, tx); err != nil {
		return err
	}

	return c.Resync(ctx)
}

// Refund flips an expired campaign to Failed and refunds the caller.
func (c *Coordinator) Refund(ctx context.Context, campaignId uint64) error {
	const op = "refund"

	release, err := c.beginMutation(op)
	if err != nil {
		return err
	}
	defer release()

	view, err := c.authorizeCampaign(op, campaignId, gate.ActionRefund)
	if err != nil {
		return err
	}

	tx, err := c.gw.Refund(ctx, view.Address)
	if err != nil {
		return classifySubmit(op, err)
	}
	if _, err := c.gw.WaitMined(ctx, tx); err != nil {
		return err
	}

	return c.Resync(ctx)
}

// ClaimRefund recovers the caller's contribution from a failed campaign.
func (c *Coordinator) ClaimRefund(ctx context.Context, campaignId uint64) error {
	const op = "claim_refund"

	release, err := c.beginMutation(op)
	if err != nil {
		return err
	}
	defer release()

	view, err := c.authorizeCampaign(op, campaignId, gate.ActionClaimRefund)
	if err != nil {
		return err
	}

	tx, err := c.gw.ClaimRefund(ctx, view.Address)
	if err != nil {
		return classifySubmit(op, err)
	}
	if _, err := c.gw.WaitMined(ctx, tx); err != nil {
		return err
	}

	return c.Resync(ctx)
}

// Resync performs a full reload from the ledger through the current
// factory pointer: the whole registry plus both balances of the
// connected identity. The new view is installed atomically; on any
// failure the prior view stands untouched.
func (c *Coordinator) Resync(ctx context.Context) error {
	factory := c.factory.Get()

	records, err := c.reader.Load(ctx, factory)
	if err != nil {
		return err
	}

	ident := c.store.Identity()
	if ident.Connected() {
		addr := *ident.ConnectedAddress

		ethBalance, err := c.gw.GetBalance(ctx, addr)
		if err != nil {
			return errs.Wrap(errs.KindRegistryUnavailable, "resync", err)
		}
		tokenBalance, err := c.gw.BalanceOf(ctx, addr)
		if err != nil {
			return errs.Wrap(errs.KindRegistryUnavailable, "resync", err)
		}
		admin, err := c.gw.Admin(ctx, factory)
		if err != nil {
			return errs.Wrap(errs.KindRegistryUnavailable, "resync", err)
		}

		ident.EthBalance = ethBalance
		ident.RewardTokenBalance = tokenBalance
		ident.IsLedgerAdmin = admin == addr
		ident.AdminAddress = admin
		c.store.SetIdentity(ident)
	}

	c.store.Replace(records, time.Now())
	return nil
}

// TryResync runs a resynchronization unless a mutation is in flight, in
// which case the mutation's own post-confirmation resync will cover it.
func (c *Coordinator) TryResync(ctx context.Context) error {
	if c.inFlight.Load() {
		logger.Debug("Skipping background resync: transaction pending")
		return nil
	}
	return c.Resync(ctx)
}

// BeginMutation acquires the session's one-in-flight-transaction guard
// for callers that run multi-step workflows (governance). The returned
// release must be called exactly once.
func (c *Coordinator) BeginMutation(op string) (func(), error) {
	return c.beginMutation(op)
}

func (c *Coordinator) beginMutation(op string) (func(), error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, errs.New(errs.KindPreconditionFailed, op, "another transaction is pending confirmation")
	}
	return func() { c.inFlight.Store(false) }, nil
}

// authorizeCampaign re-checks what the gate already decided at render
// time, against a fresh wall clock: a view rendered before the deadline
// must not authorize a contribution submitted after it.
func (c *Coordinator) authorizeCampaign(op string, campaignId uint64, action gate.Action) (model.DerivedCampaignView, error) {
	ident := c.store.Identity()
	if !ident.Connected() {
		return model.DerivedCampaignView{}, errs.New(errs.KindPreconditionFailed, op, "connect a wallet first")
	}

	view, ok := c.store.Find(campaignId, time.Now())
	if !ok {
		return model.DerivedCampaignView{}, errs.New(errs.KindPreconditionFailed, op, "unknown campaign %d", campaignId)
	}

	role := model.RoleFor(view.CampaignRecord, ident.ConnectedAddress)
	if !gate.Allows(role, view.DisplayState, action) {
		return model.DerivedCampaignView{}, errs.New(errs.KindPreconditionFailed, op,
			"%s not permitted for role %s in state %q", action, role, view.DisplayState.Label())
	}

	return view, nil
}

// classifySubmit keeps an already-classified error and labels everything
// else as a ledger rejection.
func classifySubmit(op string, err error) error {
	if errs.KindOf(err) != "" {
		return err
	}
	return errs.Wrap(errs.KindTxRejected, op, err)
}
