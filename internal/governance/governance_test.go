package governance

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/chokiwild/ChainFund-Dapp/internal/coordinator"
	"github.com/chokiwild/ChainFund-Dapp/internal/errs"
	"github.com/chokiwild/ChainFund-Dapp/internal/ethereum"
	"github.com/chokiwild/ChainFund-Dapp/internal/model"
	"github.com/chokiwild/ChainFund-Dapp/internal/registry"
	"github.com/chokiwild/ChainFund-Dapp/internal/session"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	oldFactoryAddr = common.HexToAddress("0x53d5d969B44d8D3Ab5e39cF9cb24F49822aCB00a")
	newFactoryAddr = common.HexToAddress("0xAAaAaAaaAaAaAaaAaAAAAAAAAaaaAaAaAaaAaaAA")
	adminAddr      = common.HexToAddress("0x9999999999999999999999999999999999999999")
	donorAddr      = common.HexToAddress("0x3333333333333333333333333333333333333333")
)

func pendingTx() *types.Transaction {
	return types.NewTx(&types.LegacyTx{
		Nonce:    7,
		Gas:      500_000,
		GasPrice: big.NewInt(1),
		Value:    big.NewInt(0),
	})
}

func deployReceipt() *types.Receipt {
	return &types.Receipt{
		Status:          types.ReceiptStatusSuccessful,
		ContractAddress: newFactoryAddr,
		BlockNumber:     big.NewInt(42),
	}
}

func newTestGovernance(t *testing.T, connected common.Address, isAdmin bool) (*Governance, *ethereum.GatewayMock, *session.Store, *session.FactoryPointer) {
	t.Helper()
	gw := new(ethereum.GatewayMock)
	store := session.NewStore()
	factory := session.NewFactoryPointer(oldFactoryAddr)
	coord := coordinator.New(gw, registry.NewReader(gw), store, factory)

	addr := connected
	store.SetIdentity(model.IdentityContext{
		ConnectedAddress: &addr,
		AdminAddress:     adminAddr,
		IsLedgerAdmin:    isAdmin,
	})
	return New(gw, coord, store, factory), gw, store, factory
}

// expectResync wires the post-confirmation reload against the given
// factory, with an empty registry.
func expectResync(gw *ethereum.GatewayMock, factory, caller common.Address) {
	gw.On("GetCampaignsCount", mock.Anything, factory).Return(uint64(0), nil)
	gw.On("GetBalance", mock.Anything, caller).Return(big.NewInt(1_000_000_000_000_000_000), nil)
	gw.On("BalanceOf", mock.Anything, caller).Return(big.NewInt(0), nil)
	gw.On("Admin", mock.Anything, factory).Return(adminAddr, nil)
}

func TestRotateMinterInvalidAddress(t *testing.T) {
	gov, gw, _, _ := newTestGovernance(t, adminAddr, true)

	for _, input := range []string{"", "0x123", "not-an-address", "0xZZ45d969B44d8D3Ab5e39cF9cb24F49822aCB00a"} {
		err := gov.RotateMinter(context.Background(), input)
		require.Error(t, err, "input %q", input)
		assert.True(t, errs.IsKind(err, errs.KindInvalidAddress))
	}
	gw.AssertNotCalled(t, "SetMinter", mock.Anything, mock.Anything)
}

func TestRotateMinterRequiresAdmin(t *testing.T) {
	gov, gw, _, _ := newTestGovernance(t, donorAddr, false)

	err := gov.RotateMinter(context.Background(), newFactoryAddr.Hex())
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindPreconditionFailed))

	_, err = gov.RedeployFactory(context.Background())
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindPreconditionFailed))

	gw.AssertNotCalled(t, "SetMinter", mock.Anything, mock.Anything)
	gw.AssertNotCalled(t, "DeployFactory", mock.Anything)
}

func TestRotateMinterHappyPath(t *testing.T) {
	gov, gw, _, _ := newTestGovernance(t, adminAddr, true)

	gw.On("SetMinter", mock.Anything, newFactoryAddr).Return(pendingTx(), nil)
	gw.On("WaitMined", mock.Anything, mock.Anything).Return(deployReceipt(), nil)
	expectResync(gw, oldFactoryAddr, adminAddr)

	require.NoError(t, gov.RotateMinter(context.Background(), newFactoryAddr.Hex()))
	gw.AssertExpectations(t)
}

func TestRedeployFactoryHappyPath(t *testing.T) {
	gov, gw, _, factory := newTestGovernance(t, adminAddr, true)

	gw.On("DeployFactory", mock.Anything).Return(pendingTx(), nil)
	gw.On("SetMinter", mock.Anything, newFactoryAddr).Return(pendingTx(), nil)
	gw.On("WaitMined", mock.Anything, mock.Anything).Return(deployReceipt(), nil)
	gw.On("Minter", mock.Anything).Return(newFactoryAddr, nil)
	expectResync(gw, newFactoryAddr, adminAddr)

	deployed, err := gov.RedeployFactory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, newFactoryAddr, deployed)
	assert.Equal(t, newFactoryAddr, factory.Get())
}

func TestRedeployFactoryDeploymentFailureOrphansNothing(t *testing.T) {
	gov, gw, _, factory := newTestGovernance(t, adminAddr, true)

	gw.On("DeployFactory", mock.Anything).Return(nil, errors.New("insufficient funds"))

	_, err := gov.RedeployFactory(context.Background())
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindTxRejected))
	assert.False(t, errs.IsKind(err, errs.KindPartialGovernanceFailure))
	assert.Equal(t, oldFactoryAddr, factory.Get())
	gw.AssertNotCalled(t, "SetMinter", mock.Anything, mock.Anything)
}

// TestRedeployFactoryMinterRotationFailure covers the partial outcome:
// the new factory exists on chain but was never activated. The error
// names the orphaned address, the pointer stays on the old factory and
// the workflow is not retried.
func TestRedeployFactoryMinterRotationFailure(t *testing.T) {
	gov, gw, _, factory := newTestGovernance(t, adminAddr, true)

	deployTx := pendingTx()
	gw.On("DeployFactory", mock.Anything).Return(deployTx, nil).Once()
	gw.On("WaitMined", mock.Anything, deployTx).Return(deployReceipt(), nil).Once()
	gw.On("SetMinter", mock.Anything, newFactoryAddr).Return(nil, errors.New("rpc: connection reset")).Once()

	orphaned, err := gov.RedeployFactory(context.Background())
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindPartialGovernanceFailure))
	assert.Equal(t, newFactoryAddr, orphaned)
	assert.Contains(t, err.Error(), newFactoryAddr.Hex())
	assert.Equal(t, oldFactoryAddr, factory.Get())

	// Exactly one deployment attempt, no automatic retry.
	gw.AssertNumberOfCalls(t, "DeployFactory", 1)
	gw.AssertNotCalled(t, "GetCampaignsCount", mock.Anything, mock.Anything)
}

func TestRedeployFactoryMinterMismatchAfterRotation(t *testing.T) {
	gov, gw, _, factory := newTestGovernance(t, adminAddr, true)

	gw.On("DeployFactory", mock.Anything).Return(pendingTx(), nil)
	gw.On("SetMinter", mock.Anything, newFactoryAddr).Return(pendingTx(), nil)
	gw.On("WaitMined", mock.Anything, mock.Anything).Return(deployReceipt(), nil)
	// The token reports a minter other than the freshly deployed factory.
	gw.On("Minter", mock.Anything).Return(oldFactoryAddr, nil)

	_, err := gov.RedeployFactory(context.Background())
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindPartialGovernanceFailure))
	assert.Equal(t, oldFactoryAddr, factory.Get())
	gw.AssertNotCalled(t, "GetCampaignsCount", mock.Anything, mock.Anything)
}

// TestRedeployFactoryResyncFailureRollsBackPointer checks step three:
// the minter rotation succeeded, but the reload through the new factory
// failed, so the pointer must return to the old factory.
func TestRedeployFactoryResyncFailureRollsBackPointer(t *testing.T) {
	gov, gw, store, factory := newTestGovernance(t, adminAddr, true)

	prior := model.CampaignRecord{
		Id:               0,
		Address:          common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Owner:            donorAddr,
		Goal:             big.NewInt(1),
		TotalContributed: big.NewInt(0),
		Deadline:         uint64(time.Now().Add(time.Hour).Unix()),
		RawState:         model.RawStateActive,
	}
	store.Replace([]model.CampaignRecord{prior}, time.Now())

	gw.On("DeployFactory", mock.Anything).Return(pendingTx(), nil)
	gw.On("SetMinter", mock.Anything, newFactoryAddr).Return(pendingTx(), nil)
	gw.On("WaitMined", mock.Anything, mock.Anything).Return(deployReceipt(), nil)
	gw.On("Minter", mock.Anything).Return(newFactoryAddr, nil)
	gw.On("GetCampaignsCount", mock.Anything, newFactoryAddr).
		Return(uint64(0), errors.New("rpc timeout"))

	_, err := gov.RedeployFactory(context.Background())
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindPartialGovernanceFailure))
	assert.Equal(t, oldFactoryAddr, factory.Get())

	// The old-factory view survives the failed switch.
	snapshot := store.Snapshot(time.Now())
	require.Len(t, snapshot.Campaigns, 1)
	assert.Equal(t, prior.Address, snapshot.Campaigns[0].Address)
}
