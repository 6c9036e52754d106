package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Identity is the wallet identity attached to a session.
type Identity struct {
	Address     common.Address
	ChainId     uint64
	NetworkName string
}

// NetworkInfo describes the connected chain.
type NetworkInfo struct {
	ChainId uint64
	Name    string
}

// CampaignEntry is the raw factory tuple for one campaign ordinal.
type CampaignEntry struct {
	Address  common.Address
	Owner    common.Address
	Goal     *big.Int
	Deadline *big.Int
	Exists   bool
}

// Gateway is the typed boundary to the wallet and the ledger contracts.
// All state transitions behind it are authoritative; the client only
// reads them back. The factory address is passed per call so the caller
// controls which factory pointer a read or write goes through.
type Gateway interface {
	// Connect attaches the configured wallet identity. Fails with a
	// WalletUnavailable classification when no signing key is present.
	Connect(ctx context.Context) (*Identity, error)
	GetBalance(ctx context.Context, addr common.Address) (*big.Int, error)
	GetNetworkInfo(ctx context.Context) (NetworkInfo, error)
	BlockNumber(ctx context.Context) (uint64, error)

	// Factory reads.
	Admin(ctx context.Context, factory common.Address) (common.Address, error)
	GetCampaignsCount(ctx context.Context, factory common.Address) (uint64, error)
	GetCampaign(ctx context.Context, factory common.Address, id uint64) (CampaignEntry, error)

	// Campaign reads.
	TotalContributed(ctx context.Context, campaign common.Address) (*big.Int, error)
	CampaignState(ctx context.Context, campaign common.Address) (uint8, error)

	// Reward token reads.
	BalanceOf(ctx context.Context, holder common.Address) (*big.Int, error)
	TokenName(ctx context.Context) (string, error)
	TokenSymbol(ctx context.Context) (string, error)
	Minter(ctx context.Context) (common.Address, error)

	// Writes. Each returns the broadcast transaction; confirmation is a
	// separate step so the coordinator owns the suspension point.
	CreateCampaign(ctx context.Context, factory common.Address, goal, duration *big.Int) (*types.Transaction, error)
	WithdrawCampaign(ctx context.Context, factory common.Address, id uint64) (*types.Transaction, error)
	Contribute(ctx context.Context, campaign common.Address, value *big.Int) (*types.Transaction, error)
	Refund(ctx context.Context, campaign common.Address) (*types.Transaction, error)
	ClaimRefund(ctx context.Context, campaign common.Address) (*types.Transaction, error)
	SetMinter(ctx context.Context, minter common.Address) (*types.Transaction, error)

	// DeployFactory broadcasts a factory deployment bound to the reward
	// token address. The new contract address is on the mined receipt.
	DeployFactory(ctx context.Context) (*types.Transaction, error)

	// WaitMined blocks until the transaction is included and confirmed.
	// A reverted receipt yields a TxRejected classification.
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)

	// FilterFactoryLogs returns factory logs in the block range, used by
	// the event monitor as a resynchronization trigger.
	FilterFactoryLogs(ctx context.Context, factory common.Address, fromBlock, toBlock uint64) ([]types.Log, error)
}
