package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/chokiwild/ChainFund-Dapp/internal/config"
	"github.com/chokiwild/ChainFund-Dapp/internal/errs"
	"github.com/chokiwild/ChainFund-Dapp/internal/logger"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Client implements Gateway against a JSON-RPC node.
type Client struct {
	client        *ethclient.Client
	privateKey    *ecdsa.PrivateKey // nil for a guest (read-only) session
	chainId       *big.Int
	confirmations int

	tokenAddr       common.Address
	factoryABI      abi.ABI
	campaignABI     abi.ABI
	tokenABI        abi.ABI
	factoryBytecode []byte // creation bytecode, empty unless redeployment is configured
}

// Init connects to the RPC node and prepares the contract bindings.
func Init(cfg config.ChainConfig) (*Client, error) {
	client, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ethereum client: %w", err)
	}

	var privateKey *ecdsa.PrivateKey
	if cfg.PrivateKey != "" {
		privateKey, err = crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
	}

	factoryABI, campaignABI, tokenABI, err := parseABIs()
	if err != nil {
		return nil, err
	}

	var bytecode []byte
	if cfg.BytecodePath != "" {
		raw, err := os.ReadFile(cfg.BytecodePath)
		if err != nil {
			logger.Warn("Factory bytecode not available (%v), redeployment disabled", err)
		} else {
			bytecode = common.FromHex(strings.TrimSpace(string(raw)))
		}
	}

	confirmations := cfg.Confirmations
	if confirmations < 1 {
		confirmations = 1
	}

	return &Client{
		client:          client,
		privateKey:      privateKey,
		chainId:         big.NewInt(cfg.ChainId),
		confirmations:   confirmations,
		tokenAddr:       common.HexToAddress(cfg.TokenAddress),
		factoryABI:      factoryABI,
		campaignABI:     campaignABI,
		tokenABI:        tokenABI,
		factoryBytecode: bytecode,
	}, nil
}

// Connect attaches the configured signing identity to the session.
func (c *Client) Connect(ctx context.Context) (*Identity, error) {
	if c.privateKey == nil {
		return nil, errs.New(errs.KindWalletUnavailable, "connect", "no signing key configured")
	}

	chainId, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.KindWalletUnavailable, "connect", err)
	}

	return &Identity{
		Address:     c.signerAddress(),
		ChainId:     chainId.Uint64(),
		NetworkName: networkName(chainId.Uint64()),
	}, nil
}

// GetBalance returns the native-currency balance in wei.
func (c *Client) GetBalance(ctx context.Context, addr common.Address) (*big.Int, error) {
	return c.client.BalanceAt(ctx, addr, nil)
}

// GetNetworkInfo reports the chain id and a human network name.
func (c *Client) GetNetworkInfo(ctx context.Context) (NetworkInfo, error) {
	chainId, err := c.client.ChainID(ctx)
	if err != nil {
		return NetworkInfo{}, fmt.Errorf("failed to get chain id: %w", err)
	}
	id := chainId.Uint64()
	return NetworkInfo{ChainId: id, Name: networkName(id)}, nil
}

// BlockNumber returns the latest block number.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.client.BlockNumber(ctx)
}

// Admin returns the factory's admin address.
func (c *Client) Admin(ctx context.Context, factory common.Address) (common.Address, error) {
	out, err := c.call(ctx, factory, c.factoryABI, "admin")
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

// GetCampaignsCount returns the number of ordinals the factory reports.
func (c *Client) GetCampaignsCount(ctx context.Context, factory common.Address) (uint64, error) {
	out, err := c.call(ctx, factory, c.factoryABI, "getCampaignsCount")
	if err != nil {
		return 0, err
	}
	return out[0].(*big.Int).Uint64(), nil
}

// GetCampaign returns the factory tuple for one ordinal.
func (c *Client) GetCampaign(ctx context.Context, factory common.Address, id uint64) (CampaignEntry, error) {
	out, err := c.call(ctx, factory, c.factoryABI, "getCampaign", new(big.Int).SetUint64(id))
	if err != nil {
		return CampaignEntry{}, err
	}
	return CampaignEntry{
		Address:  out[0].(common.Address),
		Owner:    out[1].(common.Address),
		Goal:     out[2].(*big.Int),
		Deadline: out[3].(*big.Int),
		Exists:   out[4].(bool),
	}, nil
}

// TotalContributed returns a campaign's contribution total in wei.
func (c *Client) TotalContributed(ctx context.Context, campaign common.Address) (*big.Int, error) {
	out, err := c.call(ctx, campaign, c.campaignABI, "totalContributed")
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

// CampaignState returns the raw ledger state enum of a campaign.
func (c *Client) CampaignState(ctx context.Context, campaign common.Address) (uint8, error) {
	out, err := c.call(ctx, campaign, c.campaignABI, "state")
	if err != nil {
		return 0, err
	}
	return out[0].(uint8), nil
}

// BalanceOf returns the reward-token balance of an address.
func (c *Client) BalanceOf(ctx context.Context, holder common.Address) (*big.Int, error) {
	out, err := c.call(ctx, c.tokenAddr, c.tokenABI, "balanceOf", holder)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

// TokenName returns the reward token name.
func (c *Client) TokenName(ctx context.Context) (string, error) {
	out, err := c.call(ctx, c.tokenAddr, c.tokenABI, "name")
	if err != nil {
		return "", err
	}
	return out[0].(string), nil
}

// TokenSymbol returns the reward token symbol.
func (c *Client) TokenSymbol(ctx context.Context) (string, error) {
	out, err := c.call(ctx, c.tokenAddr, c.tokenABI, "symbol")
	if err != nil {
		return "", err
	}
	return out[0].(string), nil
}

// Minter returns the reward token's current authorized minter.
func (c *Client) Minter(ctx context.Context) (common.Address, error) {
	out, err := c.call(ctx, c.tokenAddr, c.tokenABI, "minter")
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

// CreateCampaign submits factory.createCampaign(goal, duration).
func (c *Client) CreateCampaign(ctx context.Context, factory common.Address, goal, duration *big.Int) (*types.Transaction, error) {
	data, err := c.factoryABI.Pack("createCampaign", goal, duration)
	if err != nil {
		return nil, fmt.Errorf("failed to pack createCampaign: %w", err)
	}
	return c.sendTx(ctx, &factory, nil, data)
}

// WithdrawCampaign submits factory.withdrawCampaign(id).
func (c *Client) WithdrawCampaign(ctx context.Context, factory common.Address, id uint64) (*types.Transaction, error) {
	data, err := c.factoryABI.Pack("withdrawCampaign", new(big.Int).SetUint64(id))
	if err != nil {
		return nil, fmt.Errorf("failed to pack withdrawCampaign: %w", err)
	}
	return c.sendTx(ctx, &factory, nil, data)
}

// Contribute submits campaign.contribute() carrying value wei.
func (c *Client) Contribute(ctx context.Context, campaign common.Address, value *big.Int) (*types.Transaction, error) {
	data, err := c.campaignABI.Pack("contribute")
	if err != nil {
		return nil, fmt.Errorf("failed to pack contribute: %w", err)
	}
	return c.sendTx(ctx, &campaign, value, data)
}

// Refund submits campaign.refund().
func (c *Client) Refund(ctx context.Context, campaign common.Address) (*types.Transaction, error) {
	data, err := c.campaignABI.Pack("refund")
	if err != nil {
		return nil, fmt.Errorf("failed to pack refund: %w", err)
	}
	return c.sendTx(ctx, &campaign, nil, data)
}

// ClaimRefund submits campaign.claimRefund().
func (c *Client) ClaimRefund(ctx context.Context, campaign common.Address) (*types.Transaction, error) {
	data, err := c.campaignABI.Pack("claimRefund")
	if err != nil {
		return nil, fmt.Errorf("failed to pack claimRefund: %w", err)
	}
	return c.sendTx(ctx, &campaign, nil, data)
}

// SetMinter submits token.setMinter(minter).
func (c *Client) SetMinter(ctx context.Context, minter common.Address) (*types.Transaction, error) {
	data, err := c.tokenABI.Pack("setMinter", minter)
	if err != nil {
		return nil, fmt.Errorf("failed to pack setMinter: %w", err)
	}
	return c.sendTx(ctx, &c.tokenAddr, nil, data)
}

// DeployFactory broadcasts a new factory deployment bound to the reward
// token address.
func (c *Client) DeployFactory(ctx context.Context) (*types.Transaction, error) {
	if len(c.factoryBytecode) == 0 {
		return nil, errs.New(errs.KindPreconditionFailed, "deploy_factory", "factory bytecode not configured")
	}

	ctorArgs, err := c.factoryABI.Pack("", c.tokenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to pack factory constructor: %w", err)
	}

	data := append(append([]byte{}, c.factoryBytecode...), ctorArgs...)
	return c.sendTx(ctx, nil, nil, data)
}

// WaitMined blocks until the transaction is included, checks for revert
// and waits for the configured confirmation depth.
func (c *Client) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.client, tx)
	if err != nil {
		return nil, errs.Wrap(errs.KindTxRejected, "wait_mined", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, errs.New(errs.KindTxRejected, "wait_mined", "transaction %s reverted", tx.Hash().Hex())
	}

	for c.confirmations > 1 {
		latest, err := c.client.BlockNumber(ctx)
		if err != nil {
			return nil, errs.Wrap(errs.KindTxRejected, "wait_mined", err)
		}
		if latest >= receipt.BlockNumber.Uint64()+uint64(c.confirmations)-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errs.Wrap(errs.KindTxRejected, "wait_mined", ctx.Err())
		case <-time.After(time.Second):
		}
	}

	return receipt, nil
}

// FilterFactoryLogs returns factory logs in the given block range.
func (c *Client) FilterFactoryLogs(ctx context.Context, factory common.Address, fromBlock, toBlock uint64) ([]types.Log, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{factory},
	}
	return c.client.FilterLogs(ctx, query)
}

// Close releases the RPC connection.
func (c *Client) Close() {
	c.client.Close()
}

// call packs, executes and unpacks a read-only contract call.
func (c *Client) call(ctx context.Context, to common.Address, contractABI abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	out, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s call failed: %w", method, err)
	}

	values, err := contractABI.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	return values, nil
}

// sendTx signs and broadcasts a transaction. to == nil deploys a contract.
func (c *Client) sendTx(ctx context.Context, to *common.Address, value *big.Int, data []byte) (*types.Transaction, error) {
	if c.privateKey == nil {
		return nil, errs.New(errs.KindWalletUnavailable, "send_tx", "no signing key configured")
	}
	if value == nil {
		value = big.NewInt(0)
	}

	from := c.signerAddress()
	nonce, err := c.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}

	gasLimit, err := c.client.EstimateGas(ctx, ethereum.CallMsg{From: from, To: to, Value: value, Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	var tx *types.Transaction
	if to == nil {
		tx = types.NewContractCreation(nonce, value, gasLimit, gasPrice, data)
	} else {
		tx = types.NewTransaction(nonce, *to, value, gasLimit, gasPrice, data)
	}

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainId), c.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	logger.Info("Broadcast transaction %s (nonce %d)", signed.Hash().Hex(), nonce)
	return signed, nil
}

func (c *Client) signerAddress() common.Address {
	return crypto.PubkeyToAddress(c.privateKey.PublicKey)
}

// networkName maps well-known chain ids to display names.
func networkName(chainId uint64) string {
	switch chainId {
	case 1:
		return "mainnet"
	case 11155111:
		return "sepolia"
	case 17000:
		return "holesky"
	case 31337:
		return "localhost"
	default:
		return "unknown"
	}
}
