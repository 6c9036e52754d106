package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
)

// GatewayMock is a testify mock of Gateway for package tests.
type GatewayMock struct {
	mock.Mock
}

var _ Gateway = (*GatewayMock)(nil)

func (m *GatewayMock) Connect(ctx context.Context) (*Identity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Identity), args.Error(1)
}

func (m *GatewayMock) GetBalance(ctx context.Context, addr common.Address) (*big.Int, error) {
	args := m.Called(ctx, addr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *GatewayMock) GetNetworkInfo(ctx context.Context) (NetworkInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).(NetworkInfo), args.Error(1)
}

func (m *GatewayMock) BlockNumber(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *GatewayMock) Admin(ctx context.Context, factory common.Address) (common.Address, error) {
	args := m.Called(ctx, factory)
	return args.Get(0).(common.Address), args.Error(1)
}

func (m *GatewayMock) GetCampaignsCount(ctx context.Context, factory common.Address) (uint64, error) {
	args := m.Called(ctx, factory)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *GatewayMock) GetCampaign(ctx context.Context, factory common.Address, id uint64) (CampaignEntry, error) {
	args := m.Called(ctx, factory, id)
	return args.Get(0).(CampaignEntry), args.Error(1)
}

func (m *GatewayMock) TotalContributed(ctx context.Context, campaign common.Address) (*big.Int, error) {
	args := m.Called(ctx, campaign)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *GatewayMock) CampaignState(ctx context.Context, campaign common.Address) (uint8, error) {
	args := m.Called(ctx, campaign)
	return args.Get(0).(uint8), args.Error(1)
}

func (m *GatewayMock) BalanceOf(ctx context.Context, holder common.Address) (*big.Int, error) {
	args := m.Called(ctx, holder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *GatewayMock) TokenName(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *GatewayMock) TokenSymbol(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *GatewayMock) Minter(ctx context.Context) (common.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).(common.Address), args.Error(1)
}

func (m *GatewayMock) CreateCampaign(ctx context.Context, factory common.Address, goal, duration *big.Int) (*types.Transaction, error) {
	args := m.Called(ctx, factory, goal, duration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Transaction), args.Error(1)
}

func (m *GatewayMock) WithdrawCampaign(ctx context.Context, factory common.Address, id uint64) (*types.Transaction, error) {
	args := m.Called(ctx, factory, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Transaction), args.Error(1)
}

func (m *GatewayMock) Contribute(ctx context.Context, campaign common.Address, value *big.Int) (*types.Transaction, error) {
	args := m.Called(ctx, campaign, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Transaction), args.Error(1)
}

func (m *GatewayMock) Refund(ctx context.Context, campaign common.Address) (*types.Transaction, error) {
	args := m.Called(ctx, campaign)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Transaction), args.Error(1)
}

func (m *GatewayMock) ClaimRefund(ctx context.Context, campaign common.Address) (*types.Transaction, error) {
	args := m.Called(ctx, campaign)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Transaction), args.Error(1)
}

func (m *GatewayMock) SetMinter(ctx context.Context, minter common.Address) (*types.Transaction, error) {
	args := m.Called(ctx, minter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Transaction), args.Error(1)
}

func (m *GatewayMock) DeployFactory(ctx context.Context) (*types.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Transaction), args.Error(1)
}

func (m *GatewayMock) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Receipt), args.Error(1)
}

func (m *GatewayMock) FilterFactoryLogs(ctx context.Context, factory common.Address, fromBlock, toBlock uint64) ([]types.Log, error) {
	args := m.Called(ctx, factory, fromBlock, toBlock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Log), args.Error(1)
}
