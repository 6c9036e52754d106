package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Minimal ABIs for the deployed ChainFund contracts. These mirror the
// contract surface the client actually calls; replace with the full
// artifact ABIs if more methods are needed.

const factoryABIJSON = `[
	{"inputs": [{"internalType": "address", "name": "_token", "type": "address"}], "stateMutability": "nonpayable", "type": "constructor"},
	{"inputs": [], "name": "admin", "outputs": [{"internalType": "address", "name": "", "type": "address"}], "stateMutability": "view", "type": "function"},
	{"inputs": [], "name": "getCampaignsCount", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
	{"inputs": [{"internalType": "uint256", "name": "campaignId", "type": "uint256"}], "name": "getCampaign", "outputs": [
		{"internalType": "address", "name": "campaignAddress", "type": "address"},
		{"internalType": "address", "name": "owner", "type": "address"},
		{"internalType": "uint256", "name": "goal", "type": "uint256"},
		{"internalType": "uint256", "name": "deadline", "type": "uint256"},
		{"internalType": "bool", "name": "exists", "type": "bool"}
	], "stateMutability": "view", "type": "function"},
	{"inputs": [{"internalType": "uint256", "name": "campaignId", "type": "uint256"}], "name": "withdrawCampaign", "outputs": [], "stateMutability": "nonpayable", "type": "function"},
	{"inputs": [
		{"internalType": "uint256", "name": "_goal", "type": "uint256"},
		{"internalType": "uint256", "name": "_durationInSeconds", "type": "uint256"}
	], "name": "createCampaign", "outputs": [], "stateMutability": "nonpayable", "type": "function"}
]`

const campaignABIJSON = `[
	{"inputs": [], "name": "goal", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
	{"inputs": [], "name": "totalContributed", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
	{"inputs": [], "name": "deadline", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
	{"inputs": [], "name": "state", "outputs": [{"internalType": "uint8", "name": "", "type": "uint8"}], "stateMutability": "view", "type": "function"},
	{"inputs": [], "name": "contribute", "outputs": [], "stateMutability": "payable", "type": "function"},
	{"inputs": [], "name": "refund", "outputs": [], "stateMutability": "nonpayable", "type": "function"},
	{"inputs": [], "name": "claimRefund", "outputs": [], "stateMutability": "nonpayable", "type": "function"}
]`

const tokenABIJSON = `[
	{"inputs": [{"internalType": "address", "name": "account", "type": "address"}], "name": "balanceOf", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
	{"inputs": [], "name": "name", "outputs": [{"internalType": "string", "name": "", "type": "string"}], "stateMutability": "view", "type": "function"},
	{"inputs": [], "name": "symbol", "outputs": [{"internalType": "string", "name": "", "type": "string"}], "stateMutability": "view", "type": "function"},
	{"inputs": [], "name": "minter", "outputs": [{"internalType": "address", "name": "", "type": "address"}], "stateMutability": "view", "type": "function"},
	{"inputs": [{"internalType": "address", "name": "_minter", "type": "address"}], "name": "setMinter", "outputs": [], "stateMutability": "nonpayable", "type": "function"}
]`

func parseABIs() (factory, campaign, token abi.ABI, err error) {
	factory, err = abi.JSON(strings.NewReader(factoryABIJSON))
	if err != nil {
		return factory, campaign, token, fmt.Errorf("failed to parse factory ABI: %w", err)
	}
	campaign, err = abi.JSON(strings.NewReader(campaignABIJSON))
	if err != nil {
		return factory, campaign, token, fmt.Errorf("failed to parse campaign ABI: %w", err)
	}
	token, err = abi.JSON(strings.NewReader(tokenABIJSON))
	if err != nil {
		return factory, campaign, token, fmt.Errorf("failed to parse token ABI: %w", err)
	}
	return factory, campaign, token, nil
}
