// Package amount converts between user-facing decimal ether strings and
// the ledger's integer wei representation. Conversion is exact: no
// floating-point intermediate is ever used.
package amount

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/chokiwild/ChainFund-Dapp/internal/errs"
	"github.com/shopspring/decimal"
)

// weiPerEther is 10^18.
var weiPerEther = decimal.New(1, 18)

// ParseEther converts a decimal ether string ("0.01", "1.5") into wei.
// Empty, non-numeric, non-positive, or sub-wei inputs are rejected with
// an InvalidAmount classification and no value is returned.
func ParseEther(s string) (*big.Int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, errs.New(errs.KindInvalidAmount, "parse_amount", "amount is empty")
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidAmount, "parse_amount", err)
	}
	if d.Sign() <= 0 {
		return nil, errs.New(errs.KindInvalidAmount, "parse_amount", "amount must be positive: %s", trimmed)
	}

	wei := d.Mul(weiPerEther)
	if !wei.IsInteger() {
		return nil, errs.New(errs.KindInvalidAmount, "parse_amount", "amount %s is below 1 wei precision", trimmed)
	}

	return wei.BigInt(), nil
}

// FormatEther renders a wei value as a decimal ether string for display.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, 0).Div(weiPerEther).String()
}

// ParseDurationSeconds parses a campaign duration given as a whole,
// non-negative number of seconds.
func ParseDurationSeconds(s string) (*big.Int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, errs.New(errs.KindInvalidAmount, "parse_duration", "duration is empty")
	}

	seconds, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidAmount, "parse_duration", err)
	}

	return new(big.Int).SetUint64(seconds), nil
}
