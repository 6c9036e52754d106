package amount

import (
	"math/big"
	"testing"

	"github.com/chokiwild/ChainFund-Dapp/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEther(t *testing.T) {
	tests := []struct {
		name  string
		input string
		wei   string
	}{
		{"whole unit", "1", "1000000000000000000"},
		{"hundredth", "0.01", "10000000000000000"},
		{"fraction", "1.5", "1500000000000000000"},
		{"smallest unit", "0.000000000000000001", "1"},
		{"surrounding spaces", " 2 ", "2000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEther(tt.input)
			require.NoError(t, err)

			want, ok := new(big.Int).SetString(tt.wei, 10)
			require.True(t, ok)
			assert.Zero(t, want.Cmp(got))
		})
	}
}

func TestParseEtherHundredthRatio(t *testing.T) {
	hundredth, err := ParseEther("0.01")
	require.NoError(t, err)
	whole, err := ParseEther("1")
	require.NoError(t, err)

	assert.Equal(t, 1, hundredth.Sign())
	assert.Zero(t, new(big.Int).Mul(hundredth, big.NewInt(100)).Cmp(whole))
}

func TestParseEtherRejectsInvalidInput(t *testing.T) {
	for _, input := range []string{"", "abc", "-1", "0", "1.2.3", "0.0000000000000000001"} {
		t.Run(input, func(t *testing.T) {
			got, err := ParseEther(input)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errs.IsKind(err, errs.KindInvalidAmount))
		})
	}
}

func TestFormatEther(t *testing.T) {
	assert.Equal(t, "0", FormatEther(nil))
	assert.Equal(t, "0", FormatEther(big.NewInt(0)))
	assert.Equal(t, "1", FormatEther(new(big.Int).SetUint64(1_000_000_000_000_000_000)))
	assert.Equal(t, "0.01", FormatEther(new(big.Int).SetUint64(10_000_000_000_000_000)))
}

func TestParseEtherFormatRoundTrip(t *testing.T) {
	wei, err := ParseEther("0.4")
	require.NoError(t, err)
	assert.Equal(t, "0.4", FormatEther(wei))
}

func TestParseDurationSeconds(t *testing.T) {
	got, err := ParseDurationSeconds("3600")
	require.NoError(t, err)
	assert.Zero(t, big.NewInt(3600).Cmp(got))

	// Zero is a legal duration: the campaign is simply born expired.
	got, err = ParseDurationSeconds("0")
	require.NoError(t, err)
	assert.Zero(t, big.NewInt(0).Cmp(got))

	for _, input := range []string{"", "-1", "1.5", "soon"} {
		_, err := ParseDurationSeconds(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, errs.IsKind(err, errs.KindInvalidAmount))
	}
}
