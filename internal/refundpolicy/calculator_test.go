package refundpolicy

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoTierSchedule is the canonical example: full refund within the first
// day, half refund within three days, nothing after.
func twoTierSchedule() Schedule {
	return Schedule{
		{ThresholdMinutes: 1440, RefundPercent: 100},
		{ThresholdMinutes: 4320, RefundPercent: 50},
	}
}

func TestAmountTierLookup(t *testing.T) {
	s := twoTierSchedule()
	paid := int64(100000)

	cases := []struct {
		name    string
		elapsed int64
		want    int64
	}{
		{"inside first tier", 500, 100000},
		{"inside second tier", 2000, 50000},
		{"past last tier", 5000, 0},
		{"at first boundary falls through", 1440, 50000},
		{"just before first boundary", 1439, 100000},
		{"at last boundary refunds nothing", 4320, 0},
		{"zero elapsed", 0, 100000},
		{"negative elapsed clamps to zero", -10, 100000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Amount(s, tc.elapsed, paid))
		})
	}
}

func TestAmountFloorsDivision(t *testing.T) {
	s := Schedule{{ThresholdMinutes: 100, RefundPercent: 33}}

	// 33% of 101 is 33.33, floored to 33.
	assert.Equal(t, int64(33), Amount(s, 10, 101))
	assert.Equal(t, int64(0), Amount(s, 10, 1))
}

func TestPercentEmptySchedule(t *testing.T) {
	assert.Equal(t, int64(0), Percent(Schedule{}, 0))
	assert.Equal(t, int64(0), Percent(nil, 123))
}

func TestPercentMonotonicNonIncreasing(t *testing.T) {
	s := Schedule{
		{ThresholdMinutes: 60, RefundPercent: 100},
		{ThresholdMinutes: 720, RefundPercent: 80},
		{ThresholdMinutes: 1440, RefundPercent: 50},
		{ThresholdMinutes: 4320, RefundPercent: 10},
	}

	prev := int64(100)
	for elapsed := int64(0); elapsed <= 5000; elapsed += 7 {
		p := Percent(s, elapsed)
		assert.LessOrEqual(t, p, prev, "elapsed %d", elapsed)
		prev = p
	}
}

// The generated contract evaluates the same schedule in seconds with
// uint256 arithmetic. Every minute-resolution vector must produce the
// same percent on both paths, including the sub-minute remainder the
// chain sees but the off-chain calculator floors away.
func TestEVMAmountMatchesOffchainCalculator(t *testing.T) {
	s := twoTierSchedule()
	paidMinor := int64(100000)
	paidWei, ok := new(big.Int).SetString("100000000000000000", 10) // 0.1 ETH
	require.True(t, ok)

	vectors := []int64{0, 1, 500, 1439, 1440, 1441, 2000, 4319, 4320, 5000}
	for _, elapsedMinutes := range vectors {
		wantPercent := Percent(s, elapsedMinutes)
		wantMinor := Amount(s, elapsedMinutes, paidMinor)

		for _, extraSeconds := range []int64{0, 1, 59} {
			elapsedSeconds := elapsedMinutes*60 + extraSeconds
			got := EVMAmount(s, elapsedSeconds, paidWei)

			want := new(big.Int).Mul(paidWei, big.NewInt(wantPercent))
			want.Div(want, big.NewInt(100))
			assert.Zero(t, got.Cmp(want), "elapsed %ds: got %s want %s", elapsedSeconds, got, want)
		}

		// Same percent applied to the minor-unit amount.
		assert.Equal(t, wantMinor, paidMinor*wantPercent/100)
	}
}

func TestEVMAmountNegativeElapsedClamps(t *testing.T) {
	s := twoTierSchedule()
	paid := big.NewInt(1000)

	assert.Zero(t, EVMAmount(s, -5, paid).Cmp(big.NewInt(1000)))
}

func TestEVMAmountEmptySchedule(t *testing.T) {
	assert.Zero(t, EVMAmount(Schedule{}, 0, big.NewInt(1000)).Cmp(big.NewInt(0)))
}
