package refundpolicy

import "math/big"

// Percent returns the refund percent for an elapsed time: the first tier
// whose threshold is strictly greater than elapsedMinutes wins, and an
// exhausted (or empty) schedule refunds 0%. Elapsed clamps to 0.
//
// The scan is deliberately a bounded linear pass over integer values so
// the generated on-chain evaluator can reproduce it with a fixed-size
// array and no fractional math.
func Percent(s Schedule, elapsedMinutes int64) int64 {
	if elapsedMinutes < 0 {
		elapsedMinutes = 0
	}
	for _, tier := range s {
		if elapsedMinutes < tier.ThresholdMinutes {
			return tier.RefundPercent
		}
	}
	return 0
}

// Amount computes the refunded amount in minor units:
// floor(paidMinor * percent / 100), pure int64 arithmetic. Callers must
// reject negative paidMinor before calling; with the percent range
// enforced by Normalize the result is always within [0, paidMinor].
func Amount(s Schedule, elapsedMinutes int64, paidMinor int64) int64 {
	percent := Percent(s, elapsedMinutes)
	return paidMinor * percent / 100
}

// EVMAmount mirrors the refund lookup the generated Solidity contract
// performs: thresholds in seconds, paid amount in wei, uint256
// arithmetic. It exists so conformance tests can assert the off-chain
// calculator and the on-chain evaluator agree on every vector.
func EVMAmount(s Schedule, elapsedSeconds int64, paidWei *big.Int) *big.Int {
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	elapsed := big.NewInt(elapsedSeconds)
	thresholds := s.ThresholdSeconds()
	percents := s.Percents()
	for i := range thresholds {
		if elapsed.Cmp(big.NewInt(thresholds[i])) < 0 {
			refund := new(big.Int).Mul(paidWei, big.NewInt(percents[i]))
			return refund.Div(refund, big.NewInt(100))
		}
	}
	return big.NewInt(0)
}
