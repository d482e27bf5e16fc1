package refundpolicy

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"blockpass/pkg/utils"
)

// RawRule is one refund rule as it arrives from a business, the OCR
// pipeline, or the contract generator payload: a period count, a unit
// token and the percent of the paid amount returned while the elapsed
// time is still below that period.
type RawRule struct {
	Period        int64  `json:"period"`
	Unit          string `json:"unit"`
	RefundPercent int64  `json:"refund_percent"`
}

// Tier is one normalized schedule entry: the elapsed-minutes threshold
// below which RefundPercent applies.
type Tier struct {
	ThresholdMinutes int64 `json:"threshold_minutes"`
	RefundPercent    int64 `json:"refund_percent"`
}

// Schedule is the canonical, sorted tier list. It is built once at pass
// creation (or contract generation) and never mutated afterwards; both
// the off-chain calculator and the generated on-chain contract are fed
// from this single form.
type Schedule []Tier

// unitMinutes accepts the Korean tokens the legacy terms use plus their
// English synonyms.
var unitMinutes = map[string]int64{
	"일":       1440,
	"시간":      60,
	"분":       1,
	"day":     1440,
	"days":    1440,
	"hour":    60,
	"hours":   60,
	"minute":  1,
	"minutes": 1,
}

// Normalize validates raw rules and converts them to the canonical
// schedule: thresholds in minutes, sorted ascending, ties keeping their
// input order. An empty input is a valid empty schedule (every lookup
// refunds 0%).
func Normalize(rules []RawRule) (Schedule, error) {
	schedule := make(Schedule, 0, len(rules))
	for i, rule := range rules {
		if rule.Period <= 0 {
			return nil, fmt.Errorf("%w: rule %d has non-positive period %d", utils.ErrInvalidTierRule, i, rule.Period)
		}
		if rule.RefundPercent < 0 || rule.RefundPercent > 100 {
			return nil, fmt.Errorf("%w: rule %d has percent %d outside [0,100]", utils.ErrInvalidTierRule, i, rule.RefundPercent)
		}
		minutes, ok := unitMinutes[strings.ToLower(strings.TrimSpace(rule.Unit))]
		if !ok {
			return nil, fmt.Errorf("%w: rule %d has unknown unit %q", utils.ErrInvalidTierRule, i, rule.Unit)
		}
		schedule = append(schedule, Tier{
			ThresholdMinutes: rule.Period * minutes,
			RefundPercent:    rule.RefundPercent,
		})
	}

	sort.SliceStable(schedule, func(i, j int) bool {
		return schedule[i].ThresholdMinutes < schedule[j].ThresholdMinutes
	})
	return schedule, nil
}

// Parse decodes a schedule previously stored in its canonical JSON form.
func Parse(data []byte) (Schedule, error) {
	if len(data) == 0 {
		return Schedule{}, nil
	}
	var schedule Schedule
	if err := json.Unmarshal(data, &schedule); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidTierRule, err)
	}
	return schedule, nil
}

// Encode renders the canonical JSON form stored on the pass row and
// embedded into generated contracts.
func (s Schedule) Encode() ([]byte, error) {
	if s == nil {
		s = Schedule{}
	}
	return json.Marshal(s)
}

// ThresholdSeconds returns the thresholds converted to seconds, the unit
// the generated contract evaluates in.
func (s Schedule) ThresholdSeconds() []int64 {
	out := make([]int64, len(s))
	for i, tier := range s {
		out[i] = tier.ThresholdMinutes * 60
	}
	return out
}

// Percents returns the refund percents in schedule order.
func (s Schedule) Percents() []int64 {
	out := make([]int64, len(s))
	for i, tier := range s {
		out[i] = tier.RefundPercent
	}
	return out
}
