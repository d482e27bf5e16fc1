package request_models

import "blockpass/internal/refundpolicy"

// CreatePassRequest carries either a minute duration or a legacy
// day-based one; the service resolves days*1440 when minutes are absent.
type CreatePassRequest struct {
	Title           string                 `json:"title" binding:"required"`
	Terms           string                 `json:"terms"`
	PriceMinor      int64                  `json:"price_minor" binding:"required,gt=0"`
	DurationMinutes *int64                 `json:"duration_minutes"`
	DurationDays    *int64                 `json:"duration_days"`
	RefundRules     []refundpolicy.RawRule `json:"refund_rules"`
	ContractAddress string                 `json:"contract_address"`
	ContractChain   string                 `json:"contract_chain"`
}

// DeployPassRequest records where the settlement contract for a pass
// ended up.
type DeployPassRequest struct {
	ContractAddress string `json:"contract_address"`
	ContractChain   string `json:"contract_chain"`
}
