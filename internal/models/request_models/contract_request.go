package request_models

import "blockpass/internal/refundpolicy"

// SolidityRequest is the contract-generation payload: a pass described
// in business terms, rendered into deployable Solidity source.
type SolidityRequest struct {
	PassName      string                 `json:"pass_name" binding:"required"`
	PriceETH      string                 `json:"price_eth"`
	DurationValue int64                  `json:"duration_value" binding:"required,gt=0"`
	DurationUnit  string                 `json:"duration_unit" binding:"required"`
	RefundRules   []refundpolicy.RawRule `json:"refund_rules" binding:"required"`
	Terms         string                 `json:"terms"`
}
