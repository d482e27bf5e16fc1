package response_models

import "blockpass/internal/refundpolicy"

type PassResponse struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	Terms           string                `json:"terms"`
	PriceMinor      int64                 `json:"price_minor"`
	DurationMinutes int64                 `json:"duration_minutes"`
	RefundSchedule  refundpolicy.Schedule `json:"refund_schedule"`
	ContractAddress string                `json:"contract_address,omitempty"`
	ContractChain   string                `json:"contract_chain,omitempty"`
	Status          string                `json:"status"`
	CreatedAt       int64                 `json:"created_at"`
}
