package response_models

type PurchaseResponse struct {
	OrderID         string `json:"order_id"`
	SubscriptionID  string `json:"subscription_id"`
	ContractAddress string `json:"contract_address"`
	AmountMinor     int64  `json:"amount_minor"`
	StartsAt        int64  `json:"starts_at"`
	EndsAt          int64  `json:"ends_at"`
}

type RefundResponse struct {
	RefundID       string `json:"refund_id"`
	OrderID        string `json:"order_id"`
	AmountMinor    int64  `json:"amount_minor"`
	Reason         string `json:"reason"`
	ElapsedMinutes int64  `json:"elapsed_minutes"`
	RefundPercent  int64  `json:"refund_percent"`
}

type MyOrderResponse struct {
	OrderID         string `json:"order_id"`
	PassTitle       string `json:"pass_title"`
	AmountMinor     int64  `json:"amount_minor"`
	DurationMinutes int64  `json:"duration_minutes"`
	ContractAddress string `json:"contract_address,omitempty"`
	StartsAt        int64  `json:"starts_at"`
	EndsAt          *int64 `json:"ends_at,omitempty"`
	OrderStatus     string `json:"order_status"`
	SubStatus       string `json:"subscription_status"`
}
