package request_models

// RefundOrderRequest selects the business reason the refund is settled
// under; both reasons run the same calculation path.
type RefundOrderRequest struct {
	Reason string `json:"reason" binding:"omitempty,oneof=user_refund bankruptcy"`
}
