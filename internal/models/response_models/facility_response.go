package response_models

type FacilityResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Address      string  `json:"address"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	MinPassID    string  `json:"min_pass_id,omitempty"`
	MinPrice     *int64  `json:"min_price,omitempty"`
	PriceDisplay string  `json:"price_display"`
}
