package response_models

import "encoding/json"

type OCRUploadResponse struct {
	DocumentID string          `json:"document_id"`
	Status     string          `json:"status"`
	Result     json.RawMessage `json:"result,omitempty"`
	Error      string          `json:"error,omitempty"`
}

type OCRDocumentResponse struct {
	DocumentID string          `json:"document_id"`
	Status     string          `json:"status"`
	CreatedAt  int64           `json:"created_at"`
	ParsedData json.RawMessage `json:"parsed_data,omitempty"`
}

type OcrContractResponse struct {
	DocumentID     string `json:"document_id"`
	PassID         string `json:"pass_id"`
	OrderID        string `json:"order_id"`
	SubscriptionID string `json:"subscription_id"`
	StartsAt       int64  `json:"starts_at"`
	EndsAt         *int64 `json:"ends_at,omitempty"`
	DurationDays   int64  `json:"duration_days"`
}
