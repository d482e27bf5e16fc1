package request_models

// OcrContractRequest turns a completed OCR document into a pass, order
// and subscription. Fields left empty fall back to the extracted values.
type OcrContractRequest struct {
	DocumentID   string `json:"document_id" binding:"required,uuid"`
	StartAt      *int64 `json:"start_at"`
	Title        string `json:"title"`
	AmountKRW    *int64 `json:"amount_krw"`
	DurationDays *int64 `json:"duration_days"`
}
