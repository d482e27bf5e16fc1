package utils

import (
	"context"
	"fmt"
	"strings"
)

// ExtractedRefundRule is a day-based refund rule as read off a printed
// contract; the OCR pipeline normalizes these into the canonical tier
// schedule later.
type ExtractedRefundRule struct {
	Days    int64 `json:"days"`
	Percent int64 `json:"percent"`
}

// ExtractedContract is the structured result of reading a membership
// contract image.
type ExtractedContract struct {
	BusinessName string                `json:"business_name"`
	ServiceType  string                `json:"service_type"`
	AmountKRW    int64                 `json:"amount_krw"`
	DurationDays int64                 `json:"duration_days"`
	RefundRules  []ExtractedRefundRule `json:"refund_rules"`
	Terms        string                `json:"terms"`
	RawText      string                `json:"raw_text"`
}

type ContractExtractorInterface interface {
	ExtractContract(ctx context.Context, imagePNG []byte, companyType string) (*ExtractedContract, error)
	Close() error
}

const extractionPrompt = `You are reading a photographed Korean membership contract for a %s.
Extract the following fields and answer with JSON only:
{
  "business_name": "string",
  "service_type": "string",
  "amount_krw": integer (total price in KRW, 0 if unreadable),
  "duration_days": integer (contract duration in days, 0 if unreadable),
  "refund_rules": [{"days": integer, "percent": integer}],
  "terms": "string (the refund/terms section verbatim)",
  "raw_text": "string (all visible text)"
}
refund_rules lists each tier as: within "days" days of the start date,
"percent" percent of the price is refunded.`

// NewContractExtractor Factory function to create either OpenAI or Gemini client based on config
func NewContractExtractor(provider, apiKey, model string) (ContractExtractorInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIContractExtractor(apiKey, model), nil
	case "gemini":
		return NewGeminiContractExtractor(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
