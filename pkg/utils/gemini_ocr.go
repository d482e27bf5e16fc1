package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiContractExtractor implements ContractExtractorInterface using Google's Gemini models
type GeminiContractExtractor struct {
	client *genai.Client
	model  string
}

// NewGeminiContractExtractor creates a new Gemini client
func NewGeminiContractExtractor(apiKey, model string) (ContractExtractorInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiContractExtractor{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiContractExtractor) ExtractContract(ctx context.Context, imagePNG []byte, companyType string) (*ExtractedContract, error) {
	if companyType == "" {
		companyType = "gym"
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only so the response parses without brace hunting:
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)

	resp, err := m.GenerateContent(ctx,
		genai.ImageData("png", imagePNG),
		genai.Text(fmt.Sprintf(extractionPrompt, companyType)),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini extraction: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini extraction: empty response")
	}

	var raw string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw += string(text)
		}
	}

	var extracted ExtractedContract
	if err := json.Unmarshal([]byte(raw), &extracted); err != nil {
		return nil, fmt.Errorf("gemini extraction: bad JSON: %w", err)
	}
	return &extracted, nil
}

// Close closes the Gemini client
func (c *GeminiContractExtractor) Close() error {
	return c.client.Close()
}
