package utils

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIContractExtractor implements ContractExtractorInterface over the
// OpenAI vision chat API.
type OpenAIContractExtractor struct {
	client *openai.Client
	model  string
}

func NewOpenAIContractExtractor(apiKey, model string) ContractExtractorInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIContractExtractor{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIContractExtractor) ExtractContract(ctx context.Context, imagePNG []byte, companyType string) (*ExtractedContract, error) {
	if companyType == "" {
		companyType = "gym"
	}

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(imagePNG)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: fmt.Sprintf(extractionPrompt, companyType),
					},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai extraction: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai extraction: empty response")
	}

	var extracted ExtractedContract
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &extracted); err != nil {
		return nil, fmt.Errorf("openai extraction: bad JSON: %w", err)
	}
	return &extracted, nil
}

func (c *OpenAIContractExtractor) Close() error { return nil }
