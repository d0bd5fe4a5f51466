package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

// AdvisoryRepository turns a comparison summary into a short advisory
// narrative. Callers treat it as best-effort decoration on top of the
// deterministic recommendation.
type AdvisoryRepository interface {
	AdviseOnComparison(ctx context.Context, comparisonSummary string) (string, error)
}

type advisoryRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewAdvisoryRepository(apiKey string) (AdvisoryRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return advisoryRepositoryHandler{
		GptClient: client,
	}, nil
}

const advisoryPrompt = `
You are an agronomic planning advisor. You will receive a JSON summary of
a farm scenario comparison: each scenario's margin, ROI, detected risk
factors, its composite score, and the engine's recommendation for the
winner.

Write a short advisory (3-5 sentences) for the farm manager. Ground every
claim in the numbers provided - do not invent figures. Mention the winning
scenario by name, the main tradeoff against the runner-up, and any risk
factor the manager should watch. Plain prose, no bullet points.
`

func (h advisoryRepositoryHandler) AdviseOnComparison(ctx context.Context, comparisonSummary string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: advisoryPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: comparisonSummary,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get advisory completion: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("advisory completion returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}
