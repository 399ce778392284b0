package bootstrap

import (
	"github.com/sonaeson/groupbuy-proposal/config"
	"github.com/sonaeson/groupbuy-proposal/internal/proposal/llm"
	"github.com/sonaeson/groupbuy-proposal/internal/proposal/service"
)

// NewProposalService wires the OpenAI client from cfg into a ProposalService.
// The client is built once at startup and shared by all requests.
func NewProposalService(cfg *config.Config) *service.ProposalService {
	client := llm.NewOpenAIClient(llm.Options{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Timeout: cfg.OpenAI.Timeout,
	})

	return service.NewProposalService(client, service.Options{
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
		MaxTokens:   cfg.OpenAI.MaxTokens,
	})
}
