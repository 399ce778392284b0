package service

import (
	"context"
	"time"

	"github.com/sonaeson/groupbuy-proposal/internal/proposal/domain"
	"github.com/sonaeson/groupbuy-proposal/internal/proposal/llm"
	"github.com/sonaeson/groupbuy-proposal/internal/proposal/prompt"
)

// Options are the fixed sampling parameters sent with every completion.
type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// ProposalService turns a validated ProposalRequest into a proposal text
// with exactly one completion call.
type ProposalService struct {
	completer llm.Completer
	opts      Options
}

// NewProposalService creates a new ProposalService
func NewProposalService(completer llm.Completer, opts Options) *ProposalService {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &ProposalService{completer: completer, opts: opts}
}

// Generate validates req, calls the completion service once and returns the
// first choice verbatim. ctx is passed through, so cancelling it aborts the
// upstream call.
func (s *ProposalService) Generate(ctx context.Context, req domain.ProposalRequest) (*domain.ProposalResult, error) {
	logger := NewLogger(ctx)

	if err := req.Validate(); err != nil {
		recordValidationFailure()
		logger.LogWarnf(opGenerate, "rejected request: %v", err)
		return nil, err
	}

	userPrompt, err := prompt.Build(req)
	if err != nil {
		logger.LogError(opGenerate, err)
		return nil, err
	}

	start := time.Now()
	resp, err := s.completer.CreateChatCompletion(ctx, llm.ChatRequest{
		Model: s.opts.Model,
		Messages: []llm.ChatMessage{
			{Role: llm.RoleSystem, Content: prompt.SystemPersona},
			{Role: llm.RoleUser, Content: userPrompt},
		},
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	})
	duration := time.Since(start)

	if err == nil && (resp == nil || len(resp.Choices) == 0) {
		err = domain.ErrEmptyCompletion
	}
	recordUpstreamCall(duration, err)
	if err != nil {
		logger.LogError(opGenerate, err)
		return nil, &domain.UpstreamError{Op: "chat completion", Err: err}
	}

	recordProposalGenerated()
	logger.LogInfof(opGenerate, "proposal generated model=%s latency=%s chars=%d", s.opts.Model, duration, len(resp.Choices[0].Content))
	return &domain.ProposalResult{Proposal: resp.Choices[0].Content}, nil
}
