package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonaeson/groupbuy-proposal/internal/proposal/domain"
	"github.com/sonaeson/groupbuy-proposal/internal/proposal/llm"
	"github.com/sonaeson/groupbuy-proposal/internal/proposal/prompt"
)

type fakeCompleter struct {
	mu    sync.Mutex
	calls []llm.ChatRequest
	resp  *llm.ChatResponse
	err   error
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.resp, f.err
}

func reply(texts ...string) *llm.ChatResponse {
	resp := &llm.ChatResponse{}
	for i, t := range texts {
		resp.Choices = append(resp.Choices, llm.Choice{Index: i, Content: t})
	}
	return resp
}

var validReq = domain.ProposalRequest{Product: "국산 참기름", Target: "요리를 즐기는 1인 가구", Goal: "300"}

func TestGenerate_ReturnsFirstChoiceVerbatim(t *testing.T) {
	ResetMetrics()
	fake := &fakeCompleter{resp: reply("1. 제품 소개\n  내용\n\n2. 타겟", "ignored")}
	svc := NewProposalService(fake, Options{Model: "gpt-4", Temperature: 0.7, MaxTokens: 1500})

	res, err := svc.Generate(context.Background(), validReq)
	require.NoError(t, err)
	assert.Equal(t, "1. 제품 소개\n  내용\n\n2. 타겟", res.Proposal)

	require.Len(t, fake.calls, 1)
	call := fake.calls[0]
	assert.Equal(t, "gpt-4", call.Model)
	assert.InDelta(t, 0.7, call.Temperature, 0.0001)
	assert.Equal(t, 1500, call.MaxTokens)

	require.Len(t, call.Messages, 2)
	assert.Equal(t, llm.RoleSystem, call.Messages[0].Role)
	assert.Equal(t, prompt.SystemPersona, call.Messages[0].Content)
	assert.Equal(t, llm.RoleUser, call.Messages[1].Role)
	assert.Contains(t, call.Messages[1].Content, validReq.Product)
	assert.Contains(t, call.Messages[1].Content, validReq.Target)
	assert.Contains(t, call.Messages[1].Content, string(validReq.Goal))

	m := GetMetrics()
	assert.Equal(t, int64(1), m.Stats().UpstreamCalls)
	assert.Equal(t, int64(1), m.Stats().ProposalsGenerated)
}

func TestGenerate_DefaultsApplied(t *testing.T) {
	fake := &fakeCompleter{resp: reply("ok")}
	svc := NewProposalService(fake, Options{})

	_, err := svc.Generate(context.Background(), validReq)
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, DefaultModel, fake.calls[0].Model)
	assert.Equal(t, DefaultMaxTokens, fake.calls[0].MaxTokens)
}

func TestGenerate_MissingFieldsSkipsUpstream(t *testing.T) {
	ResetMetrics()
	cases := []domain.ProposalRequest{
		{Target: "t", Goal: "1"},
		{Product: "p", Goal: "1"},
		{Product: "p", Target: "t"},
		{Product: " ", Target: "t", Goal: "1"},
	}

	for _, req := range cases {
		fake := &fakeCompleter{resp: reply("unused")}
		svc := NewProposalService(fake, Options{})

		res, err := svc.Generate(context.Background(), req)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrMissingFields)
		assert.Empty(t, fake.calls)
	}

	assert.Equal(t, int64(len(cases)), GetMetrics().Stats().ValidationFailures)
	assert.Equal(t, int64(0), GetMetrics().Stats().UpstreamCalls)
}

func TestGenerate_EmptyContentIsRelayed(t *testing.T) {
	ResetMetrics()
	fake := &fakeCompleter{resp: reply("", "second")}
	svc := NewProposalService(fake, Options{})

	res, err := svc.Generate(context.Background(), validReq)
	require.NoError(t, err)
	assert.Equal(t, "", res.Proposal)

	stats := GetMetrics().Stats()
	assert.Equal(t, int64(0), stats.UpstreamErrors)
	assert.Equal(t, int64(1), stats.ProposalsGenerated)
}

func TestGenerate_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name  string
		fake  *fakeCompleter
		cause error
	}{
		{"transport error", &fakeCompleter{err: errors.New("dial tcp: connection refused")}, nil},
		{"no choices", &fakeCompleter{resp: reply()}, domain.ErrEmptyCompletion},
		{"nil response", &fakeCompleter{}, domain.ErrEmptyCompletion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetMetrics()
			svc := NewProposalService(tt.fake, Options{})

			res, err := svc.Generate(context.Background(), validReq)
			assert.Nil(t, res)

			var upErr *domain.UpstreamError
			require.True(t, errors.As(err, &upErr))
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
			assert.Len(t, tt.fake.calls, 1)

			stats := GetMetrics().Stats()
			assert.Equal(t, int64(1), stats.UpstreamErrors)
			assert.InDelta(t, 100.0, stats.ErrorRatePct, 0.001)
		})
	}
}

func TestGenerate_CanceledContextPropagates(t *testing.T) {
	fake := &fakeCompleter{resp: reply("late")}
	svc := NewProposalService(fake, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, validReq)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_ConcurrentRequestsAreIndependent(t *testing.T) {
	fake := &fakeCompleter{resp: reply("same")}
	svc := NewProposalService(fake, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Generate(context.Background(), validReq)
			assert.NoError(t, err)
			assert.Equal(t, "same", res.Proposal)
		}()
	}
	wg.Wait()

	assert.Len(t, fake.calls, 16)
}
