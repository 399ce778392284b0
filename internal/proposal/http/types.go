package http

import (
	"context"

	"github.com/sonaeson/groupbuy-proposal/internal/proposal/domain"
)

// User-facing messages. Technical detail never goes into these.
const (
	MsgMissingFields    = "모든 필드를 입력해주세요."
	MsgInvalidBody      = "잘못된 요청 형식입니다."
	MsgGenerationFailed = "제안서 생성 중 오류가 발생했습니다."
	MsgMethodNotAllowed = "허용되지 않은 메서드입니다."
	MsgNotFound         = "요청한 경로를 찾을 수 없습니다."
)

// Generator is the part of the proposal service the handlers depend on.
type Generator interface {
	Generate(ctx context.Context, req domain.ProposalRequest) (*domain.ProposalResult, error)
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Handler serves the JSON generation endpoint.
type Handler struct {
	svc           Generator
	exposeDetails bool
}

// New creates a new Handler. When exposeDetails is set, 500 responses carry
// the upstream error text in the separate details field.
func New(svc Generator, exposeDetails bool) *Handler {
	return &Handler{svc: svc, exposeDetails: exposeDetails}
}
