package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sonaeson/groupbuy-proposal/internal/proposal/domain"
)

func (h *Handler) generate(c *gin.Context) {
	var req domain.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An empty body is treated like an empty object.
		if !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidBody})
			return
		}
	}

	res, err := h.svc.Generate(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrMissingFields) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgMissingFields})
		return
	}

	resp := ErrorResponse{Error: MsgGenerationFailed}
	if h.exposeDetails {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// MethodNotAllowed answers any non-POST call to a known path. It runs before
// the body is read.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: MsgMethodNotAllowed})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: MsgNotFound})
}
