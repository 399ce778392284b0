package http

import "github.com/gin-gonic/gin"

// Register attaches the generation endpoint under both deployment shapes.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/generate-proposal", h.generate)
	r.POST("/api/generate-proposal", h.generate)
}
