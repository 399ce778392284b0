// Package web serves the proposal form page and its static assets.
//
// The page works in two modes. With JavaScript, app.js posts JSON to the
// generation endpoint and renders the result in place. Without it, the form
// posts back to "/" and the page is rendered again in the success or error
// state.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/sonaeson/groupbuy-proposal/internal/proposal/domain"
	prophttp "github.com/sonaeson/groupbuy-proposal/internal/proposal/http"
)

//go:embed assets/index.html assets/static
var assets embed.FS

type Handler struct {
	svc     prophttp.Generator
	tmpl    *template.Template
	static  fs.FS
	version string
}

func New(svc prophttp.Generator, version string) (*Handler, error) {
	tmpl, err := template.ParseFS(assets, "assets/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	static, err := fs.Sub(assets, "assets/static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	return &Handler{svc: svc, tmpl: tmpl, static: static, version: version}, nil
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.index)
	r.POST("/", h.submit)
	r.StaticFS("/static", http.FS(h.static))
}

func (h *Handler) index(c *gin.Context) {
	h.render(c, http.StatusOK, Idle(), FormValues{})
}

func (h *Handler) submit(c *gin.Context) {
	form := FormValues{
		Product: c.PostForm("product"),
		Target:  c.PostForm("target"),
		Goal:    c.PostForm("goal"),
	}

	res, err := h.svc.Generate(c.Request.Context(), domain.ProposalRequest{
		Product: form.Product,
		Target:  form.Target,
		Goal:    domain.Quantity(form.Goal),
	})
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		h.render(c, http.StatusBadRequest, Failure(prophttp.MsgMissingFields), form)
	case err != nil:
		h.render(c, http.StatusInternalServerError, Failure(prophttp.MsgGenerationFailed), form)
	default:
		h.render(c, http.StatusOK, Success(res.Proposal), form)
	}
}

func (h *Handler) render(c *gin.Context, status int, state ViewState, form FormValues) {
	c.Render(status, render.HTML{
		Template: h.tmpl,
		Name:     "index.html",
		Data:     pageData{State: state, Form: form, Version: h.version},
	})
}
