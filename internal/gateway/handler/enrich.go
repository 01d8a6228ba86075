package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchmate/internal/assembler"
)

type EnrichHandler struct {
	svc *assembler.Service
}

func NewEnrichHandler(svc *assembler.Service) *EnrichHandler {
	return &EnrichHandler{svc: svc}
}

// Section handles POST /enrich_section, the "More content" button.
func (h *EnrichHandler) Section(c *gin.Context) {
	var req assembler.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	out, err := h.svc.EnrichSection(c.Request.Context(), &req)
	if err != nil {
		respondEnrichError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type problemRequest struct {
	Problem string   `json:"problem"`
	Answers []string `json:"answers"`
}

// Problem handles POST /enrich_problem.
func (h *EnrichHandler) Problem(c *gin.Context) {
	var req problemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	out, err := h.svc.EnrichProblem(c.Request.Context(), req.Problem, req.Answers)
	if err != nil {
		respondEnrichError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Palette handles GET /palette. SuggestPalette always degrades to the
// default palette, so this cannot fail.
func (h *EnrichHandler) Palette(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.SuggestPalette(c.Request.Context()))
}

func respondEnrichError(c *gin.Context, err error) {
	var inputErr *assembler.InputError
	if errors.As(err, &inputErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": inputErr.Error()})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "enrichment failed"})
}
