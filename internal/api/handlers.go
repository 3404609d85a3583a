package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio_ai_server/internal/ai"
	"portfolio_ai_server/internal/archive"
	"portfolio_ai_server/internal/site"
	"portfolio_ai_server/internal/types"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator *ai.Generator
	store     *archiveStore
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(generator *ai.Generator) *APIHandler {
	return &APIHandler{
		generator: generator,
		store:     newArchiveStore(),
	}
}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateResponse struct {
	PortfolioID string `json:"portfolioId"`
}

// ErrorResponse is the body of every failed generation. RawReply is set
// only when the model answered but the reply had no recognizable HTML
// section; it is shown to the user verbatim for diagnosis.
type ErrorResponse struct {
	Error    string `json:"error"`
	RawReply string `json:"rawReply,omitempty"`
}

// --- API Handlers ---

// POST /portfolio/generate
func (h *APIHandler) GeneratePortfolio(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please enter your details."})
		return
	}

	reply, err := h.generator.GeneratePortfolio(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Printf("Error generating portfolio: %v", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "The model request failed. Please try again."})
		return
	}

	bundle, err := site.ParseReply(reply)
	if err != nil {
		var unrec *site.UnrecognizedReplyError
		if errors.As(err, &unrec) {
			log.Printf("Model reply had no usable HTML section (%d bytes)", len(unrec.Raw))
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:    "Failed to generate website.",
				RawReply: unrec.Raw,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to parse model reply."})
		return
	}

	bundle.HTML = site.RepairHTML(bundle.HTML)

	data, err := archive.Pack(bundle)
	if err != nil {
		log.Printf("Error packing archive: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to package website files."})
		return
	}

	portfolioID := uuid.New().String()
	h.store.set(portfolioID, data)

	log.Printf("Portfolio %s generated (%d bytes zipped)", portfolioID, len(data))
	c.JSON(http.StatusCreated, GenerateResponse{PortfolioID: portfolioID})
}

// GET /portfolio/:id/download
func (h *APIHandler) DownloadPortfolio(c *gin.Context) {
	id := c.Param("id")
	data, ok := h.store.get(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Portfolio not found"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", types.ArchiveName))
	c.Data(http.StatusOK, "application/zip", data)
}
