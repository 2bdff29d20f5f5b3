package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cataloglens/backend/internal/domain"
	"github.com/cataloglens/backend/internal/infrastructure/csvio"
	"github.com/cataloglens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	enricher    *usecase.Enricher
	maxRows     int
	maxRawBytes int
}

// NewHandler creates a new HTTP handler
func NewHandler(enricher *usecase.Enricher, maxRows, maxRawBytes int) *Handler {
	return &Handler{
		enricher:    enricher,
		maxRows:     maxRows,
		maxRawBytes: maxRawBytes,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cataloglens-backend",
		"version": "1.0.0",
	})
}

type enrichRequest struct {
	Catalog []domain.Row `json:"catalog"`
	RawData string       `json:"rawData"`
}

// EnrichCatalog fills missing fields on every catalog row from the raw
// product text and responds with the full enriched catalog. Either the
// whole catalog comes back or an error does, never a partial result.
func (h *Handler) EnrichCatalog(c *gin.Context) {
	var req enrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid catalog data"})
		return
	}

	if h.maxRows > 0 && len(req.Catalog) > h.maxRows {
		h.respondEnrichError(c, domain.ErrCatalogTooLarge)
		return
	}
	if h.maxRawBytes > 0 && len(req.RawData) > h.maxRawBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Raw data exceeds maximum size"})
		return
	}

	enriched, err := h.enrichSafely(req.Catalog, req.RawData)
	if err != nil {
		h.respondEnrichError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"enrichedCatalog": enriched})
}

// enrichSafely runs the engine and converts any panic from malformed row
// data into an error, so one bad request cannot take down the worker.
func (h *Handler) enrichSafely(catalog []domain.Row, rawData string) (enriched []domain.Row, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrEnrichmentFailed, r)
		}
	}()
	return h.enricher.Enrich(catalog, rawData)
}

// respondEnrichError maps engine errors to the boundary contract.
// Internal causes are logged here, never exposed to the caller.
func (h *Handler) respondEnrichError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCatalog):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid catalog data"})
	case errors.Is(err, domain.ErrRawDataRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Raw data is required"})
	case errors.Is(err, domain.ErrCatalogTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Catalog exceeds maximum size"})
	default:
		log.Printf("[ENRICH] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enrich catalog"})
	}
}

// ImportCatalog parses an uploaded delimited file into catalog rows.
// Accepts either a multipart "file" field or a raw CSV request body.
func (h *Handler) ImportCatalog(c *gin.Context) {
	var src io.Reader = c.Request.Body
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			log.Printf("[IMPORT] open upload: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid catalog file"})
			return
		}
		defer f.Close()
		src = f
	}

	catalog, err := csvio.ParseCatalog(src)
	if err != nil {
		log.Printf("[IMPORT] parse: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid catalog file"})
		return
	}
	if h.maxRows > 0 && len(catalog) > h.maxRows {
		h.respondEnrichError(c, domain.ErrCatalogTooLarge)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"catalog": catalog,
		"rows":    len(catalog),
	})
}

type exportRequest struct {
	Catalog []domain.Row `json:"catalog"`
}

// ExportCatalog serializes catalog rows back to a downloadable CSV file.
func (h *Handler) ExportCatalog(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Catalog) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid catalog data"})
		return
	}

	var buf bytes.Buffer
	if err := csvio.WriteCatalog(&buf, req.Catalog); err != nil {
		log.Printf("[EXPORT] write: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export catalog"})
		return
	}

	filename := fmt.Sprintf("enriched_catalog_%d.csv", time.Now().Unix())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

type commandRequest struct {
	Command string       `json:"command"`
	Catalog []domain.Row `json:"catalog,omitempty"`
	RawData string       `json:"rawData,omitempty"`
}

// AssistantCommand classifies a free-text command and dispatches it.
// A process command carrying a catalog and raw text runs the engine;
// everything else gets a canned reply.
func (h *Handler) AssistantCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid command"})
		return
	}

	intent := usecase.ClassifyIntent(req.Command)
	resp := gin.H{"intent": intent.String()}

	switch intent {
	case usecase.IntentGreet:
		resp["reply"] = "Hello! I can help you enrich your product catalog."
	case usecase.IntentStatus:
		if len(req.Catalog) > 0 {
			resp["reply"] = fmt.Sprintf("Your catalog has %d products loaded.", len(req.Catalog))
		} else {
			resp["reply"] = "No catalog is loaded yet. Import one to get started."
		}
	case usecase.IntentHelp:
		resp["reply"] = "Try: 'process my products', 'catalog status', or import a CSV file to begin."
	case usecase.IntentProcess:
		if len(req.Catalog) == 0 || strings.TrimSpace(req.RawData) == "" {
			resp["reply"] = "Upload a catalog and raw product details first, then ask me to process it."
			break
		}
		enriched, err := h.enrichSafely(req.Catalog, req.RawData)
		if err != nil {
			h.respondEnrichError(c, err)
			return
		}
		resp["reply"] = fmt.Sprintf("Done! Enriched %d products.", len(enriched))
		resp["enrichedCatalog"] = enriched
	default:
		resp["reply"] = "Sorry, I didn't understand that. Say 'help' to see what I can do."
	}

	c.JSON(http.StatusOK, resp)
}
