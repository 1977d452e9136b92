package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"CT-MUSICAL/internal/models"
	"CT-MUSICAL/internal/services"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 1000
)

// RecordReader reads the generation history.
type RecordReader interface {
	Get(ctx context.Context, id string) (*models.ContractRecord, error)
	List(ctx context.Context, artist string, limit, offset int) ([]models.ContractRecord, int64, error)
}

type HistoryHandler struct {
	records RecordReader
}

func NewHistoryHandler(records RecordReader) *HistoryHandler {
	return &HistoryHandler{records: records}
}

type HistoryResponse struct {
	Records    []models.ContractRecord `json:"records"`
	Total      int64                   `json:"total"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"total_pages"`
}

// List returns generated contracts with pagination, newest first.
// ?artista= filters by the musical act.
func (h *HistoryHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		page = 1
	}

	offset := (page - 1) * limit

	records, total, err := h.records.List(c.Request.Context(), c.Query("artista"), limit, offset)
	if err != nil {
		if errors.Is(err, services.ErrDatabaseDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History is not available"})
			return
		}
		logError(c, "failed to list contract records", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	if records == nil {
		records = []models.ContractRecord{}
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Records:    records,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	})
}

// Get returns one generation record.
func (h *HistoryHandler) Get(c *gin.Context) {
	record, err := h.records.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDatabaseDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History is not available"})
		case errors.Is(err, services.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		default:
			logError(c, "failed to fetch contract record", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch record"})
		}
		return
	}

	c.JSON(http.StatusOK, record)
}
