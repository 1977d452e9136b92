package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"CT-MUSICAL/internal/contract"
	"CT-MUSICAL/internal/services"
)

type TemplateHandler struct {
	templates *services.TemplateService
}

func NewTemplateHandler(templates *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

type UploadResponse struct {
	*services.UploadedTemplate
	Message string `json:"message"`
}

type PlaceholderResponse struct {
	Placeholders []string `json:"placeholders"`
	Unknown      []string `json:"unknown"`
}

// UploadTemplate stores a custom .docx template and reports its placeholders.
func (h *TemplateHandler) UploadTemplate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxTemplateSize+1<<20)

	file, header, err := c.Request.FormFile("template")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	uploaded, err := h.templates.UploadTemplate(file, header.Filename)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTemplate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logError(c, "template upload failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		UploadedTemplate: uploaded,
		Message:          "Template uploaded successfully",
	})
}

// GetPlaceholders lists the placeholders of an uploaded template. The id
// "default" selects the built-in contract template.
func (h *TemplateHandler) GetPlaceholders(c *gin.Context) {
	templateID := c.Param("templateId")
	if templateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template ID is required"})
		return
	}
	if templateID == "default" {
		templateID = ""
	}

	placeholders, err := h.templates.GetPlaceholders(templateID)
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		logError(c, "failed to read template", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to extract placeholders"})
		return
	}

	unknown := contract.Unknown(placeholders)
	if unknown == nil {
		unknown = []string{}
	}
	c.JSON(http.StatusOK, PlaceholderResponse{Placeholders: placeholders, Unknown: unknown})
}
