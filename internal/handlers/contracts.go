package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"CT-MUSICAL/internal/models"
	"CT-MUSICAL/internal/observability"
	"CT-MUSICAL/internal/services"
)

// maxSnapshotSize bounds uploaded snapshot files.
const maxSnapshotSize = 1 << 20

type ContractHandler struct {
	contracts *services.ContractService
}

func NewContractHandler(contracts *services.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

// ContractRequest is the body shared by generate, preview and summary.
// Absent choices take the form defaults.
type ContractRequest struct {
	Values                      models.FormValues `json:"values"`
	Sound                       string            `json:"som"`
	Catering                    string            `json:"alimentacao"`
	BeneficiarySameAsContracted bool              `json:"favorecido_igual_contratado"`
	TemplateID                  string            `json:"template_id"`
	PDF                         bool              `json:"pdf"`
}

func (r ContractRequest) choices() models.Choices {
	choices := models.Choices{
		Sound:                       models.SoundClient,
		Catering:                    models.CateringNo,
		BeneficiarySameAsContracted: r.BeneficiarySameAsContracted,
	}
	if r.Sound != "" {
		choices.Sound = models.SoundResponsibility(r.Sound)
	}
	if r.Catering != "" {
		choices.Catering = models.Catering(r.Catering)
	}
	return choices
}

func (r ContractRequest) values() models.FormValues {
	if r.Values == nil {
		return models.FormValues{}
	}
	return r.Values
}

type PreviewResponse struct {
	Placeholders map[string]string `json:"placeholders"`
	Missing      []string          `json:"missing"`
}

func bindContract(c *gin.Context) (ContractRequest, bool) {
	var req ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return req, false
	}
	return req, true
}

// Generate fills the template and writes the versioned docx and snapshot.
func (h *ContractHandler) Generate(c *gin.Context) {
	req, ok := bindContract(c)
	if !ok {
		return
	}

	result, err := h.contracts.Generate(c.Request.Context(), services.GenerateRequest{
		Values:     req.values(),
		Choices:    req.choices(),
		TemplateID: req.TemplateID,
		PDF:        req.PDF,
	})
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		logError(c, "contract generation failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": generateFailure(err)})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// generateFailure names the generation stage that failed.
func generateFailure(err error) string {
	switch {
	case errors.Is(err, services.ErrOutputDirectory):
		return "Failed to create output directory"
	case errors.Is(err, services.ErrSnapshotWrite):
		return "Failed to save contract snapshot"
	case errors.Is(err, services.ErrDocumentWrite):
		return "Failed to save contract document"
	}
	return "Failed to generate contract: " + err.Error()
}

// Preview returns the placeholder context without writing anything.
func (h *ContractHandler) Preview(c *gin.Context) {
	req, ok := bindContract(c)
	if !ok {
		return
	}

	ctx := h.contracts.Preview(req.values(), req.choices())
	missing := ctx.Missing()
	if missing == nil {
		missing = []string{}
	}
	c.JSON(http.StatusOK, PreviewResponse{Placeholders: ctx, Missing: missing})
}

// Summary returns the plain-text preview.
func (h *ContractHandler) Summary(c *gin.Context) {
	req, ok := bindContract(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, h.contracts.Summary(req.values(), req.choices()))
}

// LoadSnapshot decodes an uploaded JSON or YAML snapshot so the form can be
// refilled from it.
func (h *ContractHandler) LoadSnapshot(c *gin.Context) {
	file, header, err := c.Request.FormFile("snapshot")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if header.Size > maxSnapshotSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Snapshot file is too large"})
		return
	}

	snap, err := h.contracts.DecodeSnapshot(file, header.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid snapshot file"})
		return
	}

	c.JSON(http.StatusOK, snap)
}

// Download streams a generated .docx, .json or .pdf file.
func (h *ContractHandler) Download(c *gin.Context) {
	name := c.Param("name")

	path, err := h.contracts.OutputFile(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", services.ContentType(name))

	c.File(path)
}

func logError(c *gin.Context, msg string, err error) {
	observability.FromContext(c.Request.Context()).Error(msg, zap.Error(err))
}
