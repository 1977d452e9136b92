package services

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"CT-MUSICAL/internal/contract"
	"CT-MUSICAL/internal/observability"
	"CT-MUSICAL/internal/processor"
)

// MaxTemplateSize bounds uploaded templates.
const MaxTemplateSize = 20 << 20

// TemplateService resolves the contract template: the configured default or
// a custom upload stored in the upload directory under its uuid.
type TemplateService struct {
	defaultPath string
	uploadDir   string
	logger      *zap.Logger
}

// UploadedTemplate describes a stored custom template.
type UploadedTemplate struct {
	ID           string   `json:"template_id"`
	Filename     string   `json:"filename"`
	Size         int64    `json:"size"`
	Placeholders []string `json:"placeholders"`
	// Unknown lists placeholders the assembler never fills.
	Unknown []string `json:"unknown_placeholders,omitempty"`
}

func NewTemplateService(defaultPath, uploadDir string, logger *zap.Logger) *TemplateService {
	return &TemplateService{
		defaultPath: defaultPath,
		uploadDir:   uploadDir,
		logger:      observability.OrNop(logger),
	}
}

// UploadDir is where custom templates are stored.
func (s *TemplateService) UploadDir() string {
	return s.uploadDir
}

// UploadTemplate validates and stores a custom .docx template.
func (s *TemplateService) UploadTemplate(r io.Reader, filename string) (*UploadedTemplate, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".docx") {
		return nil, fmt.Errorf("%w: only .docx files are supported", ErrInvalidTemplate)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxTemplateSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > MaxTemplateSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidTemplate, MaxTemplateSize)
	}

	doc, err := processor.OpenBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	templateID := uuid.New().String()
	if err := os.WriteFile(s.path(templateID), data, 0644); err != nil {
		return nil, fmt.Errorf("failed to save template: %w", err)
	}

	placeholders := doc.Placeholders()
	s.logger.Info("template uploaded",
		zap.String("template_id", templateID),
		zap.String("filename", filename),
		zap.Int("placeholders", len(placeholders)),
	)

	return &UploadedTemplate{
		ID:           templateID,
		Filename:     filename,
		Size:         int64(len(data)),
		Placeholders: placeholders,
		Unknown:      contract.Unknown(placeholders),
	}, nil
}

// Open loads the template with the given id, or the default template when
// templateID is empty.
func (s *TemplateService) Open(templateID string) (*processor.Document, error) {
	path := s.defaultPath
	if templateID != "" {
		if _, err := uuid.Parse(templateID); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
		}
		path = s.path(templateID)
	}

	doc, err := processor.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return nil, err
	}
	return doc, nil
}

// GetPlaceholders lists the placeholders of a template.
func (s *TemplateService) GetPlaceholders(templateID string) ([]string, error) {
	doc, err := s.Open(templateID)
	if err != nil {
		return nil, err
	}
	return doc.Placeholders(), nil
}

func (s *TemplateService) path(templateID string) string {
	return filepath.Join(s.uploadDir, templateID+".docx")
}
