package services

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/starwalkn/gotenberg-go-client/v8"
	"github.com/starwalkn/gotenberg-go-client/v8/document"
	"go.uber.org/zap"

	"CT-MUSICAL/internal/observability"
)

const pdfAttempts = 3

// PDFService converts generated contracts to PDF through a Gotenberg
// LibreOffice route.
type PDFService struct {
	client  *gotenberg.Client
	timeout time.Duration
	backoff time.Duration
	logger  *zap.Logger
}

func NewPDFService(gotenbergURL string, timeoutStr string, logger *zap.Logger) (*PDFService, error) {
	logger = observability.OrNop(logger)

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		logger.Warn("invalid Gotenberg timeout, using default",
			zap.String("timeout", timeoutStr),
			zap.Duration("default", timeout),
			zap.Error(err),
		)
	}

	client, err := gotenberg.NewClient(gotenbergURL, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gotenberg client: %w", err)
	}

	return &PDFService{
		client:  client,
		timeout: timeout,
		backoff: time.Second,
		logger:  logger,
	}, nil
}

// ConvertFile converts the docx at docxPath and stores the PDF at pdfPath.
// Failed attempts are retried with a linear backoff.
func (s *PDFService) ConvertFile(ctx context.Context, docxPath, pdfPath string, landscape bool) error {
	var lastErr error

	for attempt := 1; attempt <= pdfAttempts; attempt++ {
		lastErr = s.convertOnce(ctx, docxPath, pdfPath, landscape)
		if lastErr == nil {
			return nil
		}

		s.logger.Warn("PDF conversion attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", pdfAttempts),
			zap.String("document", filepath.Base(docxPath)),
			zap.Error(lastErr),
		)

		if attempt < pdfAttempts {
			select {
			case <-ctx.Done():
				return fmt.Errorf("PDF conversion cancelled: %w", ctx.Err())
			case <-time.After(time.Duration(attempt) * s.backoff):
			}
		}
	}

	return fmt.Errorf("failed to convert document after %d attempts: %w", pdfAttempts, lastErr)
}

func (s *PDFService) convertOnce(ctx context.Context, docxPath, pdfPath string, landscape bool) error {
	convertCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc, err := document.FromPath(filepath.Base(docxPath), docxPath)
	if err != nil {
		return fmt.Errorf("failed to create document from path: %w", err)
	}

	req := gotenberg.NewLibreOfficeRequest(doc)
	if landscape {
		req.Landscape()
	}

	if err := s.client.Store(convertCtx, req, pdfPath); err != nil {
		return fmt.Errorf("failed to store converted document: %w", err)
	}
	return nil
}
