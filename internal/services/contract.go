package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"CT-MUSICAL/internal/contract"
	"CT-MUSICAL/internal/models"
	"CT-MUSICAL/internal/observability"
	"CT-MUSICAL/internal/processor"
	"CT-MUSICAL/internal/snapshot"
	"CT-MUSICAL/internal/storage"
)

const (
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	jsonContentType = "application/json"
	pdfContentType  = "application/pdf"
)

// PDFConverter turns a generated docx into a PDF next to it.
type PDFConverter interface {
	ConvertFile(ctx context.Context, docxPath, pdfPath string, landscape bool) error
}

// Archiver copies a generated file to long-term storage.
type Archiver interface {
	Archive(ctx context.Context, base, localPath, contentType string) (*storage.UploadResult, error)
	DeleteFile(ctx context.Context, objectName string) error
}

// RecordStore keeps the generation history.
type RecordStore interface {
	Create(ctx context.Context, record *models.ContractRecord) error
}

// ContractDeps wires a ContractService. PDF, Archive and Records are optional.
type ContractDeps struct {
	Templates *TemplateService
	OutputDir string
	Assembler *contract.Assembler
	PDF       PDFConverter
	Archive   Archiver
	Records   RecordStore
	Logger    *zap.Logger
}

// ContractService generates contract documents and their snapshots.
type ContractService struct {
	templates *TemplateService
	outputDir string
	assembler *contract.Assembler
	pdf       PDFConverter
	archive   Archiver
	records   RecordStore
	logger    *zap.Logger

	// mu serializes version selection and the writes that claim it.
	mu sync.Mutex
}

type GenerateRequest struct {
	Values     models.FormValues
	Choices    models.Choices
	TemplateID string
	PDF        bool
}

type GenerateResult struct {
	BaseName       string   `json:"base_name"`
	Version        int      `json:"version"`
	Document       string   `json:"document"`
	Snapshot       string   `json:"snapshot"`
	PDF            string   `json:"pdf,omitempty"`
	RecordID       string   `json:"record_id,omitempty"`
	ArchiveObjects []string `json:"archive_objects,omitempty"`
	// Missing lists template placeholders that resolved to no text.
	Missing  []string `json:"missing_placeholders,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func NewContractService(deps ContractDeps) *ContractService {
	assembler := deps.Assembler
	if assembler == nil {
		assembler = contract.NewAssembler()
	}
	return &ContractService{
		templates: deps.Templates,
		outputDir: deps.OutputDir,
		assembler: assembler,
		pdf:       deps.PDF,
		archive:   deps.Archive,
		records:   deps.Records,
		logger:    observability.OrNop(deps.Logger),
	}
}

// Preview returns the placeholder context without touching the disk.
func (s *ContractService) Preview(values models.FormValues, choices models.Choices) contract.Context {
	return s.assembler.Build(values, choices)
}

// Summary returns the plain-text preview of the contract.
func (s *ContractService) Summary(values models.FormValues, choices models.Choices) string {
	return contract.Summary(models.FromValues(values, choices))
}

// DecodeSnapshot reads an uploaded snapshot; name selects JSON or YAML.
func (s *ContractService) DecodeSnapshot(r io.Reader, name string) (snapshot.Snapshot, error) {
	return snapshot.DecodeNamed(name, r)
}

// Generate fills the template, writes the docx and its snapshot under a new
// version, then runs the optional PDF export, archive upload and history
// record. Failures of the optional steps become warnings.
func (s *ContractService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	logger := observability.FromContextOr(ctx, s.logger)

	values := req.Values.Clone()

	tmpl, err := s.templates.Open(req.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}

	placeholders := s.assembler.Build(values, req.Choices)
	filled := tmpl.Fill(placeholders)

	base := snapshot.BaseName(values.Get(models.KeyEventAct), values.Get(models.KeyEventDate))
	snap := snapshot.New(values, req.Choices)

	version, err := s.write(base, filled, &snap)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		BaseName: base,
		Version:  version,
		Document: snapshot.DocumentName(base, version),
		Snapshot: snapshot.SnapshotName(base, version),
	}
	for _, name := range tmpl.Placeholders() {
		if placeholders[name] == "" {
			result.Missing = append(result.Missing, name)
		}
	}

	logger.Info("contract generated",
		zap.String("document", result.Document),
		zap.Int("version", version),
		zap.Int("missing_placeholders", len(result.Missing)),
	)

	files := []archiveFile{
		{path: s.path(result.Document), contentType: docxContentType},
		{path: s.path(result.Snapshot), contentType: jsonContentType},
	}

	if req.PDF {
		if err := s.exportPDF(ctx, result, filled.Layout().Landscape); err != nil {
			logger.Warn("PDF export failed", zap.String("document", result.Document), zap.Error(err))
			result.Warnings = append(result.Warnings, err.Error())
		} else {
			files = append(files, archiveFile{path: s.path(result.PDF), contentType: pdfContentType})
		}
	}

	if s.archive != nil {
		objects, err := s.archiveFiles(ctx, base, files)
		if err != nil {
			logger.Warn("archive upload failed", zap.String("document", result.Document), zap.Error(err))
			result.Warnings = append(result.Warnings, err.Error())
		} else {
			result.ArchiveObjects = objects
		}
	}

	if s.records != nil {
		id, err := s.record(ctx, result, snap, values)
		if err != nil {
			logger.Warn("history record failed", zap.String("document", result.Document), zap.Error(err))
			result.Warnings = append(result.Warnings, err.Error())
		} else {
			result.RecordID = id
		}
	}

	return result, nil
}

// write claims the next free version of base and writes the snapshot and the
// document. If the document cannot be written the snapshot is removed again.
func (s *ContractService) write(base string, doc *processor.Document, snap *snapshot.Snapshot) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOutputDirectory, err)
	}

	version, err := snapshot.NextVersion(s.outputDir, base)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOutputDirectory, err)
	}
	snap.Version = version

	snapPath, err := s.outputPath(snapshot.SnapshotName(base, version))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
	}
	docPath, err := s.outputPath(snapshot.DocumentName(base, version))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDocumentWrite, err)
	}

	if err := snapshot.Save(snapPath, *snap); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
	}

	if err := doc.Save(docPath); err != nil {
		os.Remove(snapPath)
		return 0, fmt.Errorf("%w: %w", ErrDocumentWrite, err)
	}

	return version, nil
}

func (s *ContractService) exportPDF(ctx context.Context, result *GenerateResult, landscape bool) error {
	if s.pdf == nil {
		return errors.New("PDF export is not configured")
	}
	name := snapshot.PDFName(result.BaseName, result.Version)
	if err := s.pdf.ConvertFile(ctx, s.path(result.Document), s.path(name), landscape); err != nil {
		return err
	}
	result.PDF = name
	return nil
}

type archiveFile struct {
	path        string
	contentType string
}

func (s *ContractService) archiveFiles(ctx context.Context, base string, files []archiveFile) ([]string, error) {
	objects := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			res, err := s.archive.Archive(gctx, base, f.path, f.contentType)
			if err != nil {
				return fmt.Errorf("failed to archive %s: %w", filepath.Base(f.path), err)
			}
			objects[i] = res.ObjectName
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.discard(ctx, objects)
		return nil, err
	}
	return objects, nil
}

// discard removes the objects of a partially archived version.
func (s *ContractService) discard(ctx context.Context, objects []string) {
	logger := observability.FromContextOr(ctx, s.logger)
	for _, name := range objects {
		if name == "" {
			continue
		}
		if err := s.archive.DeleteFile(ctx, name); err != nil {
			logger.Warn("failed to remove partial archive object", zap.String("object", name), zap.Error(err))
		}
	}
}

func (s *ContractService) record(ctx context.Context, result *GenerateResult, snap snapshot.Snapshot, values models.FormValues) (string, error) {
	snapJSON, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	record := &models.ContractRecord{
		ID:           uuid.New().String(),
		BaseName:     result.BaseName,
		Version:      result.Version,
		Artist:       values.Get(models.KeyEventAct),
		EventDate:    values.Get(models.KeyEventDate),
		DocumentPath: s.path(result.Document),
		SnapshotPath: s.path(result.Snapshot),
		Snapshot:     datatypes.JSON(snapJSON),
		Status:       models.RecordStatusGenerated,
	}
	if result.PDF != "" {
		record.PDFPath = s.path(result.PDF)
	}
	if len(result.ArchiveObjects) > 0 {
		objects, err := json.Marshal(result.ArchiveObjects)
		if err != nil {
			return "", fmt.Errorf("failed to marshal archive objects: %w", err)
		}
		record.ArchiveObjects = datatypes.JSON(objects)
		record.Status = models.RecordStatusArchived
	}

	if err := s.records.Create(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

// OutputFile resolves a generated file name to its path in the output
// directory. Only bare .docx, .json and .pdf names are accepted.
func (s *ContractService) OutputFile(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case snapshot.DocumentExt, snapshot.SnapshotExt, snapshot.PDFExt:
	default:
		return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
	}

	path := s.path(name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
	}
	return path, nil
}

// ContentType returns the MIME type served for a generated file.
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case snapshot.DocumentExt:
		return docxContentType
	case snapshot.PDFExt:
		return pdfContentType
	default:
		return jsonContentType
	}
}

func (s *ContractService) path(name string) string {
	return filepath.Join(s.outputDir, name)
}

// outputPath joins name to the output directory and rejects names that would
// land anywhere else.
func (s *ContractService) outputPath(name string) (string, error) {
	path := s.path(name)
	if filepath.Dir(path) != filepath.Clean(s.outputDir) {
		return "", fmt.Errorf("%q is outside the output directory", name)
	}
	return path, nil
}
