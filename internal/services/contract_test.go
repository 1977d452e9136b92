package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CT-MUSICAL/internal/contract"
	"CT-MUSICAL/internal/models"
	"CT-MUSICAL/internal/processor"
	"CT-MUSICAL/internal/snapshot"
	"CT-MUSICAL/internal/storage"
)

type fakePDF struct {
	err       error
	landscape bool
}

func (f *fakePDF) ConvertFile(_ context.Context, docxPath, pdfPath string, landscape bool) error {
	if f.err != nil {
		return f.err
	}
	f.landscape = landscape
	return os.WriteFile(pdfPath, []byte("%PDF-1.7"), 0644)
}

type fakeArchive struct {
	mu      sync.Mutex
	err     error
	failExt string
	objects []string
	deleted []string
}

func (f *fakeArchive) Archive(_ context.Context, base, localPath, _ string) (*storage.UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.failExt != "" && filepath.Ext(localPath) == f.failExt {
		return nil, errors.New("upload rejected")
	}
	name := storage.ArchiveObjectName(base, filepath.Base(localPath))
	f.mu.Lock()
	f.objects = append(f.objects, name)
	f.mu.Unlock()
	return &storage.UploadResult{ObjectName: name}, nil
}

func (f *fakeArchive) DeleteFile(_ context.Context, objectName string) error {
	f.mu.Lock()
	f.deleted = append(f.deleted, objectName)
	f.mu.Unlock()
	return nil
}

type fakeRecords struct {
	err     error
	records []*models.ContractRecord
}

func (f *fakeRecords) Create(_ context.Context, record *models.ContractRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

var fixedNow = func() time.Time { return time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC) }

func newContractService(t *testing.T, deps ContractDeps) (*ContractService, string) {
	t.Helper()
	dir := t.TempDir()
	out := filepath.Join(dir, "contratos_gerados")

	deps.Templates = NewTemplateService(writeTemplate(t, dir), filepath.Join(dir, "uploads"), nil)
	deps.OutputDir = out
	deps.Assembler = &contract.Assembler{Now: fixedNow}
	return NewContractService(deps), out
}

func request() GenerateRequest {
	return GenerateRequest{
		Values: models.FormValues{
			models.KeyContractorName:    "Clube Azul",
			models.KeyEventAct:          "Banda Azul",
			models.KeyEventDate:         "15/03/2025",
			models.KeyPaymentTotal:      "1.500,00",
			models.KeyPaymentForm:       string(models.PaymentLumpSum),
			models.KeyPaymentMethod:     "PIX",
			models.KeyPaymentSingleDate: "10/03/2025",
		},
		Choices: models.Choices{Sound: models.SoundBand, Catering: models.CateringYes},
	}
}

func TestGenerateWritesDocumentAndSnapshot(t *testing.T) {
	svc, out := newContractService(t, ContractDeps{})

	result, err := svc.Generate(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, "Contrato_Banda_Azul_20250315", result.BaseName)
	assert.Equal(t, 1, result.Version)
	assert.Equal(t, "Contrato_Banda_Azul_20250315_v1.docx", result.Document)
	assert.Equal(t, "Contrato_Banda_Azul_20250315_v1.json", result.Snapshot)
	assert.Equal(t, []string{"FAVORECIDO_PIX", "CAMPO_EXTRA"}, result.Missing)
	assert.Empty(t, result.Warnings)

	doc, err := processor.OpenFile(filepath.Join(out, result.Document))
	require.NoError(t, err)
	paragraphs := doc.Paragraphs()
	assert.Equal(t, "CONTRATANTE: Clube Azul", paragraphs[0])
	assert.Equal(t, "O pagamento será efetuado à vista, no valor total de R$ 1.500,00 (mil e quinhentos reais), "+
		"na data de 10 de Março de 2025, via PIX.", paragraphs[1])
	assert.Equal(t, " {{CAMPO_EXTRA}}", paragraphs[2])
	assert.Equal(t, "Recife, 06 de Janeiro de 2025", paragraphs[3])

	snap, err := snapshot.Load(filepath.Join(out, result.Snapshot))
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Version)
	assert.Equal(t, request().Values, snap.Values)
	assert.Equal(t, models.SoundBand, snap.Sound)
	assert.Equal(t, models.CateringYes, snap.Catering)
}

func TestGenerateBumpsVersion(t *testing.T) {
	svc, out := newContractService(t, ContractDeps{})
	require.NoError(t, os.MkdirAll(out, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "Contrato_Banda_Azul_20250315_v1.json"), []byte("{}"), 0644))

	first, err := svc.Generate(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, 2, first.Version)

	second, err := svc.Generate(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, 3, second.Version)
}

func TestGenerateConcurrentRequestsGetDistinctVersions(t *testing.T) {
	svc, _ := newContractService(t, ContractDeps{})

	const n = 8
	versions := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.Generate(context.Background(), request())
			if assert.NoError(t, err) {
				versions[i] = result.Version
			}
		}()
	}
	wg.Wait()

	sort.Ints(versions)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, versions)
}

func TestGenerateOptionalCollaborators(t *testing.T) {
	pdf := &fakePDF{}
	archive := &fakeArchive{}
	records := &fakeRecords{}
	svc, out := newContractService(t, ContractDeps{PDF: pdf, Archive: archive, Records: records})

	req := request()
	req.PDF = true
	result, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Contrato_Banda_Azul_20250315_v1.pdf", result.PDF)
	assert.FileExists(t, filepath.Join(out, result.PDF))
	assert.False(t, pdf.landscape)

	assert.ElementsMatch(t, []string{
		"contracts/Contrato_Banda_Azul_20250315/Contrato_Banda_Azul_20250315_v1.docx",
		"contracts/Contrato_Banda_Azul_20250315/Contrato_Banda_Azul_20250315_v1.json",
		"contracts/Contrato_Banda_Azul_20250315/Contrato_Banda_Azul_20250315_v1.pdf",
	}, archive.objects)
	assert.Len(t, result.ArchiveObjects, 3)

	require.Len(t, records.records, 1)
	rec := records.records[0]
	assert.Equal(t, result.RecordID, rec.ID)
	assert.Equal(t, "Banda Azul", rec.Artist)
	assert.Equal(t, models.RecordStatusArchived, rec.Status)
	assert.Contains(t, string(rec.Snapshot), `"versao":1`)
	assert.Empty(t, result.Warnings)
}

func TestGenerateOptionalFailuresBecomeWarnings(t *testing.T) {
	svc, out := newContractService(t, ContractDeps{
		PDF:     &fakePDF{err: errors.New("gotenberg down")},
		Archive: &fakeArchive{err: errors.New("bucket missing")},
		Records: &fakeRecords{err: ErrDatabaseDisabled},
	})

	req := request()
	req.PDF = true
	result, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, result.Warnings, 3)
	assert.Contains(t, result.Warnings[0], "gotenberg down")
	assert.Contains(t, result.Warnings[1], "bucket missing")
	assert.Empty(t, result.PDF)
	assert.Empty(t, result.RecordID)
	assert.FileExists(t, filepath.Join(out, result.Document))
	assert.FileExists(t, filepath.Join(out, result.Snapshot))
}

func TestGenerateDiscardsPartialArchive(t *testing.T) {
	archive := &fakeArchive{failExt: ".json"}
	svc, _ := newContractService(t, ContractDeps{Archive: archive})

	result, err := svc.Generate(context.Background(), request())
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "upload rejected")
	assert.Empty(t, result.ArchiveObjects)
	assert.Equal(t, archive.objects, archive.deleted)
}

func TestGeneratePDFWithoutConverter(t *testing.T) {
	svc, _ := newContractService(t, ContractDeps{})
	req := request()
	req.PDF = true

	result, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "not configured")
}

func TestGenerateMissingTemplate(t *testing.T) {
	svc, out := newContractService(t, ContractDeps{})
	req := request()
	req.TemplateID = "7d9f3c1e-4b1a-4c55-9a43-0d1f3f1f2a10"

	_, err := svc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPreviewAndSummary(t *testing.T) {
	svc, _ := newContractService(t, ContractDeps{})
	req := request()

	ctx := svc.Preview(req.Values, req.Choices)
	assert.Equal(t, "mil e quinhentos reais", ctx[contract.PaymentTotalWords])
	assert.Equal(t, "06 de Janeiro de 2025", ctx[contract.DraftDate])

	summary := svc.Summary(req.Values, req.Choices)
	assert.True(t, strings.HasPrefix(summary, "CONTRATO DE PRESTAÇÃO DE SERVIÇOS MUSICAIS"))

	snap, err := svc.DecodeSnapshot(strings.NewReader("values:\n  evento_nome: Baile\n"), "x.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Baile", snap.Values.Get("evento_nome"))
}

func TestOutputFile(t *testing.T) {
	svc, out := newContractService(t, ContractDeps{})
	result, err := svc.Generate(context.Background(), request())
	require.NoError(t, err)

	path, err := svc.OutputFile(result.Document)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, result.Document), path)

	for _, bad := range []string{"", "../secret.docx", "a/b.docx", ".hidden.docx", "notes.txt", "missing.pdf"} {
		_, err := svc.OutputFile(bad)
		assert.ErrorIs(t, err, ErrDocumentNotFound, bad)
	}

	assert.Equal(t, docxContentType, ContentType("a.docx"))
	assert.Equal(t, pdfContentType, ContentType("a.PDF"))
	assert.Equal(t, jsonContentType, ContentType("a.json"))
}

func TestGenerateKeepsFilesInOutputDirectory(t *testing.T) {
	svc, out := newContractService(t, ContractDeps{})
	root := filepath.Dir(out)

	for _, artist := range []string{"AC/DC", "../../x", "../escaped/x", `..\..\win`} {
		req := request()
		req.Values[models.KeyEventAct] = artist

		result, err := svc.Generate(context.Background(), req)
		require.NoError(t, err, artist)

		for _, name := range []string{result.Document, result.Snapshot} {
			assert.Equal(t, filepath.Base(name), name, artist)
			path, err := svc.OutputFile(name)
			require.NoError(t, err, artist)
			assert.Equal(t, out, filepath.Dir(path), artist)
		}
	}

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"contratos_gerados", "contrato_som_banda.docx"}, names)
}

func TestWriteRejectsEscapingBase(t *testing.T) {
	svc, out := newContractService(t, ContractDeps{})
	doc, err := processor.OpenFile(filepath.Join(filepath.Dir(out), "contrato_som_banda.docx"))
	require.NoError(t, err)

	snap := snapshot.New(request().Values, models.Choices{})
	_, err = svc.write("../escaped", doc, &snap)
	assert.ErrorIs(t, err, ErrSnapshotWrite)
	assert.Contains(t, err.Error(), "outside the output directory")
	assert.NoFileExists(t, filepath.Join(filepath.Dir(out), "escaped_v1.json"))
}

func TestGenerateNamesFailedStage(t *testing.T) {
	svc, out := newContractService(t, ContractDeps{})
	require.NoError(t, os.WriteFile(out, []byte("not a directory"), 0644))

	_, err := svc.Generate(context.Background(), request())
	assert.ErrorIs(t, err, ErrOutputDirectory)
}
