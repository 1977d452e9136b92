package processor

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const mainPart = "word/document.xml"

// ErrNotDocx is returned when an archive has no word/document.xml.
var ErrNotDocx = errors.New("not a docx document")

type part struct {
	header zip.FileHeader
	data   []byte
}

// Document is a DOCX package held in memory. Fill never modifies the
// receiver, so one parsed template can serve many requests.
type Document struct {
	parts []part
}

// Open reads a DOCX package from r.
func Open(r io.ReaderAt, size int64) (*Document, error) {
	reader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open docx archive: %w", err)
	}

	doc := &Document{parts: make([]part, 0, len(reader.File))}
	hasMain := false
	for _, file := range reader.File {
		data, err := readEntry(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file.Name, err)
		}
		if file.Name == mainPart {
			hasMain = true
		}
		doc.parts = append(doc.parts, part{header: file.FileHeader, data: data})
	}
	if !hasMain {
		return nil, ErrNotDocx
	}
	return doc, nil
}

// OpenBytes reads a DOCX package held in b.
func OpenBytes(b []byte) (*Document, error) {
	return Open(bytes.NewReader(b), int64(len(b)))
}

// OpenFile reads the DOCX package at path. A missing file yields an error
// matching fs.ErrNotExist.
func OpenFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat template: %w", err)
	}
	return Open(f, info.Size())
}

func readEntry(file *zip.File) ([]byte, error) {
	if file.FileInfo().IsDir() {
		return nil, nil
	}
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Part returns the raw bytes of the named archive entry.
func (d *Document) Part(name string) ([]byte, bool) {
	for _, p := range d.parts {
		if p.header.Name == name {
			return p.data, true
		}
	}
	return nil, false
}

// Write serializes the package to w, keeping entry order and compression.
func (d *Document) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	for _, p := range d.parts {
		header := &zip.FileHeader{
			Name:     p.header.Name,
			Method:   p.header.Method,
			Modified: p.header.Modified,
		}
		entry, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("failed to create entry %s: %w", p.header.Name, err)
		}
		if _, err := entry.Write(p.data); err != nil {
			return fmt.Errorf("failed to write entry %s: %w", p.header.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize docx archive: %w", err)
	}
	return nil
}

// Bytes returns the serialized package.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the package to path, creating parent directories. The file is
// written under a temporary name first so readers never see a partial docx.
func (d *Document) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err := d.Write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output file into place: %w", err)
	}
	return nil
}

// textPart reports whether an entry can hold placeholders: the body, headers
// and footers.
func textPart(name string) bool {
	if name == mainPart {
		return true
	}
	if !strings.HasPrefix(name, "word/") || !strings.HasSuffix(name, ".xml") {
		return false
	}
	base := strings.TrimPrefix(name, "word/")
	return strings.HasPrefix(base, "header") || strings.HasPrefix(base, "footer")
}
