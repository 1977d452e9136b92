package services

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const templateXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
	`<w:p><w:r><w:t>CONTRATANTE: {{CONTRATANTE_</w:t></w:r><w:r><w:t>NOME}}</w:t></w:r></w:p>` +
	`<w:p><w:r><w:t>{{PAGAMENTO_FORMA_DESCRICAO}}</w:t></w:r></w:p>` +
	`<w:p><w:r><w:t>{{FAVORECIDO_PIX}} {{CAMPO_EXTRA}}</w:t></w:r></w:p>` +
	`<w:p><w:r><w:t>Recife, {{DATA_CONTRATO}}</w:t></w:r></w:p>` +
	`</w:body></w:document>`

func docxBytes(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"[Content_Types].xml": "<Types/>",
		"word/document.xml":   documentXML,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// writeTemplate stores the default test template and returns its path.
func writeTemplate(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "contrato_som_banda.docx")
	require.NoError(t, os.WriteFile(path, docxBytes(t, templateXML), 0644))
	return path
}
