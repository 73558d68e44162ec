package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF assembles a single-page PDF that shows text in Helvetica, with a
// correct cross-reference table.
func buildPDF(t *testing.T, text string) []byte {
	t.Helper()

	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	for _, p := range paragraphs {
		fmt.Fprintf(&body, `<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, p)
	}

	files := []struct {
		name    string
		content string
	}{
		{
			name:    "[Content_Types].xml",
			content: `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`,
		},
		{
			name:    "word/document.xml",
			content: `<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body.String() + `</w:body></w:document>`,
		},
		{
			name:    "word/_rels/document.xml.rels",
			content: `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestExtractTextPlain(t *testing.T) {
	content, err := NewDocumentParser().ExtractText([]byte("  Go developer  \n\n\n  PostgreSQL, Redis \n"))
	require.NoError(t, err)

	assert.Equal(t, "Go developer\nPostgreSQL, Redis", content.Text)
	assert.Equal(t, MIMEPlainText, content.ContentType)
	assert.Zero(t, content.PageCount)
}

func TestExtractTextPlainSubtypes(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "comma separated", data: "Jane Doe, Backend Engineer, Berlin\nGo, PostgreSQL, Kafka\nDocker, Kubernetes, Terraform\n"},
		{name: "tab separated", data: "Jane Doe\tBackend Engineer\tBerlin\nGo\tPostgreSQL\tKafka\nDocker\tKubernetes\tTerraform\n"},
		{name: "json", data: `{"name": "Jane Doe", "skills": ["Go", "Kafka"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := NewDocumentParser().ExtractText([]byte(tt.data))
			require.NoError(t, err)

			assert.Equal(t, MIMEPlainText, content.ContentType)
			assert.Contains(t, content.Text, "Jane Doe")
		})
	}
}

func TestExtractTextPDF(t *testing.T) {
	content, err := NewDocumentParser().ExtractText(buildPDF(t, "Golang Kubernetes"))
	require.NoError(t, err)

	assert.Equal(t, MIMEPDF, content.ContentType)
	assert.Equal(t, 1, content.PageCount)
	assert.Contains(t, content.Text, "Golang Kubernetes")
}

func TestExtractTextDocx(t *testing.T) {
	content, err := NewDocumentParser().ExtractText(buildDocx(t, "Senior Go Engineer", "Terraform &amp; AWS"))
	require.NoError(t, err)

	assert.Equal(t, MIMEDocx, content.ContentType)
	assert.Equal(t, "Senior Go Engineer\nTerraform & AWS", content.Text)
}

func TestExtractTextUnsupported(t *testing.T) {
	_, err := NewDocumentParser().ExtractText([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0})
	assert.ErrorIs(t, err, ErrUnsupportedDocument)
}

func TestExtractTextEmpty(t *testing.T) {
	_, err := NewDocumentParser().ExtractText([]byte(" \n\t\n "))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestWordprocessingText(t *testing.T) {
	body := `<w:body><w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Go</w:t></w:r></w:p><w:p><w:r><w:t>Line</w:t><w:br/><w:t>break</w:t></w:r></w:p></w:body>`

	text, err := wordprocessingText(body)
	require.NoError(t, err)
	assert.Equal(t, "Skills:\tGo\nLine\nbreak\n", text)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("\n  a  \n\n   \n b\n"))
	assert.Equal(t, "", CleanText("   "))
}
