package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MIMEPlainText = "text/plain"
	MIMEPDF       = "application/pdf"
	MIMEDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrUnsupportedDocument = errors.New("unsupported document type")
	ErrEmptyDocument       = errors.New("no text content found in document")
)

// DocumentParser turns an uploaded résumé into plain text. Documents are read
// from memory and never written to disk.
type DocumentParser interface {
	ExtractText(data []byte) (*DocumentContent, error)
}

type DocumentContent struct {
	Text        string
	PageCount   int
	ContentType string
}

type documentParser struct{}

func NewDocumentParser() DocumentParser {
	return &documentParser{}
}

// ExtractText sniffs the content type of data and extracts its text. It
// returns ErrUnsupportedDocument for anything other than PDF, DOCX or plain
// text, and ErrEmptyDocument when no text could be recovered.
func (p *documentParser) ExtractText(data []byte) (*DocumentContent, error) {
	mtype := mimetype.Detect(data)

	var (
		content *DocumentContent
		err     error
	)

	switch {
	case mtype.Is(MIMEPDF):
		content, err = extractPDF(data)
	case mtype.Is(MIMEDocx):
		content, err = extractDocx(data)
	case isPlainText(mtype):
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%w: text is not valid UTF-8", ErrUnsupportedDocument)
		}
		content = &DocumentContent{Text: string(data), ContentType: MIMEPlainText}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDocument, mtype.String())
	}
	if err != nil {
		return nil, err
	}

	content.Text = CleanText(content.Text)
	if content.Text == "" {
		return nil, ErrEmptyDocument
	}

	return content, nil
}

func extractPDF(data []byte) (*DocumentContent, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// unreadable pages are skipped, the rest of the document still counts
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return &DocumentContent{
		Text:        textBuilder.String(),
		PageCount:   totalPage,
		ContentType: MIMEPDF,
	}, nil
}

func extractDocx(data []byte) (*DocumentContent, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	text, err := wordprocessingText(doc.Editable().GetContent())
	if err != nil {
		return nil, fmt.Errorf("failed to read docx body: %w", err)
	}

	return &DocumentContent{
		Text:        text,
		ContentType: MIMEDocx,
	}, nil
}

// wordprocessingText collects the <w:t> runs of a document.xml body, ending
// each <w:p> paragraph with a newline and turning <w:tab/> into a tab.
func wordprocessingText(body string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(body))

	var (
		b      strings.Builder
		inText bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return b.String(), nil
}

// isPlainText reports whether m is text/plain or one of its text subtypes,
// such as text/csv or application/json.
func isPlainText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is(MIMEPlainText) {
			return true
		}
	}
	return false
}

// CleanText trims every line and drops the empty ones.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	cleanedLines := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
