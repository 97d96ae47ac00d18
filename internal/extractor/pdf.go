package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dslipak/pdf"

	"pdfchat/internal/domain"
)

// PDF extracts normalized text from PDF file bytes.
type PDF struct{}

// NewPDF creates a new PDF extractor
func NewPDF() *PDF {
	return &PDF{}
}

// Extract reads every page of the PDF, concatenates the text in page
// order and normalizes it: each line trimmed, blank lines dropped.
// Returns ErrInvalidDocument for unparseable, encrypted or page-less
// files and ErrNoExtractableText when nothing usable remains.
func (p *PDF) Extract(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: file is empty", domain.ErrInvalidDocument)
	}

	// The underlying parser panics on some malformed files instead of
	// returning an error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", domain.ErrInvalidDocument, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	if reader.NumPage() < 1 {
		return "", fmt.Errorf("%w: document has no pages", domain.ErrInvalidDocument)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// Image-only or malformed page, nothing to extract from it
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	normalized := normalize(b.String())
	if normalized == "" {
		return "", domain.ErrNoExtractableText
	}
	return normalized, nil
}

func normalize(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
