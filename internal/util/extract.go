package util

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/ledongthuc/pdf"
)

// ExtractText returns the plain text of an uploaded document. PDF pages
// are walked in order from page 1 to page N and joined with a newline.
// Failures never yield partial text.
func ExtractText(data []byte, mimeType string) (string, error) {
	switch mimeType {
	case "text/plain":
		return string(data), nil
	case "application/pdf":
		return extractPDFText(data)
	default:
		return "", apperror.NewValidationError(
			fmt.Sprintf("unsupported file type: %s", mimeType), nil)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrExtractionFailed, err)
	}

	var pages []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", apperror.ErrExtractionFailed, i, err)
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}
