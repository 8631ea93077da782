package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/career-compass/internal/apperror"
)

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText([]byte("ten years of Go experience"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "ten years of Go experience", text)
}

func TestExtractTextUnsupportedType(t *testing.T) {
	_, err := ExtractText([]byte("GIF89a"), "image/gif")
	var validationErr *apperror.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestExtractTextCorruptPDF(t *testing.T) {
	_, err := ExtractText([]byte("%PDF-1.4 truncated garbage"), "application/pdf")
	assert.ErrorIs(t, err, apperror.ErrExtractionFailed)
}
