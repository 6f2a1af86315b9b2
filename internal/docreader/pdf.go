package docreader

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

const (
	PDFBackendFitz = "fitz"
	PDFBackendPure = "pure"
)

// PDFDecoderFor returns the decoder registered under name, defaulting to fitz
func PDFDecoderFor(name string) Decoder {
	if strings.EqualFold(name, PDFBackendPure) {
		return PurePDFDecoder{}
	}
	return FitzDecoder{}
}

// FitzDecoder extracts text with MuPDF, page texts concatenated in order
type FitzDecoder struct{}

func (FitzDecoder) Decode(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("read page %d: %w", i+1, err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// PurePDFDecoder extracts text without native libraries
type PurePDFDecoder struct{}

func (PurePDFDecoder) Decode(data []byte) (text string, err error) {
	// the reader panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	if r.NumPage() == 0 {
		return "", errors.New("pdf has no pages")
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("read page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
