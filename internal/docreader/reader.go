package docreader

import (
	"context"

	"github.com/Abraxas-365/hirematch/pkg/errx"
	"github.com/Abraxas-365/hirematch/pkg/fsx"
)

// Decoder turns raw document bytes into plain text
type Decoder interface {
	Decode(data []byte) (string, error)
}

type Option func(*Extractor)

// WithPDFDecoder overrides the PDF backend
func WithPDFDecoder(d Decoder) Option {
	return func(e *Extractor) { e.pdf = d }
}

// WithPDFBackend selects a PDF backend by name: "fitz" or "pure"
func WithPDFBackend(name string) Option {
	return func(e *Extractor) { e.pdf = PDFDecoderFor(name) }
}

// Extractor reads stored resume files and returns their plain text
type Extractor struct {
	files fsx.FileReader
	pdf   Decoder
	docx  Decoder
}

func NewExtractor(files fsx.FileReader, opts ...Option) *Extractor {
	e := &Extractor{
		files: files,
		pdf:   FitzDecoder{},
		docx:  DocxDecoder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract reads path and decodes it according to the declared format
func (e *Extractor) Extract(ctx context.Context, path string, declaredFormat string) (string, error) {
	format, err := ParseFormat(declaredFormat)
	if err != nil {
		return "", err
	}

	data, err := e.files.ReadFile(ctx, path)
	if err != nil {
		return "", ErrExtractionFailed(err).
			WithDetail("path", path).
			WithDetail("format", format)
	}

	text, derr := e.decode(data, format)
	if derr != nil {
		return "", derr.WithDetail("path", path)
	}
	return text, nil
}

// ExtractBytes decodes an in-memory document
func (e *Extractor) ExtractBytes(data []byte, declaredFormat string) (string, error) {
	format, err := ParseFormat(declaredFormat)
	if err != nil {
		return "", err
	}
	text, derr := e.decode(data, format)
	if derr != nil {
		return "", derr
	}
	return text, nil
}

func (e *Extractor) decode(data []byte, format Format) (string, *errx.Error) {
	var d Decoder
	switch format {
	case FormatPDF:
		d = e.pdf
	case FormatDOCX:
		d = e.docx
	}

	text, err := d.Decode(data)
	if err != nil {
		return "", ErrExtractionFailed(err).WithDetail("format", format)
	}
	return text, nil
}
