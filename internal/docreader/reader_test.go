package docreader

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Abraxas-365/hirematch/pkg/errx"
	"github.com/Abraxas-365/hirematch/pkg/fsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memFiles map[string][]byte

func (m memFiles) ReadFile(_ context.Context, path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fsx.ErrNotExist
	}
	return data, nil
}

type stubDecoder struct {
	text string
	err  error
}

func (s stubDecoder) Decode([]byte) (string, error) { return s.text, s.err }

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?><Types/>`))
	require.NoError(t, err)
	if documentXML != "" {
		w, err = zw.Create(docxBodyPart)
		require.NoError(t, err)
		_, err = w.Write([]byte(documentXML))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const sampleDocument = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Python </w:t></w:r><w:r><w:t>and SQL</w:t></w:r></w:p>
    <w:p><w:r><w:t>Acme</w:t><w:tab/><w:t>2019 - 2022</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"pdf", FormatPDF, false},
		{".PDF", FormatPDF, false},
		{"docx", FormatDOCX, false},
		{" .Docx ", FormatDOCX, false},
		{"doc", "", true},
		{"txt", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.True(t, errx.IsCode(err, CodeUnsupportedFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractDocx(t *testing.T) {
	files := memFiles{"cv.docx": buildDocx(t, sampleDocument)}
	e := NewExtractor(files)

	text, err := e.Extract(context.Background(), "cv.docx", "docx")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nPython and SQL\nAcme\t2019 - 2022", text)
}

func TestExtractDocxFailures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"not a zip", []byte("definitely not a zip")},
		{"missing body part", buildDocx(t, "")},
		{"malformed xml", buildDocx(t, "<w:document><w:body><w:p>")},
	}

	e := NewExtractor(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := e.ExtractBytes(tt.data, "docx")
			assert.Empty(t, text)
			assert.True(t, errx.IsCode(err, CodeExtractionFailed))
		})
	}
}

func TestExtractUnsupportedFormatDoesNotReadFile(t *testing.T) {
	e := NewExtractor(memFiles{})

	_, err := e.Extract(context.Background(), "cv.odt", "odt")
	assert.True(t, errx.IsCode(err, CodeUnsupportedFormat))
}

func TestExtractMissingFile(t *testing.T) {
	e := NewExtractor(memFiles{})

	_, err := e.Extract(context.Background(), "missing.pdf", "pdf")
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, CodeExtractionFailed))
	assert.ErrorIs(t, err, fsx.ErrNotExist)
}

func TestExtractPDFUsesConfiguredDecoder(t *testing.T) {
	files := memFiles{"cv.pdf": []byte("%PDF-1.4")}

	t.Run("success", func(t *testing.T) {
		e := NewExtractor(files, WithPDFDecoder(stubDecoder{text: "page one"}))
		text, err := e.Extract(context.Background(), "cv.pdf", ".pdf")
		require.NoError(t, err)
		assert.Equal(t, "page one", text)
	})

	t.Run("decoder failure is wrapped", func(t *testing.T) {
		cause := errors.New("bad xref")
		e := NewExtractor(files, WithPDFDecoder(stubDecoder{err: cause}))
		text, err := e.Extract(context.Background(), "cv.pdf", "pdf")
		assert.Empty(t, text)
		assert.True(t, errx.IsCode(err, CodeExtractionFailed))
		assert.ErrorIs(t, err, cause)

		var xe *errx.Error
		require.ErrorAs(t, err, &xe)
		assert.Equal(t, "cv.pdf", xe.Details["path"])
		assert.Equal(t, errx.TypeBusiness, xe.Type)
		assert.Equal(t, http.StatusUnprocessableEntity, errx.HTTPStatus(err))
	})
}

func TestPurePDFDecoderRejectsGarbage(t *testing.T) {
	e := NewExtractor(nil, WithPDFBackend(PDFBackendPure))

	_, err := e.ExtractBytes([]byte("this is not a pdf"), "pdf")
	assert.True(t, errx.IsCode(err, CodeExtractionFailed))
}

func TestPDFDecoderFor(t *testing.T) {
	assert.IsType(t, PurePDFDecoder{}, PDFDecoderFor("pure"))
	assert.IsType(t, FitzDecoder{}, PDFDecoderFor("fitz"))
	assert.IsType(t, FitzDecoder{}, PDFDecoderFor(""))
}
