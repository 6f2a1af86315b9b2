package docreader

import "strings"

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// SupportedFormats lists every format Extract accepts
var SupportedFormats = []Format{FormatPDF, FormatDOCX}

// ParseFormat normalises a declared extension such as ".PDF" or "docx"
func ParseFormat(ext string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), ".")))
	switch f {
	case FormatPDF, FormatDOCX:
		return f, nil
	default:
		return "", ErrUnsupportedFormat().
			WithDetail("format", ext).
			WithDetail("supported", SupportedFormats)
	}
}
