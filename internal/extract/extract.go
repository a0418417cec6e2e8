// Package extract normalizes uploaded resume documents into plain
// UTF-8 text. Libraries used: github.com/ledongthuc/pdf (PDF) and
// github.com/nguyenthenguyen/docx (DOCX).
package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MinTextLength is the minimum trimmed length for extracted text to
// count as a successful extraction.
const MinTextLength = 10

var (
	// ErrUnsupportedFormat rejects extensions outside the allow-list
	// before any bytes are read.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrInvalidEncoding marks plain-text input that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid text encoding")
)

// allowedExtensions is the closed set of accepted file extensions
// (lowercase, without the dot).
var allowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"txt":  {},
}

// Allowed reports whether the extension (without dot, any case) is on
// the allow-list.
func Allowed(ext string) bool {
	_, ok := allowedExtensions[strings.ToLower(ext)]
	return ok
}

// Usable reports whether extracted text meets the minimum-length
// post-condition. Callers treat unusable text as extraction failure,
// never as content to score.
func Usable(text string) bool {
	return len(strings.TrimSpace(text)) >= MinTextLength
}

// ResumeText extracts plain text from an uploaded document. PDF and
// DOCX extraction fail soft: malformed bytes yield empty text rather
// than an error, and the Usable check at the caller boundary decides
// whether extraction succeeded.
func ResumeText(data []byte, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case "txt":
		return extractTXT(data)
	case "pdf":
		return extractPDF(data), nil
	case "docx":
		return extractDOCX(data), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractTXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return strings.TrimSpace(string(data)), nil
}

// extractPDF concatenates the text of every page in document order,
// one newline after each page.
func extractPDF(data []byte) string {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// extractDOCX newline-joins every paragraph of the document body.
func extractDOCX(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	defer doc.Close()

	return strings.TrimSpace(stripDocxXML(doc.Editable().GetContent()))
}

// stripDocxXML flattens WordprocessingML to text, emitting a newline at
// each paragraph or explicit line break.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var b strings.Builder
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ""
		}
		switch t := token.(type) {
		case xml.CharData:
			b.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
