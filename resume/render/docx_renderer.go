// Package render turns canonical resume text into a styled DOCX
// document. Styling is positional and pattern-based: a line's index and
// content decide its paragraph formatting.
package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// BuildDocx renders canonical resume text into a DOCX byte slice.
// Empty content is valid and produces a document with no paragraphs.
func BuildDocx(content string) ([]byte, error) {
	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", buildDocumentXML(content)},
	}

	for _, part := range parts {
		dst, err := writer.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := dst.Write([]byte(part.data)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close docx container: %w", err)
	}

	return output.Bytes(), nil
}

// FileName returns the download name for a rendered resume.
func FileName(userID string, now time.Time) string {
	return fmt.Sprintf("Resume_%s_%s.docx", userID, now.Format("20060102"))
}

func buildDocumentXML(content string) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:document xmlns:w="` + wmlNamespace + `"><w:body>`)

	// Blank lines are skipped but still advance the index, so styling
	// of later lines stays tied to their absolute position.
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		writeParagraph(&b, line, styleForLine(i, line))
	}

	b.WriteString(sectionPropertiesXML())
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeParagraph(b *strings.Builder, line string, style paragraphStyle) {
	text := line
	if style.IndentLeft > 0 || style.Uppercase {
		text = strings.TrimSpace(line)
	}
	if style.Uppercase {
		text = strings.ToUpper(text)
	}

	b.WriteString(`<w:p>`)
	writeParagraphProps(b, style)
	b.WriteString(`<w:r>`)
	writeRunProps(b, style)
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escapeXML(text))
	b.WriteString(`</w:t></w:r></w:p>`)
}

func writeParagraphProps(b *strings.Builder, style paragraphStyle) {
	if !style.Center && style.SpaceBefore == 0 && style.SpaceAfter == 0 && style.IndentLeft == 0 {
		return
	}
	b.WriteString(`<w:pPr>`)
	if style.SpaceBefore > 0 || style.SpaceAfter > 0 {
		b.WriteString(`<w:spacing w:before="` + strconv.Itoa(style.SpaceBefore) +
			`" w:after="` + strconv.Itoa(style.SpaceAfter) + `"/>`)
	}
	if style.IndentLeft > 0 {
		b.WriteString(`<w:ind w:left="` + strconv.Itoa(style.IndentLeft) + `"/>`)
	}
	if style.Center {
		b.WriteString(`<w:jc w:val="center"/>`)
	}
	b.WriteString(`</w:pPr>`)
}

func writeRunProps(b *strings.Builder, style paragraphStyle) {
	if !style.Bold && style.Size == 0 && style.Color == "" {
		return
	}
	b.WriteString(`<w:rPr>`)
	if style.Bold {
		b.WriteString(`<w:b/>`)
	}
	if style.Color != "" {
		b.WriteString(`<w:color w:val="` + style.Color + `"/>`)
	}
	if style.Size > 0 {
		b.WriteString(`<w:sz w:val="` + strconv.Itoa(style.Size) + `"/>` +
			`<w:szCs w:val="` + strconv.Itoa(style.Size) + `"/>`)
	}
	b.WriteString(`</w:rPr>`)
}

func sectionPropertiesXML() string {
	return `<w:sectPr>` +
		`<w:pgSz w:w="12240" w:h="15840"/>` +
		`<w:pgMar w:top="` + strconv.Itoa(pageMarginTopBottom) +
		`" w:right="` + strconv.Itoa(pageMarginLeftRight) +
		`" w:bottom="` + strconv.Itoa(pageMarginTopBottom) +
		`" w:left="` + strconv.Itoa(pageMarginLeftRight) +
		`" w:header="720" w:footer="720" w:gutter="0"/>` +
		`</w:sectPr>`
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
