package render

import (
	"strings"

	"jobboard-backend/resume/assemble"
)

// Page geometry in twentieths of a point (twips).
const (
	pageMarginTopBottom = 720  // 0.5in
	pageMarginLeftRight = 1080 // 0.75in
	bulletIndentLeft    = 360  // 0.25in
)

// Run sizes in half-points.
const (
	nameSize    = 36 // 18pt
	headingSize = 24 // 12pt
	bodySize    = 20 // 10pt
)

const headingColor = "1F4E79"

// Section heading spacing in twentieths of a point.
const (
	headingSpaceBefore = 200 // 10pt
	headingSpaceAfter  = 120 // 6pt
)

// paragraphStyle captures the per-line formatting decisions.
type paragraphStyle struct {
	Center      bool
	Bold        bool
	Size        int
	Color       string
	SpaceBefore int
	SpaceAfter  int
	IndentLeft  int
	Uppercase   bool
}

var sectionHeaderSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(assemble.SectionHeaders))
	for _, header := range assemble.SectionHeaders {
		set[header] = struct{}{}
	}
	return set
}()

// styleForLine picks the paragraph style for a line. The decision is
// positional for the first two lines (absolute index over the raw line
// list, so a leading blank line shifts every later decision) and
// content-based for section headers and bullets.
func styleForLine(index int, line string) paragraphStyle {
	trimmed := strings.TrimSpace(line)

	switch {
	case index == 0:
		return paragraphStyle{Center: true, Bold: true, Size: nameSize}
	case index == 1:
		return paragraphStyle{Center: true, Size: bodySize}
	}

	if _, ok := sectionHeaderSet[trimmed]; ok {
		return paragraphStyle{
			Bold:        true,
			Size:        headingSize,
			Color:       headingColor,
			SpaceBefore: headingSpaceBefore,
			SpaceAfter:  headingSpaceAfter,
			Uppercase:   true,
		}
	}

	if strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "-") {
		return paragraphStyle{Size: bodySize, IndentLeft: bulletIndentLeft}
	}

	return paragraphStyle{Size: bodySize}
}
