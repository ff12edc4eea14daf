package markers

import (
	"strings"
)

// Sentinel lines delimiting the generated region.
const (
	MarkerBegin = "<!-- devw:begin -->"
	MarkerEnd   = "<!-- devw:end -->"
)

// region is the byte span of a recognised marker pair. beginStart is the
// offset of the begin marker line; endStop is the offset just past the end
// marker text (its line terminator stays with the trailing user content).
type region struct {
	beginStart int
	endStop    int
}

// Wrap returns generated enclosed in a fresh marker pair.
func Wrap(generated string) string {
	var b strings.Builder
	b.Grow(len(MarkerBegin) + len(generated) + len(MarkerEnd) + 3)
	writeRegion(&b, generated)
	b.WriteString("\n")
	return b.String()
}

// Merge splices generated into existing.
//
// If existing holds a marker pair, only the text between the markers is
// replaced. Otherwise the wrapped block is appended. An empty existing
// document is treated like a missing one. Merge never fails.
func Merge(existing, generated string) string {
	if existing == "" {
		return Wrap(generated)
	}

	r, ok := findRegion(existing)
	if !ok {
		return appendRegion(existing, generated)
	}

	var b strings.Builder
	b.Grow(len(existing) + len(generated))
	b.WriteString(existing[:r.beginStart])
	writeRegion(&b, generated)
	b.WriteString(existing[r.endStop:])
	return b.String()
}

// HasRegion reports whether content holds a valid marker pair.
func HasRegion(content string) bool {
	_, ok := findRegion(content)
	return ok
}

func appendRegion(existing, generated string) string {
	var b strings.Builder
	b.Grow(len(existing) + len(generated) + len(MarkerBegin) + len(MarkerEnd) + 4)
	b.WriteString(existing)
	if !strings.HasSuffix(existing, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	writeRegion(&b, generated)
	b.WriteString("\n")
	return b.String()
}

// writeRegion writes the markers and the generated block, without a newline
// after the end marker.
func writeRegion(b *strings.Builder, generated string) {
	b.WriteString(MarkerBegin)
	b.WriteString("\n")
	b.WriteString(generated)
	// The end marker must start its own line or it would not be found again.
	if generated != "" && !strings.HasSuffix(generated, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(MarkerEnd)
}

// findRegion locates the first end marker line that follows a begin marker
// line, paired with the last begin marker line before it. Both must match a
// whole line. A stray begin line earlier in the document stays user text.
func findRegion(content string) (region, bool) {
	r := region{beginStart: -1}

	for start := 0; start < len(content); {
		stop := strings.IndexByte(content[start:], '\n')
		next := len(content)
		if stop < 0 {
			stop = len(content)
		} else {
			stop += start
			next = stop + 1
		}

		line := strings.TrimSuffix(content[start:stop], "\r")
		switch {
		case line == MarkerBegin:
			r.beginStart = start
		case r.beginStart >= 0 && line == MarkerEnd:
			r.endStop = start + len(MarkerEnd)
			return r, true
		}

		start = next
	}

	return region{}, false
}
