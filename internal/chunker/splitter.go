package chunker

import (
	"strings"
	"unicode"
)

// Default chunking parameters, in characters.
const (
	DefaultChunkSize = 1000
	DefaultOverlap   = 150
)

// Splitter splits normalized text into overlapping fixed-size segments,
// preferring to break at paragraph, line, sentence and word boundaries
// before falling back to a hard character cut.
type Splitter struct {
	chunkSize int
	overlap   int
}

// New creates a splitter. Non-positive sizes fall back to the defaults;
// an overlap as large as the chunk size is clamped so windows always
// advance.
func New(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = DefaultOverlap
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 5
	}
	return &Splitter{chunkSize: chunkSize, overlap: overlap}
}

// Split returns the ordered segments of text. Each segment after the
// first starts overlap characters before the previous segment's end.
// Whitespace-only input yields no segments.
func (s *Splitter) Split(text string) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}

	var segments []string
	start := 0
	for start < len(runes) {
		end := len(runes)
		if start+s.chunkSize < end {
			end = s.cut(runes, start)
		}

		segment := strings.TrimSpace(string(runes[start:end]))
		if segment != "" {
			segments = append(segments, segment)
		}

		if end >= len(runes) {
			break
		}
		next := end - s.overlap
		if next <= start {
			next = end
		}
		start = next
	}
	return segments
}

// cut picks a break position in (start, start+chunkSize]. Boundaries in
// the first half of the window are ignored so segments keep a useful
// size; when no boundary qualifies the cut is a hard one at the limit.
func (s *Splitter) cut(runes []rune, start int) int {
	limit := start + s.chunkSize
	floor := start + s.chunkSize/2

	if i := lastBoundary(runes, floor, limit, isParagraphBreak); i > 0 {
		return i
	}
	if i := lastBoundary(runes, floor, limit, isLineBreak); i > 0 {
		return i
	}
	if i := lastBoundary(runes, floor, limit, isSentenceEnd); i > 0 {
		return i
	}
	if i := lastBoundary(runes, floor, limit, isWordBreak); i > 0 {
		return i
	}
	return limit
}

// lastBoundary returns the highest position i in [floor, limit] for
// which match reports a boundary just before i, or 0 if there is none.
func lastBoundary(runes []rune, floor, limit int, match func([]rune, int) bool) int {
	for i := limit; i >= floor; i-- {
		if match(runes, i) {
			return i
		}
	}
	return 0
}

func isParagraphBreak(runes []rune, i int) bool {
	return i >= 2 && runes[i-1] == '\n' && runes[i-2] == '\n'
}

func isLineBreak(runes []rune, i int) bool {
	return i >= 1 && runes[i-1] == '\n'
}

func isSentenceEnd(runes []rune, i int) bool {
	if i < 1 {
		return false
	}
	switch runes[i-1] {
	case '.', '!', '?':
	default:
		return false
	}
	return i == len(runes) || unicode.IsSpace(runes[i])
}

func isWordBreak(runes []rune, i int) bool {
	return i >= 1 && unicode.IsSpace(runes[i-1])
}
