package mixedtext

import (
	"strings"
	"unicode"
)

// TextSegment is a run of text of a single script type. Text is trimmed and
// never blank.
//
// Segments are values, created by Parse and consumed by renderers, which
// select a font family and size by Script.
type TextSegment struct {
	Text   string
	Script ScriptType
}

func (seg TextSegment) String() string {
	return seg.Script.String() + "(" + seg.Text + ")"
}

// Parse splits text into segments of uniform script type.
//
// Parse scans text once. Consecutive characters of the same script type are
// collected into a segment. Punctuation (including white space and inline
// Arabic symbols) never starts a segment of its own: it is appended to the run
// currently open. A change to a different non-punctuation script type closes
// the current segment. Segments are trimmed, and blank segments are dropped.
//
// Empty input and input consisting of white space only result in an empty
// slice.
func Parse(text string) []TextSegment {
	var segments []TextSegment
	b := segmentBuilder{}
	for _, r := range text {
		if seg, ok := b.push(r); ok {
			segments = append(segments, seg)
		}
	}
	if seg, ok := b.flush(); ok {
		segments = append(segments, seg)
	}
	return segments
}

// segmentBuilder accumulates characters of one run of text. It is shared by the
// synchronous and the asynchronous parse.
type segmentBuilder struct {
	buf    strings.Builder
	script ScriptType
	seeded bool
}

// push adds a character. If the character starts a new run, the run closed by
// it is returned, if not blank.
func (b *segmentBuilder) push(r rune) (TextSegment, bool) {
	st := Classify(r)
	if !b.seeded {
		b.seeded = true
		b.script = st
		b.buf.WriteRune(r)
		return TextSegment{}, false
	}
	if st == b.script || st == Punctuation {
		b.buf.WriteRune(r)
		return TextSegment{}, false
	}
	seg, ok := b.segment()
	b.buf.Reset()
	b.buf.WriteRune(r)
	b.script = st
	return seg, ok
}

// flush returns the last run of text, if not blank.
func (b *segmentBuilder) flush() (TextSegment, bool) {
	if !b.seeded {
		return TextSegment{}, false
	}
	seg, ok := b.segment()
	b.buf.Reset()
	b.seeded = false
	return seg, ok
}

func (b *segmentBuilder) segment() (TextSegment, bool) {
	text := strings.TrimFunc(b.buf.String(), unicode.IsSpace)
	if text == "" {
		return TextSegment{}, false
	}
	return TextSegment{Text: text, Script: b.script}, true
}
