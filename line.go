package mixedtext

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TextLine is a sequence of segments to be rendered as one paragraph with a
// uniform direction. A line is right-to-left if and only if it contains at
// least one Arabic or Urdu segment.
type TextLine struct {
	Segments    []TextSegment
	RightToLeft bool
}

// Text returns the text of a line. Segments are joined with a single space
// wherever neither side of a segment boundary carries white space already.
func (line TextLine) Text() string {
	var b strings.Builder
	for i, seg := range line.Segments {
		if i > 0 && needsSpace(line.Segments[i-1].Text, seg.Text) {
			b.WriteByte(' ')
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

func needsSpace(left, right string) bool {
	l, _ := utf8.DecodeLastRuneInString(left)
	r, _ := utf8.DecodeRuneInString(right)
	return !unicode.IsSpace(l) && !unicode.IsSpace(r)
}

func (line TextLine) String() string {
	dir := "ltr"
	if line.RightToLeft {
		dir = "rtl"
	}
	return dir + "[" + line.Text() + "]"
}

// Group groups segments into lines of uniform direction.
//
// An Arabic or Urdu segment continues a line which already holds right-to-left
// text, otherwise it closes the current (left-to-right) line and opens a new one.
// An English segment closes a line holding right-to-left text and opens a new
// one, otherwise it continues the current line. Punctuation segments are
// appended to whatever line is open.
func Group(segments []TextSegment) []TextLine {
	var lines []TextLine
	var current []TextSegment
	rtl := false // current holds an Arabic or Urdu segment
	closeLine := func() {
		if len(current) > 0 {
			lines = append(lines, TextLine{Segments: current, RightToLeft: rtl})
		}
		current, rtl = nil, false
	}
	for _, seg := range segments {
		switch {
		case seg.Script.IsRTL():
			if !rtl {
				closeLine()
				rtl = true
			}
		case seg.Script == English:
			if rtl {
				closeLine()
			}
		}
		current = append(current, seg)
	}
	closeLine()
	return lines
}

// Lines segments a text and groups the segments into lines. It does not
// consult a cache; see Parser.Lines for a cached variant.
func Lines(text string) []TextLine {
	return Group(Parse(text))
}
