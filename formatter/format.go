package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/mixedtext"
	"github.com/npillmayer/uax/uax11"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // wrap lines to this width in 'en's; 0 disables wrapping
	Context   *uax11.Context // context for measuring text width
}

// Format is an interface for formatting drivers, given an io.Writer
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	LTR(io.Writer)
	RTL(io.Writer)
	Segment(string, mixedtext.ScriptType, io.Writer)
	Newline(io.Writer)
}

// errorReporter is implemented by formats which remember output errors.
type errorReporter interface {
	Err() error
}

// Output formats lines of mixed-script text using a given formatter.
//
// Neither of out, config and format may be nil. However, it is safe to have
// config.Context set to nil. In this case, uax11.LatinContext is used.
//
// For every line, Output first signals its direction to the format. The text
// of the line is wrapped to config.LineWidth, and every row of the wrapped text
// is output segment by segment, followed by a newline.
func Output(lines []mixedtext.TextLine, out io.Writer, config *Config, format Format) error {
	if out == nil || config == nil || format == nil {
		return mixedtext.ErrIllegalArguments
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	format.Preamble(out)
	for i, line := range lines {
		if line.RightToLeft {
			format.RTL(out)
		} else {
			format.LTR(out)
		}
		text, pieces := layout(line)
		breaks := []int{len(text)}
		if config.LineWidth > 0 {
			breaks = firstFit(text, config.LineWidth, context)
		}
		tracer().Debugf("[%3d] %v wrapped at %v", i, line, breaks)
		from := 0
		for _, to := range breaks {
			for _, p := range pieces {
				if s := p.cut(text, from, to); s != "" {
					format.Segment(s, p.script, out)
				}
			}
			format.Newline(out)
			from = to
		}
	}
	format.Postamble(out)
	if r, ok := format.(errorReporter); ok {
		return r.Err()
	}
	return nil
}

// piece is a section of a line's text, covering a segment or the space
// inserted between two segments.
type piece struct {
	from, to int
	script   mixedtext.ScriptType
}

// layout returns the text of a line, together with the pieces it consists of.
// The text equals line.Text().
func layout(line mixedtext.TextLine) (string, []piece) {
	var b strings.Builder
	pieces := make([]piece, 0, 2*len(line.Segments))
	for i, seg := range line.Segments {
		if i > 0 && needsSpace(line.Segments[i-1].Text, seg.Text) {
			pieces = append(pieces, piece{b.Len(), b.Len() + 1, mixedtext.Punctuation})
			b.WriteByte(' ')
		}
		pieces = append(pieces, piece{b.Len(), b.Len() + len(seg.Text), seg.Script})
		b.WriteString(seg.Text)
	}
	return b.String(), pieces
}

func needsSpace(left, right string) bool {
	return !endsWithSpace(left) && !startsWithSpace(right)
}

func endsWithSpace(s string) bool {
	return strings.TrimRightFunc(s, unicode.IsSpace) != s
}

func startsWithSpace(s string) bool {
	return strings.TrimLeftFunc(s, unicode.IsSpace) != s
}

// cut returns the part of a piece located in row from…to of text. White space
// at the end of a row is dropped.
func (p piece) cut(text string, from, to int) string {
	if p.to <= from || p.from >= to {
		return ""
	}
	l, r := p.from, p.to
	if l < from {
		l = from
	}
	if r > to {
		r = to
	}
	s := text[l:r]
	if r == to {
		s = strings.TrimRightFunc(s, unicode.IsSpace)
	}
	if l == from {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
	}
	return s
}
