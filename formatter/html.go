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

	"github.com/npillmayer/mixedtext"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var htmlClassNames = map[mixedtext.ScriptType]string{
	mixedtext.Arabic:      "arabic",
	mixedtext.Urdu:        "urdu",
	mixedtext.English:     "english",
	mixedtext.Punctuation: "punctuation",
}

// HTML is a format for simple HTML output. Every line of text results in a
// paragraph element carrying a `dir` attribute, every segment in a span
// element with a CSS class naming its script:
//
//	<p dir="rtl" style="text-align:right"><span class="arabic">بسم الله</span></p>
//
// Wrapped rows are separated by `<br>` elements. The document is built as a
// tree of html.Nodes and rendered by Postamble, therefore text is always
// escaped properly.
type HTML struct {
	paras        []*html.Node
	current      *html.Node
	pendingBreak bool
	err          error
}

// NewHTML creates an HTML formatter.
func NewHTML() *HTML {
	return &HTML{}
}

// Print outputs lines of text as HTML.
//
// If parameter config is nil, lines are not wrapped.
func (h *HTML) Print(lines []mixedtext.TextLine, w io.Writer, config *Config) error {
	if config == nil {
		config = &Config{}
	}
	return Output(lines, w, config, h)
}

// Err returns the first error occurring while rendering HTML.
func (h *HTML) Err() error {
	return h.err
}

// Preamble is called by the output driver before lines of text will be
// formatted. It resets the formatter.
// (Part of interface Format)
func (h *HTML) Preamble(w io.Writer) {
	h.paras, h.current = nil, nil
	h.pendingBreak = false
	h.err = nil
}

// Postamble will be called after lines of text have been formatted.
// It renders the paragraphs collected, one per output line.
// (Part of interface Format)
func (h *HTML) Postamble(w io.Writer) {
	for _, p := range h.paras {
		if err := html.Render(w, p); err != nil {
			tracer().Errorf("rendering HTML: %v", err)
			h.err = err
			return
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			h.err = err
			return
		}
	}
}

// LTR starts a left-to-right paragraph.
// (Part of interface Format)
func (h *HTML) LTR(w io.Writer) {
	h.paragraph("ltr")
}

// RTL starts a right-to-left paragraph.
// (Part of interface Format)
func (h *HTML) RTL(w io.Writer) {
	h.paragraph("rtl")
}

func (h *HTML) paragraph(dir string) {
	p := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.P,
		Data:     "p",
		Attr:     []html.Attribute{{Key: "dir", Val: dir}},
	}
	if dir == "rtl" {
		p.Attr = append(p.Attr, html.Attribute{Key: "style", Val: "text-align:right"})
	}
	h.paras = append(h.paras, p)
	h.current = p
	h.pendingBreak = false
}

// Segment is called by the formatting driver to output a segment of text.
// (Part of interface Format)
func (h *HTML) Segment(s string, script mixedtext.ScriptType, w io.Writer) {
	if h.current == nil {
		h.paragraph("ltr")
	}
	if h.pendingBreak {
		h.current.AppendChild(&html.Node{Type: html.ElementNode, DataAtom: atom.Br, Data: "br"})
		h.pendingBreak = false
	}
	text := &html.Node{Type: html.TextNode, Data: s}
	if strings.TrimSpace(s) == "" {
		h.current.AppendChild(text)
		return
	}
	span := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Span,
		Data:     "span",
		Attr:     []html.Attribute{{Key: "class", Val: htmlClassNames[script]}},
	}
	span.AppendChild(text)
	h.current.AppendChild(span)
}

// Newline will be called at the end of every formatted row of text.
// A `<br>` element is inserted if more text follows within the paragraph.
// (Part of interface Format)
func (h *HTML) Newline(w io.Writer) {
	if h.current != nil && h.current.FirstChild != nil {
		h.pendingBreak = true
	}
}
