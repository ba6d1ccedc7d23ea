/*
Package formatter outputs lines of mixed-script text, as produced by package
mixedtext, to terminals and as HTML.

Think of this package in terms of `fmt.Println` for text mixing Arabic, Urdu
and Latin script. Every mixedtext.TextLine is a paragraph of uniform
direction. A formatter signals the direction of each paragraph to the output
device, wraps the paragraph's text to a configured width and outputs every
segment of text in a style appropriate for its script (a color on terminals,
a CSS class in HTML).

	lines := parser.Lines("The Prophet ﷺ said: إنما الأعمال بالنيات")
	formatter.NewConsole(nil, nil).Print(lines, nil)

Line wrapping follows UAX#14 (line breaking), measuring text with UAX#11
(East Asian width) on grapheme clusters (UAX#29). This package does not
constitute a typesetter: no fonts, no shaping, no reordering of glyphs.
Reordering of right-to-left text is left to the output device, which is
instructed by escape sequences (terminals) or `dir` attributes (HTML).

Console/Terminal output is notoriously tricky for bi-directional text. Refer to
https://terminal-wg.pages.freedesktop.org/bidi/bidi-intro/why-terminals-are-special.html
for the difficulties behind this.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mixedtext'
func tracer() tracing.Trace {
	return tracing.Select("mixedtext")
}
