/*
Package htmltext extracts plain text from HTML fragments, as delivered for
tafseer and translation content, to be segmented by package mixedtext.

Inline elements (<b>, <i>, <span>, …) are flattened, block elements and <br>
separate paragraphs. Content of <script> and <style> elements is dropped.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package htmltext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mixedtext'
func tracer() tracing.Trace {
	return tracing.Select("mixedtext")
}
