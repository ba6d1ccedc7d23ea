/*
Package textfile provides API helpers to load UTF-8 text files, e.g. files of
Quran translations or commentary, as paragraphs of mixed-script text.

Paragraphs are separated by blank lines. LoadLines segments all paragraphs of
a file in the background, long paragraphs asynchronously through
mixedtext.Parser.Resolve, while preserving a synchronous API.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mixedtext'
func tracer() tracing.Trace {
	return tracing.Select("mixedtext")
}
