/*
Package mixedtext splits text mixing Arabic, Urdu and Latin script into runs
of uniform script and groups these runs into lines of uniform direction.

Texts of religious literature, like Quran translations or tafseer, frequently
embed Arabic quotations into English or Urdu prose, sprinkled with honorific
ligatures (ﷺ) and Quranic marks (۝). Rendering such texts with a single font
and a single paragraph direction produces garbled output. This package
prepares the text for a renderer:

▪︎ Classify every character into a script type (Arabic, Urdu, English, Punctuation)

▪︎ Collect consecutive characters of the same script into text segments

▪︎ Group segments into lines, switching lines wherever direction changes

Punctuation never starts a segment of its own and never forces a line break.
Inline Arabic symbols (honorifics, end-of-ayah marks) count as punctuation,
therefore they stay within a Latin run.

	lines := mixedtext.Lines("Hello بسم الله World")
	// → [Hello] (ltr), [بسم الله] (rtl), [World] (ltr)

Segmentation is pure, which makes caching by the raw input string sound.
Type Parser combines segmentation with a bounded Cache and offers an
asynchronous variant reporting progress for long texts.

Classification relies on fixed tables of code points. Characters outside of
these tables silently fall back to English; this is a matter of extending the
tables, not an error condition.

_________________________________________________________________________

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
package mixedtext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mixedtext'
func tracer() tracing.Trace {
	return tracing.Select("mixedtext")
}

// MixedTextError is an error type for the mixedtext module
type MixedTextError string

func (e MixedTextError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MixedTextError("illegal arguments")

// ErrNotRegularFile is flagged when loading text from something other than a
// regular file.
const ErrNotRegularFile = MixedTextError("not a regular file")
