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
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/mixedtext"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ControlCodes holds certain escape sequences which a terminal uses to control
// Bidi behaviour.
type ControlCodes struct {
	Preamble, Postamble []byte
	LTR, RTL            []byte
	Newline             []byte
}

// DefaultCodes is the default set of control codes.
// See https://terminal-wg.pages.freedesktop.org/bidi/recommendation/escape-sequences.html
var DefaultCodes = ControlCodes{
	Preamble:  []byte{27, '[', '8', 'l'}, // switch to explicit mode
	Postamble: []byte{27, '[', ' ', 'k'}, // default direction
	LTR:       []byte{27, '[', '1', ' ', 'k'},
	RTL:       []byte{27, '[', '2', ' ', 'k'},
	Newline:   []byte{'\n'},
}

// PlainCodes is a set of control codes for devices without Bidi support.
var PlainCodes = ControlCodes{
	Newline: []byte{'\n'},
}

// Palette maps script types to terminal colors. Script types missing from a
// palette are output without color.
type Palette map[mixedtext.ScriptType]*color.Color

// DefaultPalette returns the palette used if clients do not provide one.
func DefaultPalette() Palette {
	return Palette{
		mixedtext.Arabic: color.New(color.FgGreen),
		mixedtext.Urdu:   color.New(color.FgCyan),
	}
}

// Console is a format for outputting mixed-script text to a console with
// a fixed width font.
//
// As long as there is not widely accepted standard for Bidi-handling in
// terminals, we have to rely on explicitly set device-dependent configuration.
type Console struct {
	Codes  *ControlCodes
	colors Palette
}

// NewConsole creates a new formatter for consoles with a fixed width font.
//
// codes is a table of escape sequences to control Bidi behaviour of the console.
// colors is a palette used for displaying text of different scripts.
// Both may be nil, selecting DefaultCodes and DefaultPalette.
func NewConsole(codes *ControlCodes, colors Palette) *Console {
	fw := &Console{
		Codes:  &DefaultCodes,
		colors: colors,
	}
	if codes != nil {
		fw.Codes = codes
	}
	if colors == nil {
		fw.colors = DefaultPalette()
	}
	return fw
}

// Print outputs lines of text to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func (fw *Console) Print(lines []mixedtext.TextLine, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(lines, os.Stdout, config, fw)
}

// Segment is called by the formatting driver to output a segment of text.
// It uses colors to visualize scripts.
// (Part of interface Format)
func (fw *Console) Segment(s string, script mixedtext.ScriptType, w io.Writer) {
	if c, ok := fw.colors[script]; ok && c != nil {
		c.Fprint(w, s)
		return
	}
	w.Write([]byte(s))
}

// Preamble is called by the output driver before lines of text will be formatted.
// It outputs the `Preamble` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *Console) Preamble(w io.Writer) {
	w.Write(fw.Codes.Preamble)
}

// Postamble will be called after lines of text have been formatted.
// It outputs the `Postamble` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *Console) Postamble(w io.Writer) {
	w.Write(fw.Codes.Postamble)
}

// LTR signals to w that a left-to-right line is to be output.
// (Part of interface Format)
func (fw *Console) LTR(w io.Writer) {
	w.Write(fw.Codes.LTR)
}

// RTL signals to w that a right-to-left line is to be output.
// (Part of interface Format)
func (fw *Console) RTL(w io.Writer) {
	w.Write(fw.Codes.RTL)
}

// Newline will be called at the end of every formatted row of text.
// It outputs the `Newline` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *Console) Newline(w io.Writer) {
	w.Write(fw.Codes.Newline)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
