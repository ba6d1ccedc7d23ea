package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/mixedtext"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

func TestConsoleLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mixedtext")
	defer teardown()
	//
	color.NoColor = true
	lines := mixedtext.Lines("Hello بسم الله World")
	var out bytes.Buffer
	console := NewConsole(&PlainCodes, nil)
	if err := Output(lines, &out, &Config{}, console); err != nil {
		t.Fatal(err)
	}
	expected := "Hello\nبسم الله\nWorld\n"
	if out.String() != expected {
		t.Errorf("expected %q, have %q", expected, out.String())
	}
}

func TestConsoleControlCodes(t *testing.T) {
	color.NoColor = true
	lines := mixedtext.Lines("Hello بسم")
	var out bytes.Buffer
	codes := &ControlCodes{
		Preamble:  []byte("<"),
		Postamble: []byte(">"),
		LTR:       []byte("L:"),
		RTL:       []byte("R:"),
		Newline:   []byte("|"),
	}
	if err := Output(lines, &out, &Config{}, NewConsole(codes, Palette{})); err != nil {
		t.Fatal(err)
	}
	if out.String() != "<L:Hello|R:بسم|>" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mixedtext")
	defer teardown()
	//
	color.NoColor = true
	text := "The quick brown fox jumps over the lazy dog"
	var out bytes.Buffer
	config := &Config{LineWidth: 10, Context: uax11.LatinContext}
	if err := Output(mixedtext.Lines(text), &out, config, NewConsole(&PlainCodes, nil)); err != nil {
		t.Fatal(err)
	}
	rows := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	t.Logf("rows = %q", rows)
	if len(rows) < 4 {
		t.Errorf("expected text to be wrapped into at least 4 rows, have %d", len(rows))
	}
	for _, row := range rows {
		if len(row) > 10 {
			t.Errorf("row %q exceeds line width", row)
		}
	}
	if strings.Join(strings.Fields(out.String()), " ") != text {
		t.Errorf("wrapping changed the text: %q", out.String())
	}
}

func TestLayout(t *testing.T) {
	for _, s := range []string{
		"Hello ﷺ World",
		"The Prophet ﷺ said: «إنما الأعمال بالنيات» (Bukhari 1).",
		"قال رسول الله ﷺ: Actions are judged by intentions.",
	} {
		for _, line := range mixedtext.Lines(s) {
			text, pieces := layout(line)
			if text != line.Text() {
				t.Errorf("layout text %q differs from line text %q", text, line.Text())
			}
			end := 0
			for _, p := range pieces {
				if p.from != end {
					t.Errorf("gap in pieces of %q at %d", text, end)
				}
				end = p.to
			}
			if end != len(text) {
				t.Errorf("pieces do not cover %q", text)
			}
		}
	}
}

func TestHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mixedtext")
	defer teardown()
	//
	lines := mixedtext.Lines("Hello <b> بسم الله")
	var out bytes.Buffer
	if err := NewHTML().Print(lines, &out, nil); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	t.Logf("HTML = %s", s)
	if !strings.Contains(s, `<p dir="ltr"><span class="english">Hello &lt;b&gt;</span></p>`) {
		t.Errorf("expected escaped ltr paragraph, have %s", s)
	}
	if !strings.Contains(s, `<p dir="rtl" style="text-align:right"><span class="arabic">بسم الله</span></p>`) {
		t.Errorf("expected rtl paragraph, have %s", s)
	}
}

func TestHTMLWrapped(t *testing.T) {
	lines := mixedtext.Lines("aaaa bbbb cccc")
	var out bytes.Buffer
	if err := NewHTML().Print(lines, &out, &Config{LineWidth: 5}); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out.String(), "<br/>"); n != 2 {
		t.Errorf("expected 2 line breaks, have %d in %s", n, out.String())
	}
}

func TestOutputIllegalArguments(t *testing.T) {
	if err := Output(nil, nil, &Config{}, NewHTML()); err != mixedtext.ErrIllegalArguments {
		t.Errorf("expected illegal arguments error, have %v", err)
	}
}
