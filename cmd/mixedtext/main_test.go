package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/mixedtext"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func run(t *testing.T, args ...string) (string, string, error) {
	cmd := newRootCmd()
	var out, errout bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errout)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errout.String(), err
}

func TestSegmentsCommand(t *testing.T) {
	out, _, err := run(t, "segments", "Hello", "بسم الله", "World")
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", out)
	if strings.Count(out, "line ") != 3 || !strings.Contains(out, "line 2 (rtl)") {
		t.Errorf("expected 3 lines with the second one rtl, have\n%s", out)
	}
	if !strings.Contains(out, `ARABIC      "بسم الله"`) {
		t.Errorf("expected an Arabic segment, have\n%s", out)
	}
}

func TestExplainCommand(t *testing.T) {
	out, _, err := run(t, "explain", "a\u067E\uFDFA")
	if err != nil {
		t.Fatal(err)
	}
	rows := strings.Split(strings.TrimSpace(out), "\n")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, have %d:\n%s", len(rows), out)
	}
	for i, expected := range []string{"ENGLISH", "URDU", "PUNCTUATION"} {
		if !strings.Contains(rows[i], expected) {
			t.Errorf("expected row %d to contain %s, have %q", i, expected, rows[i])
		}
	}
	if !strings.Contains(rows[1], "ARABIC LETTER PEH") {
		t.Errorf("expected rune name in row, have %q", rows[1])
	}
}

func TestLinesCommandHTML(t *testing.T) {
	out, _, err := run(t, "lines", "--html", "Hello <b>", "الله")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `<p dir="rtl"`) || !strings.Contains(out, "&lt;b&gt;") {
		t.Errorf("unexpected HTML output %q", out)
	}
}

func TestLinesCommandAsync(t *testing.T) {
	out, progress, err := run(t, "lines", "--async", "--plain", "--width", "0", "Hello", "الله")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 rows, have %q", out)
	}
	if !strings.Contains(progress, mixedtext.StageComplete) {
		t.Errorf("expected progress to complete, have %q", progress)
	}
}

func TestLinesCommandNoText(t *testing.T) {
	if _, _, err := run(t, "lines"); err == nil {
		t.Errorf("expected lines without text to fail")
	}
}

func TestFlagConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mixedtext")
	defer teardown()
	//
	cmd := newRootCmd()
	if err := cmd.PersistentFlags().Parse([]string{"--cache-max", "7"}); err != nil {
		t.Fatal(err)
	}
	config := mixedtext.ConfigFrom(flagConfig{cmd.PersistentFlags()})
	if config.MaxCacheEntries != 7 {
		t.Errorf("expected cache size 7, have %d", config.MaxCacheEntries)
	}
	if config.EvictBatch != mixedtext.DefaultConfig().EvictBatch {
		t.Errorf("expected default evict batch, have %d", config.EvictBatch)
	}
}
