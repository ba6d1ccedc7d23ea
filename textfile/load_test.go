package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/mixedtext"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const fatiha = `In the name of Allah,
the Entirely Merciful, the Especially Merciful.

بِسْمِ اللَّهِ الرَّحْمَنِ الرَّحِيمِ ۝١


[All] praise is [due] to Allah, Lord of the worlds ﷺ
`

func writeFile(t *testing.T, content string) string {
	name := filepath.Join(t.TempDir(), "fatiha.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mixedtext")
	defer teardown()
	//
	paras, err := Load(writeFile(t, fatiha))
	if err != nil {
		t.Fatal(err)
	}
	if len(paras) != 3 {
		t.Fatalf("expected 3 paragraphs, have %d: %q", len(paras), paras)
	}
	if paras[0] != "In the name of Allah, the Entirely Merciful, the Especially Merciful." {
		t.Errorf("unexpected first paragraph %q", paras[0])
	}
}

func TestLoadNotRegular(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, mixedtext.ErrNotRegularFile) {
		t.Errorf("expected loading a directory to fail, have %v", err)
	}
	if _, err = Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("expected loading a missing file to fail")
	}
}

func TestLoadInvalidUTF8(t *testing.T) {
	if _, err := Load(writeFile(t, "abc\xff\xfe")); err == nil {
		t.Errorf("expected invalid UTF-8 to be rejected")
	}
}

func TestLoadLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mixedtext")
	defer teardown()
	//
	p := mixedtext.NewParser(mixedtext.Config{AsyncThreshold: 40})
	content := fatiha + "\n" + strings.Repeat("Allah ﷻ الله ", 20) + "\n"
	lines, err := LoadLines(writeFile(t, content), p)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 4 {
		t.Fatalf("expected 4 paragraphs, have %d", len(lines))
	}
	if len(lines[1]) != 1 || !lines[1][0].RightToLeft {
		t.Errorf("expected second paragraph to be a single rtl line, have %v", lines[1])
	}
	if len(lines[3]) != 40 {
		t.Errorf("expected last paragraph to alternate 40 times, have %d lines", len(lines[3]))
	}
	if p.CacheStats().Size != 4 {
		t.Errorf("expected all paragraphs to be cached, have %d", p.CacheStats().Size)
	}
}
