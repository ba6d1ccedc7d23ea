package htmltext

import (
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/mixedtext"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestHTMLParagraphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mixedtext")
	defer teardown()
	//
	r := strings.NewReader(`<p>The Prophet <b>ﷺ</b> said:</p>
	<p dir="rtl">إنما الأعمال<br>بالنيات</p><script>var x = 1;</script>`)
	paras, err := FromHTML(r)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"The Prophet ﷺ said:", "إنما الأعمال", "بالنيات"}
	if !reflect.DeepEqual(paras, expected) {
		t.Errorf("expected %q, have %q", expected, paras)
	}
}

func TestInnerText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mixedtext")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`
	<!DOCTYPE html>
	<html>
	<head><style>p { color: red; }</style></head>
	<body>
	<h1>Tafseer</h1>
	<p>My <i>first</i> paragraph.</p>
	</body>
	</html>
`))
	if err != nil {
		t.Fatal(err)
	}
	text, err := InnerText(doc)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("text = %q", text)
	if paras := Paragraphs(text); !reflect.DeepEqual(paras, []string{"Tafseer", "My first paragraph."}) {
		t.Errorf("unexpected paragraphs %q", paras)
	}
	if _, err := InnerText(nil); err != mixedtext.ErrIllegalArguments {
		t.Errorf("expected error for nil node")
	}
}

func TestHTMLLines(t *testing.T) {
	p := mixedtext.NewParser(mixedtext.Config{})
	lines, err := Lines(strings.NewReader(`<div>Hello <span>بسم الله</span> World</div>`), p)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || len(lines[0]) != 3 {
		t.Fatalf("expected one paragraph of 3 lines, have %v", lines)
	}
	if !lines[0][1].RightToLeft {
		t.Errorf("expected second line to be rtl")
	}
	if p.CacheStats().Size != 1 {
		t.Errorf("expected paragraph to be cached")
	}
}
