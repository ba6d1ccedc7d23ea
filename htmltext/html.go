package htmltext

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/mixedtext"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements start a new paragraph.
var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Li: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Tr: true, atom.Section: true, atom.Article: true,
}

// InnerText returns the textual content of an HTML element and all its
// descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that `InnerText` cannot respect CSS styling (including
// properties changing the visibility of the node's descendents).
// Block elements and <br> are represented by newlines.
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", mixedtext.ErrIllegalArguments
	}
	var b strings.Builder
	collectText(n, &b)
	return b.String(), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
		tracer().Debugf("html text: collect text of <%s>", n.Data)
		if blockElements[n.DataAtom] {
			b.WriteByte('\n')
		}
	case html.TextNode:
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
	if n.Type == html.ElementNode && blockElements[n.DataAtom] {
		b.WriteByte('\n')
	}
}

// FromHTML extracts the paragraphs of text from an HTML fragment.
// Paragraphs are trimmed, white space within a paragraph is collapsed and
// blank paragraphs are dropped.
func FromHTML(input io.Reader) ([]string, error) {
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	})
	if err != nil {
		return nil, fmt.Errorf("parsing HTML fragment: %w", err)
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return Paragraphs(b.String()), nil
}

// Paragraphs splits text at newlines into trimmed, non-blank paragraphs with
// white space collapsed.
func Paragraphs(text string) []string {
	var paras []string
	for _, line := range strings.Split(text, "\n") {
		if p := strings.Join(strings.FieldsFunc(line, unicode.IsSpace), " "); p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

// Lines extracts paragraphs of text from an HTML fragment and segments every
// paragraph using parser p.
func Lines(input io.Reader, p *mixedtext.Parser) ([][]mixedtext.TextLine, error) {
	if p == nil {
		return nil, mixedtext.ErrIllegalArguments
	}
	paras, err := FromHTML(input)
	if err != nil {
		return nil, err
	}
	result := make([][]mixedtext.TextLine, len(paras))
	for i, para := range paras {
		result[i] = p.Lines(para)
	}
	return result, nil
}
