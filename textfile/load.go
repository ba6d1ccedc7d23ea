package textfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/mixedtext"
)

// maxLineLength is the longest line of text accepted by Load.
const maxLineLength = 1024000

// Load reads a file, which must be a regular UTF-8 text file, and splits it
// into paragraphs. Paragraphs are separated by one or more blank lines; lines
// within a paragraph are joined by a single space.
func Load(name string) ([]string, error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var paras []string
	var para []string
	flush := func() {
		if len(para) > 0 {
			paras = append(paras, strings.Join(para, " "))
			para = para[:0]
		}
	}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("file %s, line %d: invalid UTF-8", name, lineno)
		}
		if line = strings.TrimSpace(line); line == "" {
			flush()
			continue
		}
		para = append(para, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file %s: %w", name, err)
	}
	flush()
	tracer().Debugf("loaded %d paragraphs from %s", len(paras), name)
	return paras, nil
}

// openFile opens an OS file, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", name, mixedtext.ErrNotRegularFile)
	}
	return os.Open(name) // just open for read access
}

// LoadLines loads a text file and segments its paragraphs using parser p.
// Paragraphs are segmented concurrently; the result holds the lines of each
// paragraph in file order.
func LoadLines(name string, p *mixedtext.Parser) ([][]mixedtext.TextLine, error) {
	if p == nil {
		return nil, mixedtext.ErrIllegalArguments
	}
	paras, err := Load(name)
	if err != nil {
		return nil, err
	}
	jobs := make([]*mixedtext.Job, len(paras))
	for i, para := range paras {
		jobs[i] = p.Resolve(para, nil)
	}
	result := make([][]mixedtext.TextLine, len(paras))
	for i, job := range jobs {
		result[i] = job.Wait()
	}
	return result, nil
}
