package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/mixedtext"
	"github.com/npillmayer/mixedtext/formatter"
	"github.com/npillmayer/mixedtext/htmltext"
	"github.com/npillmayer/mixedtext/textfile"
	"github.com/npillmayer/uax/uax11"
	"github.com/spf13/cobra"
)

type linesOptions struct {
	file      string
	htmlInput bool
	htmlOut   bool
	width     int
	async     bool
	plain     bool
}

func newLinesCmd(a *app) *cobra.Command {
	opts := &linesOptions{}
	cmd := &cobra.Command{
		Use:   "lines [text...]",
		Short: "Print text as lines of uniform direction",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLines(cmd, opts, args)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.file, "file", "f", "", "read paragraphs from a text file")
	fs.BoolVar(&opts.htmlInput, "from-html", false, "input file is an HTML fragment")
	fs.BoolVar(&opts.htmlOut, "html", false, "output HTML instead of terminal text")
	fs.IntVarP(&opts.width, "width", "w", -1, "wrap lines at width (0 = no wrapping, default: terminal width)")
	fs.BoolVar(&opts.async, "async", false, "parse in the background, reporting progress on stderr")
	fs.BoolVar(&opts.plain, "plain", false, "no colors and no bidi control codes")
	return cmd
}

func (a *app) runLines(cmd *cobra.Command, opts *linesOptions, args []string) error {
	paras, err := a.paragraphs(cmd, opts, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if opts.htmlOut {
		config := &formatter.Config{LineWidth: opts.width, Context: uax11.LatinContext}
		if opts.width < 0 {
			config.LineWidth = 0
		}
		return formatter.NewHTML().Print(flatten(paras), out, config)
	}
	var console *formatter.Console
	if opts.plain {
		color.NoColor = true
		console = formatter.NewConsole(&formatter.PlainCodes, nil)
	} else {
		console = formatter.NewConsole(nil, nil)
	}
	config := formatter.ConfigFromTerminal()
	config.Context = uax11.ContextFromEnvironment()
	if opts.width >= 0 {
		config.LineWidth = opts.width
	}
	for _, lines := range paras {
		if err := formatter.Output(lines, out, config, console); err != nil {
			return err
		}
	}
	return nil
}

// paragraphs collects the lines of every input paragraph, either from a file
// or from the command line arguments.
func (a *app) paragraphs(cmd *cobra.Command, opts *linesOptions, args []string) ([][]mixedtext.TextLine, error) {
	switch {
	case opts.file != "" && opts.htmlInput:
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return htmltext.Lines(f, a.parser)
	case opts.file != "":
		return textfile.LoadLines(opts.file, a.parser)
	case len(args) == 0:
		return nil, fmt.Errorf("no text to display: %w", mixedtext.ErrIllegalArguments)
	}
	text := strings.Join(args, " ")
	if opts.async {
		job := a.parser.Start(text, progressPrinter(cmd.ErrOrStderr()))
		return [][]mixedtext.TextLine{job.Wait()}, nil
	}
	return [][]mixedtext.TextLine{a.parser.Resolve(text, nil).Wait()}, nil
}

func progressPrinter(w io.Writer) mixedtext.ProgressListener {
	return mixedtext.ProgressFunc(func(p mixedtext.Progress) {
		fmt.Fprintf(w, "%5.1f%% %s\n", p.Percentage, p.Stage)
	})
}

func flatten(paras [][]mixedtext.TextLine) []mixedtext.TextLine {
	var lines []mixedtext.TextLine
	for _, p := range paras {
		lines = append(lines, p...)
	}
	return lines
}
