package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/mixedtext"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/runenames"
)

func newSegmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "segments text...",
		Short: "List the script segments of a text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := a.parser.Lines(strings.Join(args, " "))
			printSegments(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}

func printSegments(w io.Writer, lines []mixedtext.TextLine) {
	for i, line := range lines {
		dir := "ltr"
		if line.RightToLeft {
			dir = "rtl"
		}
		fmt.Fprintf(w, "line %d (%s)\n", i+1, dir)
		for _, seg := range line.Segments {
			fmt.Fprintf(w, "    %-11s %q\n", seg.Script, seg.Text)
		}
	}
}

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain text...",
		Short: "Show the script class of every character of a text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			explain(cmd.OutOrStdout(), strings.Join(args, " "))
			return nil
		},
	}
}

// explain prints one row per character: code point, glyph, class and name.
func explain(w io.Writer, text string) {
	for _, r := range text {
		glyph := string(r)
		if runewidth.RuneWidth(r) == 0 {
			glyph = "" // combining or invisible
		}
		fmt.Fprintf(w, "%-8U %s %-11s %s\n", r, runewidth.FillRight(glyph, 2),
			mixedtext.Classify(r), runenames.Name(r))
	}
}
