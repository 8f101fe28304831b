// Package report formats calculation results as plain-text calculation sheets.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

// sheet wraps a writer with the banner and section helpers shared by all
// reports. The first write error is kept and later writes are skipped.
type sheet struct {
	w   io.Writer
	err error
}

func (s *sheet) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *sheet) println(args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintln(s.w, args...)
}

func (s *sheet) banner(title string) {
	s.println()
	s.println(heavyRule)
	s.printf("     %s\n", title)
	s.println(heavyRule)
	s.println()
}

func (s *sheet) heading(title string) {
	s.println(strings.ToUpper(title) + ":")
	s.println(lightRule)
}

// table runs fn against a tabwriter and flushes it
func (s *sheet) table(fn func(tw *tabwriter.Writer)) {
	if s.err != nil {
		return
	}
	tw := tabwriter.NewWriter(s.w, 0, 0, 2, ' ', 0)
	fn(tw)
	s.err = tw.Flush()
}

// box prints a highlighted one-line result
func (s *sheet) box(format string, args ...any) {
	s.printf("  ╔═════════════════════════════════════════════╗\n")
	s.printf("  ║  "+format+"\n", args...)
	s.printf("  ╚═════════════════════════════════════════════╝\n")
	s.println()
}
