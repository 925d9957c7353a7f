package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/izza-m1/Secgap-Analyzer/internal/scan"
)

var (
	colorGood    = color.New(color.FgGreen).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorBad     = color.New(color.FgRed).SprintFunc()
	colorHeading = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// TextWriter prints a colored, human-readable summary.
type TextWriter struct {
	out io.Writer
}

func NewTextWriter(out io.Writer) *TextWriter {
	return &TextWriter{out: out}
}

func (w *TextWriter) Write(report *scan.Report) error {
	p := &printer{out: w.out}
	p.printf("%s %s\n", colorHeading("Target:"), report.URL)

	if r := report.Headers; r != nil {
		p.printf("\n%s %s\n", colorHeading("Security headers"), scoreColor(r.Score)(fmt.Sprintf("%d/100", r.Score)))
		for _, issue := range r.IssuesFound {
			p.printf("  - %s\n", issue)
		}
	}

	if r := report.Cookies; r != nil {
		p.printf("\n%s\n", colorHeading("Cookies"))
		for _, c := range r.Cookies {
			p.printf("  - %s\n", c.Cookie)
		}
	}

	if r := report.Phishing; r != nil {
		verdict := colorGood("not suspicious")
		if r.Suspicious {
			verdict = colorBad("suspicious")
		}
		p.printf("\n%s %s\n", colorHeading("Phishing heuristic"), verdict)
		for _, reason := range r.Reasons {
			p.printf("  - %s\n", reason)
		}
	}

	return p.err
}

func scoreColor(score int) func(a ...interface{}) string {
	switch {
	case score >= 80:
		return colorGood
	case score >= 50:
		return colorWarn
	default:
		return colorBad
	}
}

// printer remembers the first write error so callers check once.
type printer struct {
	out io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.out, format, args...)
}
