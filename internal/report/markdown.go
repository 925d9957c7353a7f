package report

import (
	"io"
	"strconv"

	"github.com/izza-m1/Secgap-Analyzer/internal/checker"
	"github.com/izza-m1/Secgap-Analyzer/internal/scan"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs a Markdown document with one section per check.
type MarkdownWriter struct {
	out io.Writer
}

func NewMarkdownWriter(out io.Writer) *MarkdownWriter {
	return &MarkdownWriter{out: out}
}

func (w *MarkdownWriter) Write(report *scan.Report) error {
	md := markdown.NewMarkdown(w.out)

	md.H1("Secgap Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", "`" + report.URL + "`"},
			{"Checks", strconv.Itoa(sectionCount(report))},
		},
	})
	md.PlainText("")

	if report.Headers != nil {
		writeHeadersSection(md, report.Headers)
	}
	if report.Cookies != nil {
		writeCookiesSection(md, report.Cookies)
	}
	if report.Phishing != nil {
		writePhishingSection(md, report.Phishing)
	}

	return md.Build()
}

func writeHeadersSection(md *markdown.Markdown, r *checker.HeaderScanResult) {
	md.H2("Security Headers")
	md.PlainText("")
	md.PlainText("Score: **" + strconv.Itoa(r.Score) + " / 100**")
	md.PlainText("")
	md.BulletList(r.IssuesFound...)
	md.PlainText("")
}

func writeCookiesSection(md *markdown.Markdown, r *checker.CookieScanResult) {
	md.H2("Cookies")
	md.PlainText("")
	rows := make([][]string, 0, len(r.Cookies))
	for i, c := range r.Cookies {
		rows = append(rows, []string{strconv.Itoa(i + 1), "`" + c.Cookie + "`"})
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Cookie"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writePhishingSection(md *markdown.Markdown, r *checker.PhishingResult) {
	md.H2("Phishing Heuristic")
	md.PlainText("")
	verdict := "Not suspicious"
	if r.Suspicious {
		verdict = "**Suspicious**"
	}
	md.PlainText("Verdict: " + verdict)
	md.PlainText("")
	md.BulletList(r.Reasons...)
	md.PlainText("")
}

func sectionCount(report *scan.Report) int {
	n := 0
	if report.Headers != nil {
		n++
	}
	if report.Cookies != nil {
		n++
	}
	if report.Phishing != nil {
		n++
	}
	return n
}
