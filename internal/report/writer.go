package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/izza-m1/Secgap-Analyzer/internal/scan"
	secerrors "github.com/izza-m1/Secgap-Analyzer/internal/shared/errors"
)

// Format names an output format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// Writer renders a report to its output.
type Writer interface {
	Write(report *scan.Report) error
}

// ParseFormat resolves a format name. "md" and "yml" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt", "":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", secerrors.ErrUnknownFormat, name)
}

// NewWriter returns the Writer for format, writing to out.
func NewWriter(format Format, out io.Writer) (Writer, error) {
	switch format {
	case FormatJSON:
		return NewJSONWriter(out), nil
	case FormatYAML:
		return NewYAMLWriter(out), nil
	case FormatMarkdown:
		return NewMarkdownWriter(out), nil
	case FormatText:
		return NewTextWriter(out), nil
	}
	return nil, fmt.Errorf("%w: %q", secerrors.ErrUnknownFormat, string(format))
}

// payload picks what the structured formats encode: a single check prints
// its bare result, exactly as the API returns it; several print the report.
func payload(report *scan.Report) any {
	switch {
	case report.Headers != nil && report.Cookies == nil && report.Phishing == nil:
		return report.Headers
	case report.Headers == nil && report.Cookies != nil && report.Phishing == nil:
		return report.Cookies
	case report.Headers == nil && report.Cookies == nil && report.Phishing != nil:
		return report.Phishing
	}
	return report
}
