package report

import (
	"encoding/json"
	"io"

	"github.com/izza-m1/Secgap-Analyzer/internal/scan"
)

// JSONWriter outputs pretty-printed JSON.
type JSONWriter struct {
	out io.Writer
}

func NewJSONWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

func (w *JSONWriter) Write(report *scan.Report) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(payload(report))
}
