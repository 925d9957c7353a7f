package report

import (
	"io"

	"github.com/izza-m1/Secgap-Analyzer/internal/scan"
	"gopkg.in/yaml.v3"
)

// YAMLWriter outputs YAML using the same field names as the JSON output.
type YAMLWriter struct {
	out io.Writer
}

func NewYAMLWriter(out io.Writer) *YAMLWriter {
	return &YAMLWriter{out: out}
}

func (w *YAMLWriter) Write(report *scan.Report) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(payload(report)); err != nil {
		return err
	}
	return enc.Close()
}
