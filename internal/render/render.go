// Package render turns service results and balancer analyses into text,
// JSON, YAML and markdown.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/stoich/internal/config"
	"github.com/katalvlaran/stoich/internal/service"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for formats other than text, json and yaml.
var ErrUnknownFormat = errors.New("render: unknown format")

// Line renders one result as a single text line.
func Line(res service.Result) string {
	if res.OK() {
		return res.Balanced
	}

	return fmt.Sprintf("error (%s): %s", res.Kind, res.Error)
}

// Results writes results in format: one line each for text, a JSON array,
// or a YAML sequence.
func Results(w io.Writer, format string, results []service.Result) error {
	if format != config.FormatText {
		return Value(w, format, results)
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, Line(r)); err != nil {
			return err
		}
	}

	return nil
}

// Value encodes v as indented JSON or YAML.
func Value(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false) // keep "->" literal

		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
