package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Outcome is the rendered record of one evaluation. Operands are never
// included.
type Outcome struct {
	ID             string `json:"id" yaml:"id" toml:"id"`
	Representation string `json:"representation" yaml:"representation" toml:"representation"`
	Operator       string `json:"operator" yaml:"operator" toml:"operator"`
	Status         string `json:"status" yaml:"status" toml:"status"`
	Result         string `json:"result,omitempty" yaml:"result,omitempty" toml:"result,omitempty"`
	Error          string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

// Renderer writes an Outcome in a particular format.
type Renderer func(w io.Writer, o Outcome) error

var renderers = map[string]Renderer{
	"text": renderText,
	"json": renderMarshaled(sonic.Marshal),
	"yaml": renderMarshaled(yaml.Marshal),
	"toml": renderMarshaled(toml.Marshal),
}

// RendererFor returns the renderer for a format name (case-insensitive).
func RendererFor(format string) (Renderer, error) {
	r, ok := renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
	return r, nil
}

func renderText(w io.Writer, o Outcome) error {
	var err error
	if o.Error != "" {
		_, err = fmt.Fprintf(w, "Error: %s\n", o.Error)
	} else {
		_, err = fmt.Fprintf(w, "Result: %s\n", o.Result)
	}
	return err
}

func renderMarshaled(marshal func(any) ([]byte, error)) Renderer {
	return func(w io.Writer, o Outcome) error {
		data, err := marshal(o)
		if err != nil {
			return fmt.Errorf("failed to encode outcome: %w", err)
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = w.Write(data)
		return err
	}
}
