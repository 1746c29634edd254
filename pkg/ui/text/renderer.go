// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/fmlabel/pkg/ui/display"
)

// Renderer writes tab separated lines that are easy to pipe into other tools
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.LabelList:
		for _, row := range v.Rows {
			if _, err := fmt.Fprintf(r.output, "%s\t%s\n", row.Path, row.Label); err != nil {
				return err
			}
		}
		return nil
	case *display.LabelUpdate:
		if v.Removed {
			_, err := fmt.Fprintf(r.output, "%s\t(removed)\n", v.Path)
			return err
		}
		_, err := fmt.Fprintf(r.output, "%s\t%s\n", v.Path, v.Label)
		return err
	case *display.NotePreview:
		if _, err := fmt.Fprintf(r.output, "%s\n%s\n\n", v.Path, v.Label); err != nil {
			return err
		}
		_, err := io.WriteString(r.output, strings.TrimRight(v.Body, "\n")+"\n")
		return err
	case *display.ConfigView:
		return r.renderConfig(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderConfig(v *display.ConfigView) error {
	if v.Path != "" {
		if _, err := fmt.Fprintf(r.output, "file\t%s\n", v.Path); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(r.output, "separator\t%s\n", v.Separator); err != nil {
		return err
	}
	for _, e := range v.Extractors {
		line := fmt.Sprintf("%d\t%s\t%s", e.Index, e.Key, e.Kind)
		if e.Format != "" {
			line += "\t" + e.Format
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
