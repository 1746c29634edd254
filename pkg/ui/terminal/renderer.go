// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/fmlabel/pkg/errors"
	"github.com/arthur-debert/fmlabel/pkg/ui/display"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// Renderer draws tables with pterm, styles with lipgloss, and note bodies
// with glamour
type Renderer struct {
	output io.Writer
	styles Styles
	// Width wraps note bodies; zero uses the terminal width
	Width int
	// GlamourStyle names a glamour style; empty means auto-detect
	GlamourStyle string
}

// New creates a new terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{
		output: output,
		styles: defaultStyles(),
	}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.LabelList:
		return r.renderLabels(v)
	case *display.LabelUpdate:
		return r.renderUpdate(v)
	case *display.NotePreview:
		return r.renderNote(v)
	case *display.ConfigView:
		return r.renderConfig(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderLabels(v *display.LabelList) error {
	header := fmt.Sprintf("%s  %d notes, %d labeled", v.Root, len(v.Rows), v.Labeled())
	if _, err := fmt.Fprintln(r.output, r.styles.Get("Header").Render(header)); err != nil {
		return err
	}
	if len(v.Rows) == 0 {
		_, err := fmt.Fprintln(r.output, r.styles.Get("Muted").Render("no notes found"))
		return err
	}

	data := pterm.TableData{{"Path", "Label"}}
	for _, row := range v.Rows {
		data = append(data, []string{row.Path, r.styles.Get("Label").Render(row.Label)})
	}
	return r.table(data)
}

func (r *Renderer) renderUpdate(v *display.LabelUpdate) error {
	stamp := r.styles.Get("Muted").Render(v.Time.Format("15:04:05"))
	path := r.styles.Get("Path").Render(v.Path)
	if v.Removed {
		_, err := fmt.Fprintf(r.output, "%s %s %s\n", stamp, path, r.styles.Get("Removed").Render("removed"))
		return err
	}
	label := v.Label
	if label == "" {
		label = r.styles.Get("Muted").Render("(no label)")
	} else {
		label = r.styles.Get("Label").Render(label)
	}
	_, err := fmt.Fprintf(r.output, "%s %s %s\n", stamp, path, label)
	return err
}

func (r *Renderer) renderNote(v *display.NotePreview) error {
	label := v.Label
	if label == "" {
		label = r.styles.Get("Muted").Render("(no label)")
	} else {
		label = r.styles.Get("Label").Render(label)
	}
	header := r.styles.Get("Header").Render(v.Path + "\n" + label)
	if _, err := fmt.Fprintln(r.output, header); err != nil {
		return err
	}
	_, err := io.WriteString(r.output, r.markdown(v.Body))
	return err
}

// markdown renders body with glamour, falling back to the raw text
func (r *Renderer) markdown(body string) string {
	var options []glamour.TermRendererOption
	if r.GlamourStyle != "" {
		options = append(options, glamour.WithStandardStyle(r.GlamourStyle))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	width := r.Width
	if width <= 0 {
		width = pterm.GetTerminalWidth()
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return body
	}
	rendered, err := renderer.Render(body)
	if err != nil {
		return body
	}
	return rendered
}

func (r *Renderer) renderConfig(v *display.ConfigView) error {
	title := "Settings"
	if v.Path != "" {
		title += "  " + v.Path
	}
	if _, err := fmt.Fprintln(r.output, r.styles.Get("Header").Render(title)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.output, "separator %q\n\n", v.Separator); err != nil {
		return err
	}

	data := pterm.TableData{{"#", "Key", "Type", "Format"}}
	for _, e := range v.Extractors {
		key := e.Key
		if key == "" {
			key = r.styles.Get("Muted").Render("(unset)")
		}
		data = append(data, []string{fmt.Sprint(e.Index), key, e.Kind, e.Format})
	}
	return r.table(data)
}

func (r *Renderer) table(data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, strings.TrimRight(out, "\n"))
	return err
}

// RenderError renders an error, showing its code when it has one
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		msg = fmt.Sprintf("%s (%s)", msg, code)
	}
	_, writeErr := fmt.Fprintf(r.output, "%s %s\n", pterm.Error.Prefix.Text, r.styles.Get("Error").Render(msg))
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", pterm.Info.Prefix.Text, msg)
	return err
}
