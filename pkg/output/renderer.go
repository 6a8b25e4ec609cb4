package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/logging"
	"github.com/arthur-debert/xpath/pkg/output/styles"
)

// Field is one line of a report. Style names an entry of the style registry
// and is ignored outside terminal output.
type Field struct {
	Key   string
	Value string
	Style string
}

// Report is the result of one command.
type Report struct {
	Title  string
	Fields []Field
}

// Get returns the value of the first field named key.
func (r Report) Get(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Renderer writes reports in a fixed format.
type Renderer struct {
	writer io.Writer
	format Format
	styles *styles.Registry
}

// NewRenderer creates a Renderer for w. FormatAuto is resolved here: it
// becomes FormatTerminal only when w is a color-capable terminal.
func NewRenderer(w io.Writer, format Format) *Renderer {
	log := logging.GetLogger("output.Renderer")

	if format == FormatAuto {
		format = FormatText
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		}
	}

	lg := lipgloss.NewRenderer(w)
	if format == FormatTerminal && lg.ColorProfile() == termenv.Ascii {
		// explicitly requested, so color even when not attached to a tty
		lg.SetColorProfile(termenv.ANSI256)
	}

	log.Debug().
		Str("format", format.String()).
		Str("colorProfile", fmt.Sprintf("%v", lg.ColorProfile())).
		Msg("Renderer created")

	return &Renderer{
		writer: w,
		format: format,
		styles: styles.Default(lg),
	}
}

// Format returns the resolved output format.
func (r *Renderer) Format() Format { return r.format }

// Render writes rep.
func (r *Renderer) Render(rep Report) error {
	switch r.format {
	case FormatJSON:
		fields := make(map[string]string, len(rep.Fields))
		for _, f := range rep.Fields {
			fields[f.Key] = f.Value
		}
		return r.writeJSON(map[string]interface{}{
			"command": rep.Title,
			"fields":  fields,
		})
	case FormatTerminal:
		return r.writeLines(r.styles.Render("Title", rep.Title), rep.Fields, true)
	default:
		return r.writeLines(rep.Title, rep.Fields, false)
	}
}

// RenderAll writes several reports, separated by blank lines in the text
// formats and as one JSON array otherwise.
func (r *Renderer) RenderAll(reps []Report) error {
	if r.format == FormatJSON {
		out := make([]map[string]interface{}, 0, len(reps))
		for _, rep := range reps {
			fields := make(map[string]string, len(rep.Fields))
			for _, f := range rep.Fields {
				fields[f.Key] = f.Value
			}
			out = append(out, map[string]interface{}{"command": rep.Title, "fields": fields})
		}
		return r.writeJSON(out)
	}
	for i, rep := range reps {
		if i > 0 {
			if _, err := fmt.Fprintln(r.writer); err != nil {
				return err
			}
		}
		if err := r.Render(rep); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error message with appropriate styling. Coded
// errors show their code, offending path and details.
func (r *Renderer) RenderError(err error) error {
	code := errors.GetErrorCode(err)
	path := errors.GetErrorPath(err)
	details := errors.GetErrorDetails(err)

	if r.format == FormatJSON {
		out := map[string]interface{}{"error": err.Error(), "code": string(code)}
		if path != "" {
			out["path"] = path
		}
		if len(details) > 0 {
			out["details"] = details
		}
		return r.writeJSON(out)
	}

	styled := r.format == FormatTerminal
	head := "Error:"
	codeText := string(code)
	if styled {
		head = r.styles.Render("Error", head)
		codeText = r.styles.Render("Code", codeText)
	}

	var fields []Field
	if path != "" {
		fields = append(fields, Field{Key: "path", Value: path, Style: "Path"})
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, Field{Key: k, Value: fmt.Sprint(details[k]), Style: "Muted"})
	}

	title := fmt.Sprintf("%s %s", head, err.Error())
	if code != errors.ErrUnknown {
		title = fmt.Sprintf("%s [%s] %s", head, codeText, messageOf(err))
	}
	return r.writeLines(title, fields, styled)
}

func messageOf(err error) string {
	if pe, ok := err.(*errors.PathError); ok {
		if pe.Wrapped != nil {
			return fmt.Sprintf("%s: %v", pe.Message, pe.Wrapped)
		}
		return pe.Message
	}
	return err.Error()
}

func (r *Renderer) writeLines(title string, fields []Field, styled bool) error {
	width := 0
	for _, f := range fields {
		if len(f.Key) > width {
			width = len(f.Key)
		}
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for _, f := range fields {
		key := fmt.Sprintf("%-*s", width+1, f.Key+":")
		value := f.Value
		if styled {
			key = r.styles.Render("Key", key)
			if f.Style != "" {
				value = r.styles.Render(f.Style, value)
			}
		}
		fmt.Fprintf(&b, "  %s %s\n", key, value)
	}
	_, err := io.WriteString(r.writer, b.String())
	return err
}

func (r *Renderer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
