// Package output renders command results for the xpath CLI.
//
// A command builds a Report, a title plus ordered key/value fields, and
// hands it to a Renderer. The renderer writes it in one of three formats:
// styled for terminals (lipgloss, see the styles package), plain text when
// output is piped or NO_COLOR is set, or JSON for scripts.
//
//	r := output.NewRenderer(os.Stdout, output.FormatAuto)
//	err := r.Render(output.Report{
//	    Title:  "classify",
//	    Fields: []output.Field{{Key: "kind", Value: "abs_dir", Style: "Kind"}},
//	})
//
// Errors from pkg/errors render with their code, offending path and details.
package output
