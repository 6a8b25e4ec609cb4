package xpath

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/xpath/pkg/config"
	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/output"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/typed"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <path>",
		Short:   MsgParseShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := paths.Parse(args[0], a.profile)
			if err != nil {
				return err
			}
			return a.out.Render(output.Report{
				Title: "parse",
				Fields: []output.Field{
					{Key: "input", Value: args[0]},
					{Key: "platform", Value: a.profile.Name()},
					{Key: "root", Value: raw.Root().String()},
					{Key: "segments", Value: quoteAll(raw.Segments())},
					{Key: "absolute", Value: strconv.FormatBool(raw.IsAbs())},
					{Key: "trailing_separator", Value: strconv.FormatBool(paths.HasTrailingSeparator(args[0], a.profile))},
					{Key: "rendered", Value: paths.Render(raw, a.profile), Style: "Path"},
				},
			})
		},
	}
}

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "classify <path>...",
		Short:   MsgClassifyShort,
		Long:    MsgClassifyLong,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]output.Report, 0, len(args))
			for _, arg := range args {
				p, err := typed.Classify(arg, a.profile)
				if err != nil {
					return err
				}
				reports = append(reports, output.Report{
					Title: "classify",
					Fields: []output.Field{
						{Key: "input", Value: arg},
						{Key: "kind", Value: p.Kind().String(), Style: "Kind"},
						{Key: "path", Value: p.String(), Style: "Path"},
						{Key: "name", Value: paths.Base(p.Raw())},
						{Key: "ext", Value: paths.Ext(p.Raw())},
					},
				})
			}
			return a.out.RenderAll(reports)
		},
	}
}

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "normalize <path>",
		Short:   MsgNormalizeShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := typed.Classify(args[0], a.profile)
			if err != nil {
				return err
			}
			normal, err := normalizeTyped(p)
			if err != nil {
				return err
			}
			return a.out.Render(output.Report{
				Title: "normalize",
				Fields: []output.Field{
					{Key: "input", Value: args[0]},
					{Key: "kind", Value: normal.Kind().String(), Style: "Kind"},
					{Key: "path", Value: normal.String(), Style: "Path"},
				},
			})
		},
	}
}

func newAbsCmd(a *app) *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:     "abs <path>",
		Short:   MsgAbsShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := typed.Classify(args[0], a.profile)
			if err != nil {
				return err
			}
			base, err := a.base()
			if err != nil {
				return err
			}

			var abs typed.Path
			switch v := p.(type) {
			case typed.RelFile:
				abs, err = v.MakeAbsolute(base)
			case typed.RelDir:
				abs, err = v.MakeAbsolute(base)
			default:
				abs = p
			}
			if err != nil {
				return err
			}
			if normalize {
				if abs, err = normalizeTyped(abs); err != nil {
					return err
				}
			}

			return a.out.Render(output.Report{
				Title: "abs",
				Fields: []output.Field{
					{Key: "input", Value: args[0]},
					{Key: "base", Value: base.String(), Style: "Muted"},
					{Key: "kind", Value: abs.Kind().String(), Style: "Kind"},
					{Key: "path", Value: abs.String(), Style: "Path"},
				},
			})
		},
	}
	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, MsgFlagNorm)
	return cmd
}

func newRelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rel <path> [base]",
		Short:   MsgRelShort,
		Args:    cobra.RangeArgs(1, 2),
		GroupID: "syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := typed.Classify(args[0], a.profile)
			if err != nil {
				return err
			}

			var base typed.AbsDir
			if len(args) == 2 {
				base, err = typed.ParseAbsDir(args[1], a.profile)
			} else {
				base, err = a.base()
			}
			if err != nil {
				return err
			}

			var rel typed.Path
			switch v := p.(type) {
			case typed.AbsFile:
				rel, err = v.MakeRelative(base)
			case typed.AbsDir:
				rel, err = v.MakeRelative(base)
			default:
				return errors.New(errors.ErrInvalidInput, MsgErrNotAbsolute).
					WithPath(args[0]).
					WithDetail("kind", p.Kind().String())
			}
			if err != nil {
				return err
			}

			return a.out.Render(output.Report{
				Title: "rel",
				Fields: []output.Field{
					{Key: "input", Value: args[0]},
					{Key: "base", Value: base.String(), Style: "Muted"},
					{Key: "kind", Value: rel.Kind().String(), Style: "Kind"},
					{Key: "path", Value: rel.String(), Style: "Path"},
				},
			})
		},
	}
}

func newPortableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "portable <path>...",
		Short:   MsgPortableShort,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			var fields []output.Field
			failed := 0
			for _, arg := range args {
				raw, err := paths.Parse(arg, a.profile)
				if err == nil {
					err = paths.CheckPortable(raw)
				}
				if err != nil {
					failed++
					reason := err.Error()
					if seg, ok := errors.GetErrorDetails(err)["segment"]; ok {
						reason = fmt.Sprintf("segment %q is not portable", seg)
					}
					fields = append(fields, output.Field{Key: arg, Value: reason, Style: "Rejected"})
					continue
				}
				fields = append(fields, output.Field{Key: arg, Value: "ok", Style: "Verified"})
			}

			if err := a.out.Render(output.Report{Title: "portable", Fields: fields}); err != nil {
				return err
			}
			if failed > 0 {
				return errors.Newf(errors.ErrMalformedPath, "%d of %d paths are not portable", failed, len(args))
			}
			return nil
		},
	}
}

func newMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "match <path> <pattern>",
		Short:   MsgMatchShort,
		Args:    cobra.ExactArgs(2),
		GroupID: "syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := paths.Parse(args[0], a.profile)
			if err != nil {
				return err
			}
			matched, err := paths.Match(raw, args[1], a.profile)
			if err != nil {
				return err
			}

			style := "Rejected"
			if matched {
				style = "Verified"
			}
			return a.out.Render(output.Report{
				Title: "match",
				Fields: []output.Field{
					{Key: "path", Value: raw.String(), Style: "Path"},
					{Key: "pattern", Value: args[1]},
					{Key: "matched", Value: strconv.FormatBool(matched), Style: style},
				},
			})
		},
	}
}

func newExpandCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "expand <path>",
		Short:   MsgExpandShort,
		Long:    MsgExpandLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			expanded, err := paths.Expand(args[0], a.env, a.profile)
			if err != nil {
				return err
			}
			raw, err := paths.Parse(expanded, a.profile)
			if err != nil {
				return err
			}

			fields := []output.Field{
				{Key: "input", Value: args[0]},
				{Key: "expanded", Value: paths.Render(raw, a.profile), Style: "Path"},
			}
			if home, ok := a.env.HomeDir(); ok {
				if homeRaw, err := paths.Parse(home, a.profile); err == nil {
					fields = append(fields, output.Field{Key: "contracted", Value: paths.Contract(raw, homeRaw, a.profile)})
				}
			}
			return a.out.Render(output.Report{Title: "expand", Fields: fields})
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	var dest string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteTemplate(dest)
			if err != nil {
				return err
			}
			return a.out.Render(output.Report{
				Title:  "config init",
				Fields: []output.Field{{Key: "written", Value: path, Style: "Path"}},
			})
		},
	}
	initCmd.Flags().StringVarP(&dest, "output", "o", "", MsgFlagOutput)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Encode(a.cfg)
			if err != nil {
				return err
			}
			if src := a.cfg.Source(); src != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", src)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}

// normalizeTyped normalizes p keeping its kind.
func normalizeTyped(p typed.Path) (typed.Path, error) {
	switch v := p.(type) {
	case typed.AbsFile:
		return v.Normalize()
	case typed.AbsDir:
		return v.Normalize()
	case typed.RelFile:
		return v.Normalize()
	case typed.RelDir:
		return v.Normalize()
	}
	return p, nil
}

func quoteAll(segments []string) string {
	quoted := make([]string, len(segments))
	for i, s := range segments {
		quoted[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(quoted, " ") + "]"
}
