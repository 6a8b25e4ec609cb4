package xpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/xpath/internal/version"
	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/logging"
	"github.com/arthur-debert/xpath/pkg/output"
	"github.com/arthur-debert/xpath/pkg/platform"
	"github.com/arthur-debert/xpath/pkg/typed"
	"github.com/arthur-debert/xpath/pkg/validation"
)

var stateStyles = map[validation.State]string{
	validation.StateUnverified: "Unverified",
	validation.StateVerified:   "Verified",
	validation.StateRejected:   "Rejected",
}

func newCheckCmd(a *app) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:     "check <path>...",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "fs",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.check")
			defer logging.LogOperationStart(logger, "check")()

			if as != "" && as != "file" && as != "dir" {
				return errors.New(errors.ErrInvalidInput, MsgErrUnknownAs).
					WithDetail("choices", []string{"file", "dir"})
			}
			engine, err := a.engine()
			if err != nil {
				return err
			}

			reports := make([]output.Report, 0, len(args))
			rejected := 0
			for _, arg := range args {
				p, err := typed.Classify(arg, a.profile)
				if err != nil {
					return err
				}
				var res validation.Result
				if as != "" {
					res = checkAs(engine, p, as)
				} else {
					res = engine.Check(p)
				}
				if res.State == validation.StateRejected {
					rejected++
				}
				reports = append(reports, resultReport(arg, res))
			}

			if err := a.out.RenderAll(reports); err != nil {
				return err
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d paths rejected", rejected, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&as, "as", "", MsgFlagAs)
	return cmd
}

// checkAs re-tags p with the requested form and validates it, reporting
// like Engine.Check does.
func checkAs(e *validation.Engine, p typed.Path, as string) validation.Result {
	var (
		checked typed.Path
		err     error
	)
	switch v := p.(type) {
	case typed.Abs:
		if as == "dir" {
			checked, err = validation.ValidatedAsDir(e, v)
		} else {
			checked, err = validation.ValidatedAsFile(e, v)
		}
	case typed.Rel:
		if as == "dir" {
			checked, err = validation.ValidatedAsRelDir(e, v)
		} else {
			checked, err = validation.ValidatedAsRelFile(e, v)
		}
	}

	res := validation.Result{Path: p, Facts: e.Oracle().Stat(p.Raw())}
	if err != nil {
		res.State = validation.StateRejected
		res.Err = err
		return res
	}
	res.Path = checked
	res.State = validation.StateVerified
	return res
}

func resultReport(input string, res validation.Result) output.Report {
	fields := []output.Field{
		{Key: "input", Value: input},
		{Key: "kind", Value: res.Path.Kind().String(), Style: "Kind"},
		{Key: "state", Value: res.State.String(), Style: stateStyles[res.State]},
		{Key: "exists", Value: strconv.FormatBool(res.Facts.Exists)},
		{Key: "is_file", Value: strconv.FormatBool(res.Facts.IsFile)},
		{Key: "is_dir", Value: strconv.FormatBool(res.Facts.IsDir)},
	}
	if res.Facts.Canonical != nil {
		fields = append(fields, output.Field{Key: "canonical", Value: res.Facts.Canonical.String(), Style: "Path"})
	}
	if res.Err != nil {
		fields = append(fields, output.Field{Key: "error", Value: string(errors.GetErrorCode(res.Err)), Style: "Code"})
	}
	return output.Report{Title: "check", Fields: fields}
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <path>",
		Short:   MsgResolveShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "fs",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine()
			if err != nil {
				return err
			}
			p, err := typed.Classify(args[0], a.profile)
			if err != nil {
				return err
			}

			var resolved typed.Path
			switch v := p.(type) {
			case typed.AbsFile:
				resolved, err = validation.ResolveSymlinks(engine, v)
			case typed.AbsDir:
				resolved, err = validation.ResolveSymlinks(engine, v)
			case typed.RelFile:
				resolved, err = validation.ResolveSymlinks(engine, v)
			case typed.RelDir:
				resolved, err = validation.ResolveSymlinks(engine, v)
			}
			if err != nil {
				return err
			}

			return a.out.Render(output.Report{
				Title: "resolve",
				Fields: []output.Field{
					{Key: "input", Value: args[0]},
					{Key: "kind", Value: resolved.Kind().String(), Style: "Kind"},
					{Key: "path", Value: resolved.String(), Style: "Path"},
				},
			})
		},
	}
}

func newFolderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "folder [kind]...",
		Short:     MsgFolderShort,
		Args:      cobra.OnlyValidArgs,
		ValidArgs: platform.FolderKindStrings(),
		GroupID:   "fs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				var fields []output.Field
				for _, kind := range platform.FolderKindValues() {
					if dir, ok := typed.SpecialFolder(kind, a.profile); ok {
						fields = append(fields, output.Field{Key: kind.String(), Value: dir.String(), Style: "Path"})
					} else {
						fields = append(fields, output.Field{Key: kind.String(), Value: "-", Style: "Muted"})
					}
				}
				return a.out.Render(output.Report{Title: "folders", Fields: fields})
			}

			fields := make([]output.Field, 0, len(args))
			for _, arg := range args {
				kind, err := platform.FolderKindString(strings.ToLower(arg))
				if err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, MsgErrUnknownFolder).
						WithDetail("choices", platform.FolderKindStrings())
				}
				dir, ok := typed.SpecialFolder(kind, a.profile)
				if !ok {
					return errors.New(errors.ErrNotFound, MsgErrFolderNotKnown).
						WithDetail("folder", kind.String()).
						WithDetail("platform", a.profile.Name())
				}
				fields = append(fields, output.Field{Key: kind.String(), Value: dir.String(), Style: "Path"})
			}
			return a.out.Render(output.Report{Title: "folders", Fields: fields})
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.out.Render(output.Report{
				Title: "xpath",
				Fields: []output.Field{
					{Key: "version", Value: version.Version},
					{Key: "commit", Value: version.Commit},
					{Key: "built", Value: version.Date},
				},
			})
		},
	}
}
