package xpath

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/xpath/internal/version"
	"github.com/arthur-debert/xpath/pkg/config"
	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/logging"
	"github.com/arthur-debert/xpath/pkg/oracle"
	"github.com/arthur-debert/xpath/pkg/output"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
	"github.com/arthur-debert/xpath/pkg/typed"
	"github.com/arthur-debert/xpath/pkg/validation"
)

// Option customizes the command tree, mostly for tests.
type Option func(*app)

// WithOracle replaces the OS filesystem as the source of facts.
func WithOracle(o oracle.Oracle) Option {
	return func(a *app) { a.oracle = o }
}

// WithEnv replaces the process environment used by expand.
func WithEnv(env paths.Env) Option {
	return func(a *app) { a.env = env }
}

// app is the state shared by every command of one invocation. It is filled
// in by the root command's pre-run hook.
type app struct {
	cfg     *config.Config
	profile platform.Profile
	out     *output.Renderer
	oracle  oracle.Oracle
	env     paths.Env
}

func (a *app) engine() (*validation.Engine, error) {
	o := a.oracle
	if o == nil {
		if a.profile.Name() != platform.Host().Name() {
			return nil, errors.New(errors.ErrInvalidInput, MsgErrHostOnly).
				WithDetail("platform", a.profile.Name()).
				WithDetail("host", platform.Host().Name())
		}
		o = oracle.NewOS(a.profile)
	}
	if o.Profile().Name() != a.profile.Name() {
		return nil, errors.New(errors.ErrInvalidInput, MsgErrOracleProfile).
			WithDetail("platform", a.profile.Name()).
			WithDetail("oracle", o.Profile().Name())
	}
	return validation.New(o, a.cfg.ValidationOptions()...), nil
}

func (a *app) base() (typed.AbsDir, error) {
	return a.cfg.BaseDir()
}

// NewRootCmd creates and returns the root command
func NewRootCmd(opts ...Option) *cobra.Command {
	initTemplateFormatting()

	a := &app{env: paths.OSEnv{}}
	for _, opt := range opts {
		opt(a)
	}

	var (
		verbosity  int
		configFile string
		platformID string
		strict     bool
		base       string
		format     string
	)

	rootCmd := &cobra.Command{
		Use:     "xpath",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			overrides := map[string]interface{}{}
			if flags.Changed("platform") {
				overrides["platform"] = platformID
			}
			if flags.Changed("strict") {
				overrides["strict"] = strict
			}
			if flags.Changed("base") {
				overrides["base"] = base
			}
			if verbosity > 0 {
				overrides["log.verbosity"] = verbosity
			}

			f, err := output.ParseFormat(format)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format").
					WithDetail("choices", []string{"auto", "term", "text", "json"})
			}

			// "~" and variables are allowed in path settings and --base
			cfg, err := config.Load(config.Options{
				File:      configFile,
				Overrides: overrides,
				Paths:     config.PathDecoding{Env: a.env},
			})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			logging.Setup(logging.Options{
				Verbosity: cfg.Log.Verbosity,
				File:      cfg.LogFile(),
				Console:   cmd.ErrOrStderr(),
				NoColor:   f == output.FormatJSON || f == output.FormatText,
			})
			logging.LogCommand(cmd.Name(), args)
			log.Debug().
				Str("platform", cfg.Profile().Name()).
				Bool("strict", cfg.StrictMode()).
				Str("config", cfg.Source()).
				Msg("Configuration loaded")

			a.cfg = cfg
			a.profile = cfg.Profile()
			a.out = output.NewRenderer(cmd.OutOrStdout(), f)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&configFile, "config", "c", "", MsgFlagConfig)
	pf.StringVarP(&platformID, "platform", "p", "auto", MsgFlagPlatform)
	pf.BoolVar(&strict, "strict", false, MsgFlagStrict)
	pf.StringVarP(&base, "base", "b", "", MsgFlagBase)
	pf.StringVarP(&format, "format", "f", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "syntax", Title: "PATH COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "fs", Title: "FILESYSTEM COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newClassifyCmd(a))
	rootCmd.AddCommand(newNormalizeCmd(a))
	rootCmd.AddCommand(newAbsCmd(a))
	rootCmd.AddCommand(newRelCmd(a))
	rootCmd.AddCommand(newPortableCmd(a))
	rootCmd.AddCommand(newMatchCmd(a))
	rootCmd.AddCommand(newExpandCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newResolveCmd(a))
	rootCmd.AddCommand(newFolderCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// Execute runs the command line and returns the process exit code. Errors
// are rendered on stderr in the selected format.
func Execute(opts ...Option) int {
	rootCmd := NewRootCmd(opts...)
	if err := rootCmd.Execute(); err != nil {
		name, _ := rootCmd.PersistentFlags().GetString("format")
		f, perr := output.ParseFormat(name)
		if perr != nil {
			f = output.FormatAuto
		}
		_ = output.NewRenderer(os.Stderr, f).RenderError(err)
		return 1
	}
	return 0
}
