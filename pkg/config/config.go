package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/logging"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
	"github.com/arthur-debert/xpath/pkg/typed"
	"github.com/arthur-debert/xpath/pkg/validation"
)

const (
	// FileName is the config file location relative to the XDG config dirs.
	FileName = "xpath/config.toml"

	// EnvPrefix marks environment variables read as configuration.
	EnvPrefix = "XPATH_"
)

// Config is the decoded configuration.
type Config struct {
	Platform string       `koanf:"platform"`
	Strict   *bool        `koanf:"strict"`
	Base     typed.AbsDir `koanf:"base"`
	Log      Log          `koanf:"log"`

	profile platform.Profile
	source  string
}

// Log holds logging settings.
type Log struct {
	Verbosity int           `koanf:"verbosity"`
	File      typed.AbsFile `koanf:"file"`
}

// Options controls which layers Load reads.
type Options struct {
	// File is an explicit config file. It must exist.
	File string
	// NoUserFile skips the XDG config file lookup when File is empty.
	NoUserFile bool
	// Overrides are applied last, keyed by dotted path ("log.verbosity").
	Overrides map[string]interface{}
	// Paths selects the optional steps of path decoding.
	Paths PathDecoding
}

// PathDecoding turns on the optional steps of decoding a string into a
// typed path. The zero value only parses and checks locality.
type PathDecoding struct {
	// Env, when set, runs paths.Expand on the value before parsing, so
	// "~/projects" or "${DATA}/cache" can be written in a config file.
	Env paths.Env
	// Engine, when set, validates the parsed path against its oracle: a
	// path of the wrong form is rejected, and with a strict engine so is a
	// path that does not exist.
	Engine *validation.Engine
}

// Load builds the configuration from every layer.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	path, err := resolveFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		logger.Debug().Str("file", path).Msg("Loaded config file")
	}

	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	cfg, err := decode(k, opts.Paths)
	if err != nil {
		return nil, err
	}
	cfg.source = path
	return cfg, nil
}

// Default returns the configuration made of the embedded defaults alone.
func Default() *Config {
	cfg, err := Load(Options{NoUserFile: true})
	if err != nil {
		// the embedded file is part of the build
		panic(err)
	}
	return cfg
}

func resolveFile(opts Options) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", errors.Wrap(err, errors.ErrConfigLoad, "config file not readable").WithPath(opts.File)
		}
		return opts.File, nil
	}
	if opts.NoUserFile {
		return "", nil
	}
	if found, err := xdg.SearchConfigFile(FileName); err == nil {
		return found, nil
	}
	return "", nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return errors.New(errors.ErrConfigParse, "unsupported config format").
			WithPath(path).
			WithDetail("choices", []string{".toml", ".yaml", ".yml"})
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to parse config file").WithPath(path)
	}
	return nil
}

func decode(k *koanf.Koanf, pd PathDecoding) (*Config, error) {
	profile, err := platform.ByName(k.String("platform"))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid platform").WithDetail("key", "platform")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				PathHookFunc(profile, pd),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "failed to decode configuration")
	}
	cfg.profile = profile

	if cfg.Log.Verbosity < 0 {
		return nil, errors.Newf(errors.ErrConfigValid, "log verbosity must not be negative, got %d", cfg.Log.Verbosity).
			WithDetail("key", "log.verbosity")
	}
	return &cfg, nil
}

var (
	absFileType = reflect.TypeOf(typed.AbsFile{})
	absDirType  = reflect.TypeOf(typed.AbsDir{})
	relFileType = reflect.TypeOf(typed.RelFile{})
	relDirType  = reflect.TypeOf(typed.RelDir{})
)

// PathHookFunc decodes strings into typed paths with profile, applying the
// optional steps of pd. It must run before mapstructure's text hook, which
// would parse with the host profile.
func PathHookFunc(profile platform.Profile, pd PathDecoding) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		switch t {
		case absFileType, absDirType, relFileType, relDirType:
		default:
			return data, nil
		}

		s := reflect.ValueOf(data).String()
		if pd.Env != nil {
			expanded, err := paths.Expand(s, pd.Env, profile)
			if err != nil {
				return nil, err
			}
			s = expanded
		}

		switch t {
		case absFileType:
			return decodePath(s, profile, pd.Engine, typed.ParseAbsFile)
		case absDirType:
			return decodePath(s, profile, pd.Engine, typed.ParseAbsDir)
		case relFileType:
			return decodePath(s, profile, pd.Engine, typed.ParseRelFile)
		default:
			return decodePath(s, profile, pd.Engine, typed.ParseRelDir)
		}
	}
}

func decodePath[P typed.Path](s string, profile platform.Profile, e *validation.Engine, parse func(string, platform.Profile) (P, error)) (interface{}, error) {
	p, err := parse(s, profile)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return p, nil
	}
	v, err := validation.Validate(e, p)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Profile returns the profile selected by the platform key.
func (c *Config) Profile() platform.Profile {
	if c.profile == nil {
		return platform.Host()
	}
	return c.profile
}

// Source returns the config file that was read, if any.
func (c *Config) Source() string { return c.source }

// StrictMode reports whether validation runs strict. The strict key wins
// over the build default when set.
func (c *Config) StrictMode() bool {
	if c.Strict != nil {
		return *c.Strict
	}
	return validation.DefaultStrict
}

// ValidationOptions returns the engine options implied by the configuration.
func (c *Config) ValidationOptions() []validation.Option {
	return []validation.Option{validation.WithStrict(c.StrictMode())}
}

// BaseDir returns the directory relative input is resolved against: the
// base key, else the working directory.
func (c *Config) BaseDir() (typed.AbsDir, error) {
	if !c.Base.Raw().IsZero() {
		return c.Base, nil
	}
	wd, ok := paths.OSEnv{}.WorkingDir()
	if !ok {
		return typed.AbsDir{}, errors.New(errors.ErrConfigValid, "working directory unknown and no base configured").
			WithDetail("key", "base")
	}
	dir, err := typed.ParseAbsDir(wd, c.Profile())
	if err != nil {
		return typed.AbsDir{}, errors.Wrap(err, errors.ErrConfigValid, "working directory does not fit the configured platform, set base").
			WithPath(wd).
			WithDetail("key", "base")
	}
	return dir, nil
}

// LogFile returns the configured log file, or "" for the default location.
func (c *Config) LogFile() string {
	if c.Log.File.Raw().IsZero() {
		return ""
	}
	return c.Log.File.String()
}
