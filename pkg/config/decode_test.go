package config

import (
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/oracle"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
	"github.com/arthur-debert/xpath/pkg/typed"
	"github.com/arthur-debert/xpath/pkg/validation"
)

var testEnv = paths.StaticEnv{
	Vars: map[string]string{"LOGS": "/var/log"},
	Home: "/home/me",
	Cwd:  "/work",
}

func TestLoad_ExpandsPaths(t *testing.T) {
	path := writeFile(t, "config.toml", `
platform = "posix"
base = "~/projects"

[log]
file = "${LOGS}/xpath.log"
`)
	cfg, err := Load(Options{File: path, Paths: PathDecoding{Env: testEnv}})
	require.NoError(t, err)

	assert.Equal(t, "/home/me/projects/", cfg.Base.String())
	assert.Equal(t, "/var/log/xpath.log", cfg.LogFile())
}

func TestLoad_ExpandsOverrides(t *testing.T) {
	cfg, err := Load(Options{
		NoUserFile: true,
		Overrides:  map[string]interface{}{"platform": "posix", "base": "."},
		Paths:      PathDecoding{Env: testEnv},
	})
	require.NoError(t, err)
	assert.Equal(t, "/work/", cfg.Base.String())
}

func TestLoad_NoExpansionByDefault(t *testing.T) {
	path := writeFile(t, "config.toml", `
platform = "posix"
base = "~/projects"
`)
	_, err := Load(Options{File: path})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestLoad_ExpansionFailure(t *testing.T) {
	path := writeFile(t, "config.toml", `
platform = "posix"
base = "${NOPE}/projects"
`)
	_, err := Load(Options{File: path, Paths: PathDecoding{Env: testEnv}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Contains(t, err.Error(), string(errors.ErrUndefinedVariable))
}

func memoryEngine(t *testing.T, strict bool) *validation.Engine {
	t.Helper()
	profile := platform.NewPosix(platform.WithFolders(platform.NoFolders))
	m := oracle.NewMemory(profile)
	require.NoError(t, m.AddDir(paths.MustParse("/srv/data", profile)))
	require.NoError(t, m.AddFile(paths.MustParse("/srv/notes.txt", profile)))
	return validation.New(m, validation.WithStrict(strict))
}

func TestLoad_ValidatesPaths(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		strict  bool
		wantErr errors.ErrorCode
	}{
		{"existing directory", "/srv/data", false, ""},
		{"existing directory strict", "/srv/data", true, ""},
		{"file given as directory", "/srv/notes.txt", false, errors.ErrNotADirectory},
		{"missing tolerated", "/srv/missing", false, ""},
		{"missing rejected when strict", "/srv/missing", true, errors.ErrDoesNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(Options{
				NoUserFile: true,
				Overrides:  map[string]interface{}{"platform": "posix", "base": tt.base},
				Paths:      PathDecoding{Engine: memoryEngine(t, tt.strict)},
			})
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.base+"/", cfg.Base.String())
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			assert.Contains(t, err.Error(), string(tt.wantErr))
		})
	}
}

func TestPathHookFunc_RelativeKinds(t *testing.T) {
	var out struct {
		Docs   typed.RelDir  `mapstructure:"docs"`
		Readme typed.RelFile `mapstructure:"readme"`
	}
	windows := platform.NewWindows(platform.WithFolders(platform.NoFolders))
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &out,
		DecodeHook: PathHookFunc(windows, PathDecoding{}),
	})
	require.NoError(t, err)

	require.NoError(t, dec.Decode(map[string]interface{}{
		"docs":   "docs/api",
		"readme": `docs\README.md`,
	}))
	assert.Equal(t, `docs\api\`, out.Docs.String())
	assert.Equal(t, `docs\README.md`, out.Readme.String())
	assert.Equal(t, "windows", out.Readme.Profile().Name())
}
