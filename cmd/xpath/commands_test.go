package xpath

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/testutil"
)

type jsonReport struct {
	Command string            `json:"command"`
	Fields  map[string]string `json:"fields"`
}

// isolate keeps user config and logs out of the test.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func execute(t *testing.T, opts []Option, args ...string) (string, error) {
	t.Helper()
	isolate(t)

	cmd := NewRootCmd(opts...)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--format", "json", "--platform", "posix"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func runOne(t *testing.T, opts []Option, args ...string) jsonReport {
	t.Helper()
	out, err := execute(t, opts, args...)
	require.NoError(t, err)

	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep), out)
	return rep
}

func runMany(t *testing.T, opts []Option, args ...string) ([]jsonReport, error) {
	t.Helper()
	out, err := execute(t, opts, args...)

	var reps []jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &reps), out)
	return reps, err
}

func TestParseCmd(t *testing.T) {
	rep := runOne(t, nil, "parse", "/usr//local/bin/")

	assert.Equal(t, "parse", rep.Command)
	assert.Equal(t, "posix", rep.Fields["root"])
	assert.Equal(t, `["usr" "local" "bin"]`, rep.Fields["segments"])
	assert.Equal(t, "true", rep.Fields["absolute"])
	assert.Equal(t, "true", rep.Fields["trailing_separator"])
	assert.Equal(t, "/usr/local/bin", rep.Fields["rendered"])
}

func TestParseCmd_Windows(t *testing.T) {
	rep := runOne(t, nil, "--platform", "windows", "parse", `c:/Users\me`)

	assert.Equal(t, "windows", rep.Fields["platform"])
	assert.Equal(t, "drive(C)", rep.Fields["root"])
	assert.Equal(t, `C:\Users\me`, rep.Fields["rendered"])
}

func TestParseCmd_Malformed(t *testing.T) {
	_, err := execute(t, nil, "--platform", "windows", "parse", `a\CON`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedPath))
}

func TestClassifyCmd(t *testing.T) {
	reps, err := runMany(t, nil, "classify", "docs/", "/etc/hosts", "..")
	require.NoError(t, err)
	require.Len(t, reps, 3)

	assert.Equal(t, "rel_dir", reps[0].Fields["kind"])
	assert.Equal(t, "docs/", reps[0].Fields["path"])
	assert.Equal(t, "abs_file", reps[1].Fields["kind"])
	assert.Equal(t, "hosts", reps[1].Fields["name"])
	assert.Equal(t, "rel_dir", reps[2].Fields["kind"])
}

func TestNormalizeCmd(t *testing.T) {
	rep := runOne(t, nil, "normalize", "a/./b/../c")
	assert.Equal(t, "a/c", rep.Fields["path"])
	assert.Equal(t, "rel_file", rep.Fields["kind"])

	_, err := execute(t, nil, "normalize", "../x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrCannotNormalize))
}

func TestAbsCmd(t *testing.T) {
	rep := runOne(t, nil, "--base", "/home/me", "abs", "docs/readme.md")
	assert.Equal(t, "/home/me/docs/readme.md", rep.Fields["path"])
	assert.Equal(t, "abs_file", rep.Fields["kind"])
	assert.Equal(t, "/home/me/", rep.Fields["base"])

	rep = runOne(t, nil, "--base", "/home/me", "abs", "-n", "../shared/")
	assert.Equal(t, "/home/shared/", rep.Fields["path"])
	assert.Equal(t, "abs_dir", rep.Fields["kind"])

	rep = runOne(t, nil, "--base", "/home/me", "abs", "/etc/hosts")
	assert.Equal(t, "/etc/hosts", rep.Fields["path"])
}

func TestAbsCmd_BaseIsExpanded(t *testing.T) {
	opts := []Option{WithEnv(paths.StaticEnv{Home: "/home/me"})}

	rep := runOne(t, opts, "--base", "~/projects", "abs", "notes.txt")
	assert.Equal(t, "/home/me/projects/notes.txt", rep.Fields["path"])
	assert.Equal(t, "/home/me/projects/", rep.Fields["base"])
}

func TestRelCmd(t *testing.T) {
	rep := runOne(t, nil, "rel", "/home/me/docs/readme.md", "/home/me")
	assert.Equal(t, "docs/readme.md", rep.Fields["path"])
	assert.Equal(t, "rel_file", rep.Fields["kind"])

	rep = runOne(t, nil, "rel", "/etc/hosts", "/home/me")
	assert.Equal(t, "../../etc/hosts", rep.Fields["path"])

	rep = runOne(t, nil, "--base", "/srv", "rel", "/srv/data/")
	assert.Equal(t, "data/", rep.Fields["path"])
	assert.Equal(t, "rel_dir", rep.Fields["kind"])

	_, err := execute(t, nil, "rel", "docs/readme.md", "/home/me")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestPortableCmd(t *testing.T) {
	reps, err := execute(t, nil, "portable", "a/b.txt", "a/CON.txt", "x/what?")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedPath))

	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(reps), &rep))
	assert.Equal(t, "ok", rep.Fields["a/b.txt"])
	assert.Contains(t, rep.Fields["a/CON.txt"], "CON.txt")
	assert.Contains(t, rep.Fields["x/what?"], "what?")
}

func TestMatchCmd(t *testing.T) {
	rep := runOne(t, nil, "match", "/src/main.go", "/src/*.go")
	assert.Equal(t, "true", rep.Fields["matched"])

	rep = runOne(t, nil, "match", "/src/pkg/main.go", "/src/*.go")
	assert.Equal(t, "false", rep.Fields["matched"])

	rep = runOne(t, nil, "match", "/src/pkg/main.go", "/src/**.go")
	assert.Equal(t, "true", rep.Fields["matched"])
}

func TestExpandCmd(t *testing.T) {
	env := paths.StaticEnv{
		Vars: map[string]string{"PROJ": "work"},
		Home: "/home/me",
		Cwd:  "/tmp",
	}
	opts := []Option{WithEnv(env)}

	rep := runOne(t, opts, "expand", "~/${PROJ}/notes.txt")
	assert.Equal(t, "/home/me/work/notes.txt", rep.Fields["expanded"])
	assert.Equal(t, "~/work/notes.txt", rep.Fields["contracted"])

	rep = runOne(t, opts, "expand", "./x")
	assert.Equal(t, "/tmp/x", rep.Fields["expanded"])

	_, err := execute(t, opts, "expand", "${NOPE}/x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUndefinedVariable))
}

func TestVersionCmd(t *testing.T) {
	rep := runOne(t, nil, "version")
	assert.Equal(t, "dev", rep.Fields["version"])
}

func TestRootCmd_Errors(t *testing.T) {
	_, err := execute(t, nil)
	assert.Error(t, err)

	_, err = execute(t, nil, "--format", "xml", "version")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = execute(t, nil, "--platform", "plan9", "version")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestConfigCmd(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "xpath.toml")

	rep := runOne(t, nil, "config", "init", "-o", cfgPath)
	assert.Equal(t, cfgPath, rep.Fields["written"])

	require.NoError(t, os.WriteFile(cfgPath, []byte("platform = \"windows\"\nbase = \"/srv/work\"\n"), 0644))

	out, err := execute(t, nil, "--config", cfgPath, "config", "show")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# loaded from "+cfgPath), out)
	assert.Contains(t, out, "/srv/work")

	// flags still win over the file
	rep = runOne(t, nil, "--config", cfgPath, "parse", "/x")
	assert.Equal(t, "posix", rep.Fields["platform"])
}

func TestCheckCmd(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).WithFileTree(testutil.FileTree{
		"etc": testutil.FileTree{"hosts": ""},
	})
	opts := []Option{WithOracle(env.Oracle)}

	reps, err := runMany(t, opts, "--strict=false", "check", "/virtual/etc/hosts", "/virtual/etc/", "/virtual/missing")
	require.NoError(t, err)
	require.Len(t, reps, 3)
	assert.Equal(t, "verified", reps[0].Fields["state"])
	assert.Equal(t, "true", reps[0].Fields["is_file"])
	assert.Equal(t, "verified", reps[1].Fields["state"])
	assert.Equal(t, "verified", reps[2].Fields["state"])
	assert.Equal(t, "false", reps[2].Fields["exists"])

	reps, err = runMany(t, opts, "--strict", "check", "/virtual/missing", "/virtual/etc/hosts/")
	require.Error(t, err)
	assert.Equal(t, "rejected", reps[0].Fields["state"])
	assert.Equal(t, "DOES_NOT_EXIST", reps[0].Fields["error"])
	assert.Equal(t, "rejected", reps[1].Fields["state"])
	assert.Equal(t, "NOT_A_DIRECTORY", reps[1].Fields["error"])
}

func TestCheckCmd_As(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).WithFileTree(testutil.FileTree{
		"bin": testutil.FileTree{"tool": ""},
	})
	opts := []Option{WithOracle(env.Oracle)}

	reps, err := runMany(t, opts, "check", "--as", "dir", "/virtual/bin")
	require.NoError(t, err)
	assert.Equal(t, "abs_dir", reps[0].Fields["kind"])
	assert.Equal(t, "verified", reps[0].Fields["state"])

	reps, err = runMany(t, opts, "check", "--as", "dir", "/virtual/bin/tool")
	require.Error(t, err)
	assert.Equal(t, "rejected", reps[0].Fields["state"])
	assert.Equal(t, "NOT_A_DIRECTORY", reps[0].Fields["error"])

	reps, err = runMany(t, opts, "check", "--as", "file", "bin/tool")
	require.NoError(t, err)
	assert.Equal(t, "rel_file", reps[0].Fields["kind"])

	_, err = execute(t, opts, "check", "--as", "link", "/virtual/bin")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCheckCmd_ForeignPlatformNeedsOracle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("windows is the host platform here")
	}
	_, err := execute(t, nil, "--platform", "windows", "check", `C:\x`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCheckCmd_OracleProfileMustMatch(t *testing.T) {
	env := testutil.NewWindowsEnvironment(t).WithFileTree(testutil.FileTree{
		"Data": testutil.FileTree{},
	})
	opts := []Option{WithOracle(env.Oracle)}

	_, err := execute(t, opts, "check", "/virtual/Data")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	reps, err := runMany(t, opts, "--platform", "windows", "check", `c:\VIRTUAL\data\`)
	require.NoError(t, err)
	assert.Equal(t, "verified", reps[0].Fields["state"])
	assert.Equal(t, "true", reps[0].Fields["is_dir"])
}

func TestResolveCmd(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).WithFileTree(testutil.FileTree{
		"real": testutil.FileTree{"file.txt": ""},
		"link": testutil.Symlink{Target: "real"},
	})
	opts := []Option{WithOracle(env.Oracle)}

	rep := runOne(t, opts, "resolve", "/virtual/link/file.txt")
	assert.Equal(t, "/virtual/real/file.txt", rep.Fields["path"])
	assert.Equal(t, "abs_file", rep.Fields["kind"])

	rep = runOne(t, opts, "resolve", "/virtual/link/")
	assert.Equal(t, "/virtual/real/", rep.Fields["path"])

	_, err := execute(t, opts, "resolve", "/virtual/nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestResolveCmd_RealFilesystem(t *testing.T) {
	testutil.SkipOnWindows(t)

	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated).WithFileTree(testutil.FileTree{
		"real": testutil.FileTree{"file.txt": "x"},
		"link": testutil.Symlink{Target: "real"},
	})

	rep := runOne(t, nil, "resolve", filepath.Join(env.Root, "link", "file.txt"))
	assert.Equal(t, filepath.Join(env.Root, "real", "file.txt"), rep.Fields["path"])
}

func TestFolderCmd(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_CACHE_HOME", "/var/cache/tester")

	rep := runOne(t, nil, "folder", "home", "cache")
	assert.Equal(t, "/home/tester/", rep.Fields["home"])
	assert.Equal(t, "/var/cache/tester/", rep.Fields["cache"])

	rep = runOne(t, nil, "folder")
	assert.Equal(t, "/home/tester/", rep.Fields["home"])
	assert.Contains(t, rep.Fields, "downloads")

	_, err := execute(t, nil, "folder", "attic")
	assert.Error(t, err)
}
