package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/oracle"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
	"github.com/arthur-debert/xpath/pkg/typed"
	"github.com/arthur-debert/xpath/pkg/validation"
)

var posix = platform.NewPosix(platform.WithFolders(platform.NoFolders))

func raw(s string) paths.RawPath { return paths.MustParse(s, posix) }

func absDir(t *testing.T, s string) typed.AbsDir {
	t.Helper()
	d, err := typed.ParseAbsDir(s, posix)
	require.NoError(t, err)
	return d
}

func absFile(t *testing.T, s string) typed.AbsFile {
	t.Helper()
	f, err := typed.ParseAbsFile(s, posix)
	require.NoError(t, err)
	return f
}

func tree(t *testing.T) *oracle.Memory {
	t.Helper()
	m := oracle.NewMemory(posix)
	require.NoError(t, m.AddFile(raw("/tmp")))
	require.NoError(t, m.AddDir(raw("/home/me/src")))
	require.NoError(t, m.AddFile(raw("/home/me/src/main.go")))
	require.NoError(t, m.AddSymlink(raw("/home/me/code"), "src"))
	return m
}

// TestScenarioNotADirectory rejects a directory path that names a file
func TestScenarioNotADirectory(t *testing.T) {
	e := validation.New(tree(t), validation.WithStrict(false))

	f, err := typed.ParseAbsFile("/tmp", posix)
	require.NoError(t, err)

	_, err = validation.Validate(e, f.AsDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotADirectory))
	assert.Equal(t, "/tmp/", errors.GetErrorPath(err))
	assert.Equal(t, true, errors.GetErrorDetails(err)["is_file"])
}

// TestScenarioStrictMode shows that only strict mode rejects a missing path
func TestScenarioStrictMode(t *testing.T) {
	m := tree(t)
	d, err := typed.ParseAbsDir("/nope", posix)
	require.NoError(t, err)
	f, err := d.AsFile()
	require.NoError(t, err)

	lenient := validation.New(m, validation.WithStrict(false))
	got, err := validation.Validate(lenient, f)
	require.NoError(t, err)
	assert.True(t, f.Equal(got))

	strict := validation.New(m, validation.WithStrict(true))
	_, err = validation.Validate(strict, f)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDoesNotExist))
	assert.True(t, strict.Strict())
	assert.False(t, lenient.Strict())
}

func TestValidate(t *testing.T) {
	m := tree(t)

	tests := []struct {
		name    string
		path    typed.Path
		strict  bool
		wantErr errors.ErrorCode
	}{
		{name: "dir is dir", path: absDir(t, "/home/me/src")},
		{name: "file is file", path: absFile(t, "/home/me/src/main.go")},
		{name: "link to dir is dir", path: absDir(t, "/home/me/code")},
		{name: "file declared dir", path: absDir(t, "/home/me/src/main.go"), wantErr: errors.ErrNotADirectory},
		{name: "dir declared file", path: absFile(t, "/home/me/src"), wantErr: errors.ErrNotAFile},
		{name: "missing file lenient", path: absFile(t, "/home/me/gone.txt")},
		{name: "missing file strict", path: absFile(t, "/home/me/gone.txt"), strict: true, wantErr: errors.ErrDoesNotExist},
		{name: "existing dir strict", path: absDir(t, "/home"), strict: true},
		{name: "root strict", path: absDir(t, "/"), strict: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validation.New(m, validation.WithStrict(tt.strict))
			got, err := validation.Validate(e, tt.path)
			if tt.wantErr != "" {
				assert.True(t, errors.IsErrorCode(err, tt.wantErr), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.path.String(), got.String())
		})
	}
}

// TestValidationSoundness never rejects a directory the oracle reports as one
func TestValidationSoundness(t *testing.T) {
	m := tree(t)
	e := validation.New(m, validation.WithStrict(true))

	for _, p := range m.Paths() {
		facts := m.Stat(p)
		if !facts.IsDir {
			continue
		}
		f, err := typed.AbsFileFromRaw(p, posix)
		require.NoError(t, err)
		_, err = validation.Validate(e, f.AsDir())
		assert.False(t, errors.IsErrorCode(err, errors.ErrNotADirectory), p.String())
	}
}

func TestValidatedAs(t *testing.T) {
	e := validation.New(tree(t), validation.WithStrict(false))

	d, err := validation.ValidatedAsDir(e, absFile(t, "/home/me/src"))
	require.NoError(t, err)
	assert.Equal(t, "/home/me/src/", d.String())

	_, err = validation.ValidatedAsDir(e, absFile(t, "/tmp"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotADirectory))

	f, err := validation.ValidatedAsFile(e, absDir(t, "/tmp"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp", f.String())

	_, err = validation.ValidatedAsFile(e, absDir(t, "/"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedPath))

	rel, err := typed.ParseRelFile("me/src", posix)
	require.NoError(t, err)
	m := tree(t)
	m.SetWorkingDir(raw("/home"))
	re := validation.New(m)

	rd, err := validation.ValidatedAsRelDir(re, rel)
	require.NoError(t, err)
	assert.Equal(t, "me/src/", rd.String())

	_, err = validation.ValidatedAsRelFile(re, rel)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotAFile))
}

func TestResolveSymlinks(t *testing.T) {
	m := tree(t)
	e := validation.New(m)

	got, err := validation.ResolveSymlinks(e, absFile(t, "/home/me/code/main.go"))
	require.NoError(t, err)
	assert.Equal(t, "/home/me/src/main.go", got.String())
	assert.Equal(t, typed.Kind{Locality: typed.LocalityAbs, Form: typed.FormFile}, got.Kind())

	dir, err := validation.ResolveSymlinks(e, absDir(t, "/home/me/code/../code"))
	require.NoError(t, err)
	assert.Equal(t, "/home/me/src/", dir.String())

	_, err = validation.ResolveSymlinks(e, absFile(t, "/home/nobody/x"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	m.SetWorkingDir(raw("/home/me"))
	rd, err := typed.ParseRelDir("code", posix)
	require.NoError(t, err)
	rgot, err := validation.ResolveSymlinks(e, rd)
	require.NoError(t, err)
	assert.Equal(t, "src/", rgot.String())
}

func TestCheck(t *testing.T) {
	e := validation.New(tree(t), validation.WithStrict(false))

	ok := e.Check(absDir(t, "/home/me/src"))
	assert.Equal(t, validation.StateVerified, ok.State)
	assert.NoError(t, ok.Err)
	assert.True(t, ok.Facts.IsDir)

	bad := e.Check(absFile(t, "/home/me/src"))
	assert.Equal(t, validation.StateRejected, bad.State)
	assert.True(t, errors.IsErrorCode(bad.Err, errors.ErrNotAFile))

	results := e.CheckAll(absDir(t, "/tmp"), absFile(t, "/tmp"))
	require.Len(t, results, 2)
	assert.Equal(t, "rejected", results[0].State.String())
	assert.Equal(t, "verified", results[1].State.String())

	var zero validation.Result
	assert.Equal(t, validation.StateUnverified, zero.State)

	s, err := validation.StateString("Verified")
	require.NoError(t, err)
	assert.Equal(t, validation.StateVerified, s)
}

func TestDefaultStrictFollowsBuildTag(t *testing.T) {
	e := validation.New(oracle.NewMemory(posix))
	assert.Equal(t, validation.DefaultStrict, e.Strict())
}
