package oracle_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/oracle"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
)

var (
	posix   = platform.NewPosix(platform.WithFolders(platform.NoFolders))
	windows = platform.NewWindows(platform.WithFolders(platform.NoFolders))
)

func p(s string) paths.RawPath { return paths.MustParse(s, posix) }

func newTree(t *testing.T) *oracle.Memory {
	t.Helper()
	m := oracle.NewMemory(posix)
	require.NoError(t, m.AddFile(p("/tmp")))
	require.NoError(t, m.AddDir(p("/home/me/src")))
	require.NoError(t, m.AddFile(p("/home/me/src/main.go")))
	require.NoError(t, m.AddSymlink(p("/home/me/code"), "src"))
	require.NoError(t, m.AddSymlink(p("/home/me/abs"), "/home/me/src/main.go"))
	require.NoError(t, m.AddSymlink(p("/home/me/dangling"), "/nowhere"))
	require.NoError(t, m.AddSymlink(p("/loop/a"), "b"))
	require.NoError(t, m.AddSymlink(p("/loop/b"), "a"))
	return m
}

var (
	_ oracle.Oracle = (*oracle.Memory)(nil)
	_ oracle.Oracle = (*oracle.FS)(nil)
)

func TestMemoryProfile(t *testing.T) {
	assert.Equal(t, "posix", oracle.NewMemory(posix).Profile().Name())
	assert.Equal(t, "windows", oracle.NewMemory(windows).Profile().Name())
}

func TestMemoryStat(t *testing.T) {
	m := newTree(t)

	tests := []struct {
		path      string
		exists    bool
		isFile    bool
		isDir     bool
		canonical string
	}{
		{"/", true, false, true, "/"},
		{"/tmp", true, true, false, "/tmp"},
		{"/home", true, false, true, "/home"},
		{"/home/me/src", true, false, true, "/home/me/src"},
		{"/home/me/code", true, false, true, "/home/me/src"},
		{"/home/me/code/main.go", true, true, false, "/home/me/src/main.go"},
		{"/home/me/abs", true, true, false, "/home/me/src/main.go"},
		{"/home/me/./src/../src/main.go", true, true, false, "/home/me/src/main.go"},
		{"/home/me/dangling", false, false, false, ""},
		{"/nope", false, false, false, ""},
		{"/tmp/inside-a-file", false, false, false, ""},
		{"/home/me/src/main.go/..", false, false, false, ""},
		{"/home/me/src/main.go/.", false, false, false, ""},
		{"/home/me/abs/..", false, false, false, ""},
		{"/loop/a", false, false, false, ""},
		{"relative", false, false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			facts := m.Stat(p(tt.path))
			assert.Equal(t, tt.exists, facts.Exists)
			assert.Equal(t, tt.isFile, facts.IsFile)
			assert.Equal(t, tt.isDir, facts.IsDir)
			if tt.canonical == "" {
				assert.Nil(t, facts.Canonical)
				return
			}
			require.NotNil(t, facts.Canonical)
			assert.Equal(t, tt.canonical, paths.Render(*facts.Canonical, posix))
		})
	}
}

func TestMemoryCanonicalize(t *testing.T) {
	m := newTree(t)

	got, err := m.Canonicalize(p("/home/me/code/main.go"))
	require.NoError(t, err)
	assert.Equal(t, "/home/me/src/main.go", got.String())

	_, err = m.Canonicalize(p("/home/me/missing/x"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "/home/me/missing", errors.GetErrorPath(err))

	_, err = m.Canonicalize(p("/loop/a"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	_, err = m.Canonicalize(p("/.."))
	assert.NoError(t, err, "the root is its own parent")
}

func TestMemoryWorkingDir(t *testing.T) {
	m := newTree(t)
	_, err := m.Canonicalize(p("src"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	m.SetWorkingDir(p("/home/me"))
	got, err := m.Canonicalize(p("code/main.go"))
	require.NoError(t, err)
	assert.Equal(t, "/home/me/src/main.go", got.String())
	assert.True(t, m.Stat(p("src")).IsDir)
}

func TestMemoryAddErrors(t *testing.T) {
	m := newTree(t)
	assert.True(t, errors.IsErrorCode(m.AddFile(p("rel")), errors.ErrInvalidInput))
	assert.True(t, errors.IsErrorCode(m.AddDir(p("/")), errors.ErrInvalidInput))
	assert.True(t, errors.IsErrorCode(m.AddDir(p("/a/../b")), errors.ErrInvalidInput))
	assert.True(t, errors.IsErrorCode(m.AddFile(p("/tmp/child")), errors.ErrInvalidInput))
}

func TestMemoryRemove(t *testing.T) {
	m := newTree(t)
	m.Remove(p("/home/me/src"))
	assert.False(t, m.Stat(p("/home/me/src/main.go")).Exists)
	assert.False(t, m.Stat(p("/home/me/code")).Exists, "link now dangles")
	assert.True(t, m.Stat(p("/home/me")).Exists)

	m.Remove(p("/does/not/exist"))
}

func TestMemoryCaseFolding(t *testing.T) {
	w := oracle.NewMemory(windows)
	require.NoError(t, w.AddFile(paths.MustParse(`C:\Users\Me\NTUSER.DAT`, windows)))

	facts := w.Stat(paths.MustParse(`c:/users/me/ntuser.dat`, windows))
	assert.True(t, facts.Exists)
	assert.True(t, facts.IsFile)

	ps := oracle.NewMemory(posix)
	require.NoError(t, ps.AddFile(p("/Readme")))
	assert.False(t, ps.Stat(p("/README")).Exists)
}

func TestMemoryPaths(t *testing.T) {
	m := oracle.NewMemory(posix)
	require.NoError(t, m.AddFile(p("/b/x")))
	require.NoError(t, m.AddFile(p("/a")))

	var got []string
	for _, e := range m.Paths() {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{"/a", "/b", "/b/x"}, got)
}

func TestMemoryConcurrentUse(t *testing.T) {
	m := newTree(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = m.Stat(p("/home/me/code/main.go"))
		}()
		go func() {
			defer wg.Done()
			_ = m.AddDir(p("/var/cache"))
		}()
	}
	wg.Wait()
	assert.True(t, m.Stat(p("/var/cache")).IsDir)
}
