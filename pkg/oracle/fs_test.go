package oracle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/oracle"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
)

func TestFSOverMemMapFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/etc/app", 0755))
	require.NoError(t, afero.WriteFile(fs, "/etc/app/config.toml", []byte("x = 1"), 0644))

	o := oracle.NewFS(fs, posix)

	facts := o.Stat(p("/etc/app"))
	assert.True(t, facts.Exists)
	assert.True(t, facts.IsDir)
	assert.False(t, facts.IsFile)

	facts = o.Stat(p("/etc/app/config.toml"))
	assert.True(t, facts.Exists)
	assert.True(t, facts.IsFile)
	require.NotNil(t, facts.Canonical)
	assert.Equal(t, "/etc/app/config.toml", facts.Canonical.String())

	assert.Equal(t, oracle.Facts{}, o.Stat(p("/etc/missing")))

	got, err := o.Canonicalize(p("/etc/./app/../app/config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "/etc/app/config.toml", got.String())

	_, err = o.Canonicalize(p("/etc/nope/config.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestFSWorkingDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/srv/data", 0755))

	o := oracle.NewFS(fs, posix).WithWorkingDir(p("/srv"))
	assert.True(t, o.Stat(p("data")).IsDir)

	got, err := o.Canonicalize(p("./data"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", got.String())
}

func TestOSOracle(t *testing.T) {
	if platform.Host().Name() != "posix" {
		t.Skip("exercises POSIX symlinks")
	}

	root := t.TempDir()
	root, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "real", "dir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "real", "file.txt"), []byte("hi"), 0644))
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")))

	host := platform.Host()
	o := oracle.NewOS(host)
	at := func(rel string) paths.RawPath {
		return paths.MustParse(filepath.Join(root, rel), host)
	}

	facts := o.Stat(at("real/dir"))
	assert.True(t, facts.Exists)
	assert.True(t, facts.IsDir)

	facts = o.Stat(at("link/file.txt"))
	assert.True(t, facts.Exists)
	assert.True(t, facts.IsFile)
	require.NotNil(t, facts.Canonical)
	assert.Equal(t, filepath.Join(root, "real", "file.txt"), paths.Render(*facts.Canonical, host))

	assert.False(t, o.Stat(at("nope")).Exists)

	_, err = o.Canonicalize(at("nope/deeper"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestFSFollowsLinksOnBasePathFs(t *testing.T) {
	if platform.Host().Name() != "posix" {
		t.Skip("exercises POSIX symlinks")
	}

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "target"), 0755))
	require.NoError(t, os.Symlink("target", filepath.Join(dir, "alias")))

	// Through BasePathFs the oracle walks prefixes itself, reading links
	// with afero.LinkReader.
	o := oracle.NewFS(afero.NewBasePathFs(afero.NewOsFs(), dir), posix)
	got, err := o.Canonicalize(p("/alias"))
	require.NoError(t, err)
	assert.Equal(t, "/target", got.String())
	assert.True(t, o.Stat(p("/alias")).IsDir)
}
