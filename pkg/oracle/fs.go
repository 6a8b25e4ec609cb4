package oracle

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/logging"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
)

// FS is an Oracle backed by an afero filesystem.
type FS struct {
	fs       afero.Fs
	profile  platform.Profile
	osBacked bool
	cwd      *paths.RawPath
}

// NewFS creates an oracle over any afero filesystem. Relative paths are
// resolved against "/" on POSIX profiles; use WithWorkingDir to change that.
func NewFS(fs afero.Fs, profile platform.Profile) *FS {
	o := &FS{fs: fs, profile: profile}
	if root, err := paths.New(profile, platform.PosixRoot()); err == nil {
		o.cwd = &root
	}
	return o
}

// NewOS creates an oracle over the real filesystem. Relative paths resolve
// against the process working directory.
func NewOS(profile platform.Profile) *FS {
	return &FS{fs: afero.NewOsFs(), profile: profile, osBacked: true}
}

// WithWorkingDir sets the directory relative paths are resolved against.
func (o *FS) WithWorkingDir(dir paths.RawPath) *FS {
	o.cwd = &dir
	return o
}

// Profile returns the profile paths are rendered with.
func (o *FS) Profile() platform.Profile { return o.profile }

// Stat follows symlinks like os.Stat. Anything that is not a directory
// counts as a file.
func (o *FS) Stat(p paths.RawPath) Facts {
	logger := logging.GetLogger("oracle.fs")
	name := o.render(p)

	info, err := o.fs.Stat(name)
	if err != nil {
		logger.Trace().Str("path", name).Err(err).Msg("stat: not found")
		return Facts{}
	}

	facts := Facts{Exists: true, IsDir: info.IsDir(), IsFile: !info.IsDir()}
	if canonical, err := o.Canonicalize(p); err == nil {
		facts.Canonical = &canonical
	}
	logger.Trace().
		Str("path", name).
		Bool("dir", facts.IsDir).
		Msg("stat")
	return facts
}

// Canonicalize resolves symlinks. On the OS filesystem this is
// filepath.EvalSymlinks; elsewhere the path is walked prefix by prefix.
func (o *FS) Canonicalize(p paths.RawPath) (paths.RawPath, error) {
	logger := logging.GetLogger("oracle.fs")
	if !o.osBacked {
		resolved, _, err := walk(p, o.cwd, o.profile, o.lookup)
		if err != nil {
			logger.Debug().Str("path", p.String()).Err(err).Msg("canonicalize failed")
		}
		return resolved, err
	}

	name := o.render(p)
	if !p.IsAbs() {
		abs, err := filepath.Abs(name)
		if err != nil {
			return paths.RawPath{}, errors.Wrap(err, errors.ErrNotFound, "cannot absolutize path").WithPath(name)
		}
		name = abs
	}
	resolved, err := filepath.EvalSymlinks(name)
	if err != nil {
		logger.Debug().Str("path", name).Err(err).Msg("canonicalize failed")
		return paths.RawPath{}, errors.Wrap(err, errors.ErrNotFound, "cannot resolve path").WithPath(name)
	}
	out, err := paths.Parse(resolved, o.profile)
	if err != nil {
		return paths.RawPath{}, errors.Wrap(err, errors.ErrInternal, "resolved path does not parse").WithPath(resolved)
	}
	return out, nil
}

func (o *FS) render(p paths.RawPath) string {
	if !p.IsAbs() && o.cwd != nil && !o.osBacked {
		if joined, err := paths.Join(*o.cwd, p); err == nil {
			p = joined
		}
	}
	return paths.Render(p, o.profile)
}

func (o *FS) lookup(p paths.RawPath) (node, string) {
	name := paths.Render(p, o.profile)

	if ls, ok := o.fs.(afero.Lstater); ok {
		info, lstatCalled, err := ls.LstatIfPossible(name)
		if err != nil {
			return nodeMissing, ""
		}
		if lstatCalled && info.Mode()&os.ModeSymlink != 0 {
			if lr, ok := o.fs.(afero.LinkReader); ok {
				target, err := lr.ReadlinkIfPossible(name)
				if err != nil {
					return nodeMissing, ""
				}
				return nodeLink, target
			}
			// Cannot read the link; fall back to the followed stat.
			info, err = o.fs.Stat(name)
			if err != nil {
				return nodeMissing, ""
			}
		}
		return kindOf(info), ""
	}

	info, err := o.fs.Stat(name)
	if err != nil {
		return nodeMissing, ""
	}
	return kindOf(info), ""
}

func kindOf(info os.FileInfo) node {
	if info.IsDir() {
		return nodeDir
	}
	return nodeFile
}
