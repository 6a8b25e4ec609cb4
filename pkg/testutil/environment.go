package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/xpath/pkg/oracle"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
	"github.com/arthur-debert/xpath/pkg/typed"
	"github.com/arthur-debert/xpath/pkg/validation"
)

// EnvType defines the backing of a test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // oracle.Memory, no filesystem at all
	EnvAfero                     // afero MemMapFs behind oracle.FS
	EnvIsolated                  // real filesystem in a temp directory
)

// FileTree describes a directory's contents. Values are a string (a file),
// a nested FileTree (a directory) or a Symlink.
type FileTree map[string]interface{}

// Symlink is a FileTree entry for a link. Target is kept as written.
type Symlink struct {
	Target string
}

// TestEnvironment is a fixture tree reachable through an oracle.
type TestEnvironment struct {
	// Root is the absolute directory trees are created under.
	Root    string
	Profile platform.Profile
	Oracle  oracle.Oracle
	Type    EnvType

	// Memory is set for EnvMemoryOnly, Fs for the other types.
	Memory *oracle.Memory
	Fs     afero.Fs

	t *testing.T
}

// NewTestEnvironment creates an environment with the posix profile, or the
// host profile for EnvIsolated.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.Profile = platform.NewPosix()
		env.Root = "/virtual"
		env.Memory = oracle.NewMemory(env.Profile)
		env.Oracle = env.Memory
		if err := env.Memory.AddDir(env.raw(env.Root)); err != nil {
			t.Fatalf("Failed to create root: %v", err)
		}
		env.Memory.SetWorkingDir(env.raw(env.Root))
	case EnvAfero:
		env.Profile = platform.NewPosix()
		env.Root = "/virtual"
		env.Fs = afero.NewMemMapFs()
		if err := env.Fs.MkdirAll(env.Root, 0755); err != nil {
			t.Fatalf("Failed to create root: %v", err)
		}
		env.Oracle = oracle.NewFS(env.Fs, env.Profile).WithWorkingDir(env.raw(env.Root))
	case EnvIsolated:
		env.Profile = platform.Host()
		env.Root = RealTempDir(t)
		env.Fs = afero.NewOsFs()
		env.Oracle = oracle.NewOS(env.Profile)
	default:
		t.Fatalf("Unknown environment type %d", envType)
	}

	return env
}

// NewWindowsEnvironment creates a memory environment with the windows
// profile rooted at C:\virtual.
func NewWindowsEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	profile := platform.NewWindows(platform.WithFolders(platform.NoFolders))
	env := &TestEnvironment{
		t:       t,
		Type:    EnvMemoryOnly,
		Profile: profile,
		Root:    `C:\virtual`,
		Memory:  oracle.NewMemory(profile),
	}
	env.Oracle = env.Memory
	if err := env.Memory.AddDir(env.raw(env.Root)); err != nil {
		t.Fatalf("Failed to create root: %v", err)
	}
	env.Memory.SetWorkingDir(env.raw(env.Root))
	return env
}

// WithFileTree creates tree under Root.
func (env *TestEnvironment) WithFileTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	env.createTree(env.raw(env.Root), tree)
	return env
}

func (env *TestEnvironment) createTree(dir paths.RawPath, tree FileTree) {
	env.t.Helper()

	// deterministic order keeps failures reproducible
	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rel, err := paths.Parse(name, env.Profile)
		if err != nil {
			env.t.Fatalf("Invalid tree entry %q: %v", name, err)
		}
		full, err := paths.Join(dir, rel)
		if err != nil {
			env.t.Fatalf("Invalid tree entry %q: %v", name, err)
		}

		switch v := tree[name].(type) {
		case string:
			env.addFile(full, v)
		case FileTree:
			env.addDir(full)
			env.createTree(full, v)
		case Symlink:
			env.addSymlink(full, v.Target)
		default:
			env.t.Fatalf("Invalid file tree content type for %s: %T", name, v)
		}
	}
}

func (env *TestEnvironment) addFile(p paths.RawPath, content string) {
	env.t.Helper()

	if env.Memory != nil {
		if err := env.Memory.AddFile(p); err != nil {
			env.t.Fatalf("Failed to add file %s: %v", p, err)
		}
		return
	}
	native := env.native(p)
	if err := env.Fs.MkdirAll(filepath.Dir(native), 0755); err != nil {
		env.t.Fatalf("Failed to create parent of %s: %v", native, err)
	}
	if err := afero.WriteFile(env.Fs, native, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write file %s: %v", native, err)
	}
}

func (env *TestEnvironment) addDir(p paths.RawPath) {
	env.t.Helper()

	if env.Memory != nil {
		if err := env.Memory.AddDir(p); err != nil {
			env.t.Fatalf("Failed to add directory %s: %v", p, err)
		}
		return
	}
	if err := env.Fs.MkdirAll(env.native(p), 0755); err != nil {
		env.t.Fatalf("Failed to create directory %s: %v", p, err)
	}
}

func (env *TestEnvironment) addSymlink(p paths.RawPath, target string) {
	env.t.Helper()

	if env.Memory != nil {
		if err := env.Memory.AddSymlink(p, target); err != nil {
			env.t.Fatalf("Failed to add symlink %s: %v", p, err)
		}
		return
	}
	linker, ok := env.Fs.(afero.Linker)
	if !ok {
		env.t.Skipf("%T does not support symlinks", env.Fs)
	}
	native := env.native(p)
	if err := env.Fs.MkdirAll(filepath.Dir(native), 0755); err != nil {
		env.t.Fatalf("Failed to create parent of %s: %v", native, err)
	}
	if err := linker.SymlinkIfPossible(target, native); err != nil {
		env.t.Fatalf("Failed to create symlink %s -> %s: %v", native, target, err)
	}
}

func (env *TestEnvironment) raw(s string) paths.RawPath {
	env.t.Helper()

	p, err := paths.Parse(s, env.Profile)
	if err != nil {
		env.t.Fatalf("Invalid fixture path %q: %v", s, err)
	}
	return p
}

func (env *TestEnvironment) native(p paths.RawPath) string {
	return paths.Render(p, env.Profile)
}

// Path returns the RawPath of rel under Root. An empty rel is Root itself.
func (env *TestEnvironment) Path(rel string) paths.RawPath {
	env.t.Helper()

	root := env.raw(env.Root)
	if rel == "" {
		return root
	}
	joined, err := paths.Join(root, env.raw(rel))
	if err != nil {
		env.t.Fatalf("Cannot join %q under root: %v", rel, err)
	}
	return joined
}

// AbsDir returns rel under Root as a directory path.
func (env *TestEnvironment) AbsDir(rel string) typed.AbsDir {
	env.t.Helper()

	d, err := typed.AbsDirFromRaw(env.Path(rel), env.Profile)
	if err != nil {
		env.t.Fatalf("Cannot build AbsDir for %q: %v", rel, err)
	}
	return d
}

// AbsFile returns rel under Root as a file path.
func (env *TestEnvironment) AbsFile(rel string) typed.AbsFile {
	env.t.Helper()

	f, err := typed.AbsFileFromRaw(env.Path(rel), env.Profile)
	if err != nil {
		env.t.Fatalf("Cannot build AbsFile for %q: %v", rel, err)
	}
	return f
}

// Engine returns a validation engine over the environment's oracle.
func (env *TestEnvironment) Engine(opts ...validation.Option) *validation.Engine {
	return validation.New(env.Oracle, opts...)
}
