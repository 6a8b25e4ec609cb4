package oracle

import (
	"sort"
	"sync"

	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/logging"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
)

type memEntry struct {
	kind   node
	path   paths.RawPath
	target string
}

// Memory is an in-memory Oracle. Keys are folded through the profile, so a
// Windows-profile tree is case-insensitive. Roots always exist. It is safe
// for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	profile platform.Profile
	entries map[string]memEntry
	cwd     *paths.RawPath
}

// NewMemory returns an empty tree.
func NewMemory(profile platform.Profile) *Memory {
	return &Memory{
		profile: profile,
		entries: make(map[string]memEntry),
	}
}

// Profile returns the profile keys are folded with.
func (m *Memory) Profile() platform.Profile { return m.profile }

// SetWorkingDir sets the directory relative paths are resolved against.
// Without one, relative paths are never found.
func (m *Memory) SetWorkingDir(dir paths.RawPath) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cwd = &dir
}

// AddDir adds a directory and any missing parents.
func (m *Memory) AddDir(p paths.RawPath) error {
	return m.add(p, memEntry{kind: nodeDir})
}

// AddFile adds a file and any missing parent directories.
func (m *Memory) AddFile(p paths.RawPath) error {
	return m.add(p, memEntry{kind: nodeFile})
}

// AddSymlink adds a link at p pointing at target, which is kept as written
// and may be relative to the link's directory. Dangling links are allowed.
func (m *Memory) AddSymlink(p paths.RawPath, target string) error {
	if _, err := paths.Parse(target, m.profile); err != nil {
		return err
	}
	return m.add(p, memEntry{kind: nodeLink, target: target})
}

// Remove deletes p and everything below it. Missing paths are ignored.
func (m *Memory) Remove(p paths.RawPath) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, e := range m.entries {
		if paths.HasPrefix(e.path, p, m.profile) {
			delete(m.entries, key)
		}
	}
}

// Paths lists every entry, sorted by the profile's ordering.
func (m *Memory) Paths() []paths.RawPath {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]paths.RawPath, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.path)
	}
	sort.Slice(out, func(i, j int) bool {
		return paths.Compare(out[i], out[j], m.profile) < 0
	})
	return out
}

func (m *Memory) add(p paths.RawPath, e memEntry) error {
	if !p.IsAbs() || p.IsRoot() {
		return errors.New(errors.ErrInvalidInput, "memory oracle entries must be absolute and below a root").
			WithPath(p.String())
	}
	for _, s := range p.Segments() {
		if s == paths.CurDir || s == paths.ParentDir {
			return errors.New(errors.ErrInvalidInput, "memory oracle entries must be normalized").
				WithPath(p.String())
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for parent, ok := paths.Parent(p); ok && !parent.IsRoot(); parent, ok = paths.Parent(parent) {
		key := m.key(parent)
		existing, found := m.entries[key]
		if !found {
			m.entries[key] = memEntry{kind: nodeDir, path: parent}
			continue
		}
		if existing.kind == nodeFile {
			return errors.New(errors.ErrInvalidInput, "parent is a file").WithPath(parent.String())
		}
	}

	e.path = p
	m.entries[m.key(p)] = e
	return nil
}

func (m *Memory) key(p paths.RawPath) string {
	return m.profile.Fold(p.String())
}

// lookup expects the read lock to be held.
func (m *Memory) lookup(p paths.RawPath) (node, string) {
	e, ok := m.entries[m.key(p)]
	if !ok {
		return nodeMissing, ""
	}
	return e.kind, e.target
}

// Stat follows symlinks.
func (m *Memory) Stat(p paths.RawPath) Facts {
	m.mu.RLock()
	defer m.mu.RUnlock()

	resolved, kind, err := walk(p, m.cwd, m.profile, m.lookup)
	if err != nil {
		logger := logging.GetLogger("oracle.memory")
		logger.Trace().Str("path", p.String()).Err(err).Msg("stat: not found")
		return Facts{}
	}
	return factsFor(kind, resolved)
}

// Canonicalize resolves links, "." and "..".
func (m *Memory) Canonicalize(p paths.RawPath) (paths.RawPath, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	resolved, _, err := walk(p, m.cwd, m.profile, m.lookup)
	return resolved, err
}
