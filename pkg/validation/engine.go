package validation

import (
	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/logging"
	"github.com/arthur-debert/xpath/pkg/oracle"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
	"github.com/arthur-debert/xpath/pkg/typed"
)

// Engine validates typed paths against one oracle.
type Engine struct {
	oracle oracle.Oracle
	strict bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrict overrides DefaultStrict.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// New creates an Engine over o.
func New(o oracle.Oracle, opts ...Option) *Engine {
	e := &Engine{oracle: o, strict: DefaultStrict}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Strict reports whether missing paths are rejected.
func (e *Engine) Strict() bool { return e.strict }

// Oracle returns the oracle the engine consults.
func (e *Engine) Oracle() oracle.Oracle { return e.oracle }

// judge compares a declared form with the facts.
func (e *Engine) judge(p typed.Path, form typed.Form, facts oracle.Facts) error {
	fail := func(code errors.ErrorCode, msg string) error {
		err := errors.New(code, msg).
			WithPath(p.String()).
			WithDetails(map[string]interface{}{
				"kind":    p.Kind().String(),
				"exists":  facts.Exists,
				"is_file": facts.IsFile,
				"is_dir":  facts.IsDir,
			})
		logger := logging.ForPath("validation", p.String(), p.Profile().Name())
		logger.Debug().
			Str("code", string(code)).
			Msg("path rejected")
		return err
	}

	switch {
	case !facts.Exists && e.strict:
		return fail(errors.ErrDoesNotExist, "path does not exist")
	case !facts.Exists:
		return nil
	case form == typed.FormDir && !facts.IsDir:
		return fail(errors.ErrNotADirectory, "path is not a directory")
	case form == typed.FormFile && !facts.IsFile:
		return fail(errors.ErrNotAFile, "path is not a file")
	}
	return nil
}

// Validate checks p against the oracle and returns it unchanged when the
// filesystem agrees with its declared form.
func Validate[P typed.Path](e *Engine, p P) (P, error) {
	facts := e.oracle.Stat(p.Raw())
	if err := e.judge(p, p.Kind().Form, facts); err != nil {
		var zero P
		return zero, err
	}
	return p, nil
}

// ValidatedAsDir re-tags an absolute path as a directory, provided the
// oracle does not contradict it.
func ValidatedAsDir(e *Engine, p typed.Abs) (typed.AbsDir, error) {
	d, err := typed.AbsDirFromRaw(p.Raw(), p.Profile())
	if err != nil {
		return typed.AbsDir{}, err
	}
	return Validate(e, d)
}

// ValidatedAsFile re-tags an absolute path as a file, provided the oracle
// does not contradict it.
func ValidatedAsFile(e *Engine, p typed.Abs) (typed.AbsFile, error) {
	f, err := typed.AbsFileFromRaw(p.Raw(), p.Profile())
	if err != nil {
		return typed.AbsFile{}, err
	}
	return Validate(e, f)
}

// ValidatedAsRelDir is ValidatedAsDir for relative paths.
func ValidatedAsRelDir(e *Engine, p typed.Rel) (typed.RelDir, error) {
	d, err := typed.RelDirFromRaw(p.Raw(), p.Profile())
	if err != nil {
		return typed.RelDir{}, err
	}
	return Validate(e, d)
}

// ValidatedAsRelFile is ValidatedAsFile for relative paths.
func ValidatedAsRelFile(e *Engine, p typed.Rel) (typed.RelFile, error) {
	f, err := typed.RelFileFromRaw(p.Raw(), p.Profile())
	if err != nil {
		return typed.RelFile{}, err
	}
	return Validate(e, f)
}

// ResolveSymlinks canonicalizes p through the oracle and returns a path of
// the same static kind. Relative paths come back relative to the
// canonical working directory. A missing prefix fails with NOT_FOUND.
func ResolveSymlinks[P typed.Path](e *Engine, p P) (P, error) {
	var zero P

	canonical, err := e.oracle.Canonicalize(p.Raw())
	if err != nil {
		return zero, err
	}

	if p.Kind().Locality == typed.LocalityRel {
		canonical, err = relativeToWorkingDir(e, canonical, p.Profile())
		if err != nil {
			return zero, err
		}
	}

	logger := logging.GetLogger("validation")
	logger.Trace().
		Str("path", p.String()).
		Str("canonical", canonical.String()).
		Msg("resolved symlinks")
	return typed.Retag(p, canonical)
}

func relativeToWorkingDir(e *Engine, canonical paths.RawPath, profile platform.Profile) (paths.RawPath, error) {
	dot, err := paths.New(profile, platform.NoRoot(), paths.CurDir)
	if err != nil {
		return paths.RawPath{}, err
	}
	cwd, err := e.oracle.Canonicalize(dot)
	if err != nil {
		return paths.RawPath{}, err
	}
	return paths.RelativeTo(canonical, cwd, profile)
}
