package paths

import (
	"os"
	"strings"

	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/platform"
)

// Env is what Expand needs to know about the process.
type Env interface {
	LookupEnv(name string) (string, bool)
	HomeDir() (string, bool)
	WorkingDir() (string, bool)
}

// OSEnv reads the real process environment.
type OSEnv struct{}

func (OSEnv) LookupEnv(name string) (string, bool) { return os.LookupEnv(name) }

func (OSEnv) HomeDir() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return home, true
}

func (OSEnv) WorkingDir() (string, bool) {
	wd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return wd, true
}

// StaticEnv is a fixed environment, mostly for tests.
type StaticEnv struct {
	Vars map[string]string
	Home string
	Cwd  string
}

func (e StaticEnv) LookupEnv(name string) (string, bool) {
	v, ok := e.Vars[name]
	return v, ok
}

func (e StaticEnv) HomeDir() (string, bool) { return e.Home, e.Home != "" }

func (e StaticEnv) WorkingDir() (string, bool) { return e.Cwd, e.Cwd != "" }

// Expand rewrites the shell-style parts of input:
//
//   - a leading "~" (alone or before a separator) becomes the home directory
//   - a leading "." (alone or before a separator) becomes the working directory
//   - a whole segment "${NAME}" or "%NAME%" becomes the value of NAME
//
// Only whole segments are substituted; "$NAME", "a${NAME}" and unclosed
// forms are left as they are. "${}" and unset variables fail with
// UNDEFINED_VARIABLE. The result is a string, ready for Parse.
func Expand(input string, env Env, profile platform.Profile) (string, error) {
	input, err := expandPrefix(input, env, profile)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	start := 0
	flush := func(end int) error {
		seg := input[start:end]
		name, ok := variableName(seg)
		if !ok {
			b.WriteString(seg)
			return nil
		}
		if name == "" {
			return errors.New(errors.ErrUndefinedVariable, "empty variable name").WithPath(input)
		}
		v, found := env.LookupEnv(name)
		if !found {
			return errors.Newf(errors.ErrUndefinedVariable, "variable %s is not set", name).
				WithPath(input).
				WithDetail("variable", name)
		}
		b.WriteString(v)
		return nil
	}

	for i, r := range input {
		if !profile.IsSeparator(r) {
			continue
		}
		if err := flush(i); err != nil {
			return "", err
		}
		b.WriteRune(r)
		start = i + 1
	}
	if err := flush(len(input)); err != nil {
		return "", err
	}
	return b.String(), nil
}

func expandPrefix(input string, env Env, profile platform.Profile) (string, error) {
	for _, pre := range []struct {
		marker string
		lookup func() (string, bool)
		what   string
	}{
		{"~", env.HomeDir, "home directory"},
		{CurDir, env.WorkingDir, "working directory"},
	} {
		if !strings.HasPrefix(input, pre.marker) {
			continue
		}
		rest := input[len(pre.marker):]
		if rest != "" && !profile.IsSeparator(rune(rest[0])) {
			continue
		}
		dir, ok := pre.lookup()
		if !ok {
			return "", errors.Newf(errors.ErrUndefinedVariable, "%s is unknown", pre.what).WithPath(input)
		}
		return dir + rest, nil
	}
	return input, nil
}

// variableName recognizes "${NAME}" and "%NAME%".
func variableName(seg string) (string, bool) {
	switch {
	case strings.HasPrefix(seg, "${") && strings.HasSuffix(seg, "}") && len(seg) >= 3:
		name := seg[2 : len(seg)-1]
		if strings.ContainsAny(name, "${}") {
			return "", false
		}
		return name, true
	case len(seg) >= 3 && seg[0] == '%' && seg[len(seg)-1] == '%':
		name := seg[1 : len(seg)-1]
		if strings.Contains(name, "%") {
			return "", false
		}
		return name, true
	}
	return "", false
}

// Contract renders p, replacing a leading home directory with "~".
func Contract(p, home RawPath, profile platform.Profile) string {
	if !home.IsAbs() || !HasPrefix(p, home, profile) {
		return Render(p, profile)
	}
	rest := p.segments[len(home.segments):]
	if len(rest) == 0 {
		return "~"
	}
	sep := string(profile.Separator())
	return "~" + sep + strings.Join(rest, sep)
}
