package paths

import (
	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/platform"
)

// CheckPortable applies the Windows naming rules to every segment of p,
// whatever profile p was parsed under, so a path written on one system
// still works on the other.
func CheckPortable(p RawPath) error {
	if p.root.Kind() == platform.RootUNC {
		for _, part := range []string{p.root.Server(), p.root.Share()} {
			if err := platform.CheckWindowsName(part); err != nil {
				return portable(p, part, err)
			}
		}
	}
	for _, s := range p.segments {
		if err := platform.CheckWindowsName(s); err != nil {
			return portable(p, s, err)
		}
	}
	return nil
}

func portable(p RawPath, segment string, cause error) error {
	return errors.Wrap(cause, errors.ErrMalformedPath, "path is not portable").
		WithPath(p.String()).
		WithDetail("segment", segment)
}
