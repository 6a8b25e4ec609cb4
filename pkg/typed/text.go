package typed

import (
	"github.com/arthur-debert/xpath/pkg/errors"
	"github.com/arthur-debert/xpath/pkg/paths"
	"github.com/arthur-debert/xpath/pkg/platform"
)

// Typed paths serialize as their rendered string. Unmarshaling parses with
// the host profile and checks Locality only: whether the value names a file
// or a directory is left to an explicit validation step.

func (f AbsFile) MarshalText() ([]byte, error) { return []byte(f.String()), nil }
func (d AbsDir) MarshalText() ([]byte, error)  { return []byte(d.String()), nil }
func (f RelFile) MarshalText() ([]byte, error) { return []byte(f.String()), nil }
func (d RelDir) MarshalText() ([]byte, error)  { return []byte(d.String()), nil }

func (f *AbsFile) UnmarshalText(text []byte) error {
	b, err := unmarshalAs(text, LocalityAbs)
	if err != nil {
		return err
	}
	*f = AbsFile{b}
	return nil
}

func (d *AbsDir) UnmarshalText(text []byte) error {
	b, err := unmarshalAs(text, LocalityAbs)
	if err != nil {
		return err
	}
	*d = AbsDir{b}
	return nil
}

func (f *RelFile) UnmarshalText(text []byte) error {
	b, err := unmarshalAs(text, LocalityRel)
	if err != nil {
		return err
	}
	*f = RelFile{b}
	return nil
}

func (d *RelDir) UnmarshalText(text []byte) error {
	b, err := unmarshalAs(text, LocalityRel)
	if err != nil {
		return err
	}
	*d = RelDir{b}
	return nil
}

func unmarshalAs(text []byte, locality Locality) (pathBase, error) {
	input := string(text)
	profile := platform.Host()
	raw, err := paths.Parse(input, profile)
	if err != nil {
		return pathBase{}, err
	}
	if raw.IsAbs() != (locality == LocalityAbs) {
		want := "an absolute"
		if locality == LocalityRel {
			want = "a relative"
		}
		return pathBase{}, errors.Newf(errors.ErrMalformedPath, "expected %s path", want).
			WithPath(input)
	}
	return pathBase{raw: raw, profile: profile}, nil
}
