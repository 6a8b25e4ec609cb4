package typed

//go:generate go run github.com/dmarkham/enumer -type=Locality -trimprefix Locality -transform snake
//go:generate go run github.com/dmarkham/enumer -type=Form -trimprefix Form -transform snake

// Locality tells absolute paths from relative ones.
type Locality int

const (
	LocalityAbs Locality = iota
	LocalityRel
)

// Form tells files from directories.
type Form int

const (
	FormFile Form = iota
	FormDir
)

// Kind is the pair carried statically by each typed path.
type Kind struct {
	Locality Locality
	Form     Form
}

// String returns "abs_file", "rel_dir" and so on.
func (k Kind) String() string {
	return k.Locality.String() + "_" + k.Form.String()
}

var (
	kindAbsFile = Kind{LocalityAbs, FormFile}
	kindAbsDir  = Kind{LocalityAbs, FormDir}
	kindRelFile = Kind{LocalityRel, FormFile}
	kindRelDir  = Kind{LocalityRel, FormDir}
)
