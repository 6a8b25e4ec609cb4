package validation

import (
	"github.com/arthur-debert/xpath/pkg/oracle"
	"github.com/arthur-debert/xpath/pkg/typed"
)

//go:generate go run github.com/dmarkham/enumer -type=State -trimprefix State -transform snake

// State is where a path stands in validation. Every path starts
// Unverified and ends either Verified or Rejected; both are terminal.
type State int

const (
	StateUnverified State = iota
	StateVerified
	StateRejected
)

// Result is the outcome of checking one path, for reporting.
type Result struct {
	Path  typed.Path
	State State
	Facts oracle.Facts
	Err   error
}

// Check validates p and reports the outcome instead of returning an
// error.
func (e *Engine) Check(p typed.Path) Result {
	r := Result{Path: p, State: StateUnverified}
	r.Facts = e.oracle.Stat(p.Raw())
	if err := e.judge(p, p.Kind().Form, r.Facts); err != nil {
		r.State = StateRejected
		r.Err = err
		return r
	}
	r.State = StateVerified
	return r
}

// CheckAll checks every path in order.
func (e *Engine) CheckAll(ps ...typed.Path) []Result {
	out := make([]Result, 0, len(ps))
	for _, p := range ps {
		out = append(out, e.Check(p))
	}
	return out
}
