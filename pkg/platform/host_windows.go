//go:build windows

package platform

func newHost() Profile {
	return NewWindows()
}
