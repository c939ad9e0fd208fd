//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package term

// IsTerminal always returns false; colour must be requested explicitly.
func IsTerminal(fd uintptr) bool {
	return false
}
