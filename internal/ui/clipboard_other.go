//go:build !linux && !freebsd && !netbsd && !openbsd && !windows

package ui

// readClipboard is a no-op on platforms without a clipboard backend.
func readClipboard() string {
	return ""
}
