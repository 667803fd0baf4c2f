//go:build darwin

package main

import "golang.org/x/sys/unix"

// isTTY reports whether fd is attached to a terminal.
func isTTY(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TIOCGETA)
	return err == nil
}
