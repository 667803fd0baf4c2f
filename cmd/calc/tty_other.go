//go:build !linux && !darwin

package main

// isTTY is assumed on platforms without termios.
func isTTY(fd uintptr) bool {
	return true
}
