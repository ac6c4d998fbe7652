//go:build !windows

package cli

// terminals outside windows already speak ANSI
func EnableANSI() {}
