//go:build !windows

package conlog

import "os"

// Terminals outside Windows understand ANSI sequences as is.
func enableVirtualTerminal(*os.File) bool {
	return true
}
