package conlog

import (
	"os"

	"golang.org/x/term"
)

// colorEnabled decides once per output whether color tokens are written to it.
func colorEnabled(mode ColorMode, out OutType) bool {
	switch normColor(mode) {
	case COLOR_ALWAYS:
		return true
	case COLOR_NEVER:
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	f, ok := out.(*os.File)
	if !ok || f == nil || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return enableVirtualTerminal(f)
}

// colorToken returns the opening color sequence for a level or "" for
// untinted levels.
func colorToken(level LogLevel) string {
	code := LevelColors[normLevel(level)]
	if code == "" {
		return ""
	}
	return ANSI_COL_PRFX + code + ANSI_COL_SUFX
}
