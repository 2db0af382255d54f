// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"
)

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e5484d"))

// IsTerminal reports whether w is a terminal. Anything that is not an
// *os.File is not.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorEnabled resolves the --color setting. An explicit flag wins;
// otherwise color is on when w is a terminal and NO_COLOR is unset.
func ColorEnabled(flag, flagSet bool, w io.Writer) bool {
	if flagSet {
		return flag
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(w)
}

// FormatError renders a fatal error line, red and bold when color is on.
func FormatError(err error, color bool) string {
	return render(errorStyle, color, "ERROR. "+err.Error())
}
