package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

type palette struct {
	negative lipgloss.Style
	curve    lipgloss.Style
	muted    lipgloss.Style
}

func newPalette(w io.Writer, color bool) palette {
	renderer := lipgloss.NewRenderer(w)
	if color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return palette{
		negative: renderer.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
		curve:    renderer.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		muted:    renderer.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
	}
}

// ShouldUseColor reports whether w is a terminal that accepts colored output.
// NO_COLOR always wins over force.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// TerminalWidth returns the width of w when it is a terminal, or fallback.
func TerminalWidth(w io.Writer, fallback int) int {
	file, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
