// Package render draws arrangements and solver output for the terminal.
package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/SeamusWaldron/nxcube"
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	PhaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	MoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// facelet backgrounds, indexed by nxcube.Color
var faceletStyles = [6]lipgloss.Style{
	lipgloss.NewStyle().Background(lipgloss.Color("160")), // red
	lipgloss.NewStyle().Background(lipgloss.Color("208")), // orange
	lipgloss.NewStyle().Background(lipgloss.Color("255")), // white
	lipgloss.NewStyle().Background(lipgloss.Color("226")), // yellow
	lipgloss.NewStyle().Background(lipgloss.Color("34")),  // green
	lipgloss.NewStyle().Background(lipgloss.Color("27")),  // blue
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Interactive reports whether both stdin and stdout are terminals.
func Interactive() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}

// Net draws a as an unfolded net. With color set each facelet is a colored
// block, otherwise its color letter.
//
//	  U
//	L F R B
//	  D
func Net(a *nxcube.Arrangement, color bool) string {
	if !color {
		return a.String()
	}

	n := a.Degree()
	pad := strings.Repeat("  ", n)
	var b strings.Builder

	row := func(s nxcube.Side, r int) {
		for c := 0; c < n; c++ {
			b.WriteString(cell(a.Facelet(s, r*n+c)))
		}
	}

	for r := 0; r < n; r++ {
		b.WriteString(pad)
		row(nxcube.Up, r)
		b.WriteByte('\n')
	}
	for r := 0; r < n; r++ {
		for _, s := range []nxcube.Side{nxcube.Left, nxcube.Front, nxcube.Right, nxcube.Back} {
			row(s, r)
		}
		b.WriteByte('\n')
	}
	for r := 0; r < n; r++ {
		b.WriteString(pad)
		row(nxcube.Down, r)
		b.WriteByte('\n')
	}
	return b.String()
}

func cell(c nxcube.Color) string {
	if int(c) >= len(faceletStyles) {
		return "??"
	}
	return faceletStyles[c].Render("  ")
}

// WrapMoves joins move notation into lines of at most width characters.
func WrapMoves(moves []nxcube.Move, width int) []string {
	var lines []string
	var line string
	for _, m := range moves {
		tok := m.String()
		switch {
		case line == "":
			line = tok
		case len(line)+len(tok)+1 > width:
			lines = append(lines, line)
			line = tok
		default:
			line += " " + tok
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
