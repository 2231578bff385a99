package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/nxcube"
)

const outlineWidth = 60

// Section is one annotation and the moves emitted under it.
type Section struct {
	Text  string
	Level int
	Moves []nxcube.Move
}

// Sections groups a step sequence by annotation. Moves emitted before the
// first annotation land in an untitled section.
func Sections(steps []nxcube.Step) []Section {
	var out []Section
	for _, st := range steps {
		switch st := st.(type) {
		case nxcube.Annotation:
			out = append(out, Section{Text: st.Text, Level: st.Level})
		case nxcube.Move:
			if len(out) == 0 {
				out = append(out, Section{})
			}
			last := &out[len(out)-1]
			last.Moves = append(last.Moves, st)
		}
	}
	return out
}

// Outline renders steps as a nested outline: level-1 annotations as
// headings, level-2 annotations indented beneath, each followed by its
// moves. Empty sub-steps are dropped.
func Outline(steps []nxcube.Step, styled bool) string {
	paint := func(st lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return st.Render(text)
	}

	var b strings.Builder
	for _, sec := range Sections(steps) {
		if sec.Level > 1 && len(sec.Moves) == 0 {
			continue
		}

		indent := ""
		if sec.Level > 1 {
			indent = strings.Repeat("  ", sec.Level-1)
		}

		if sec.Text != "" {
			heading := sec.Text
			if len(sec.Moves) > 0 {
				heading = fmt.Sprintf("%s (%d)", sec.Text, len(sec.Moves))
			}
			st := StatusStyle
			if sec.Level <= 1 {
				st = PhaseStyle
			}
			b.WriteString(indent + paint(st, heading) + "\n")
		}

		for _, line := range WrapMoves(sec.Moves, outlineWidth) {
			b.WriteString(indent + "  " + paint(MoveStyle, line) + "\n")
		}
	}
	return b.String()
}
