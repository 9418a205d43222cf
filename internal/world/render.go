package world

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	frameStyle = lipgloss.NewStyle().Faint(true)
	agentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dirtStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	statsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// glyph maps a facing to its one-character display form.
func glyph(f Facing) string {
	switch f {
	case North:
		return "^"
	case South:
		return "v"
	case East:
		return ">"
	case West:
		return "<"
	default:
		return "?"
	}
}

// Render draws the grid as text: one 3-wide cell per column, the agent
// shown as an arrow in its facing, dirt as an asterisk.
func (g *GridWorld) Render() string {
	var b strings.Builder

	rule := strings.Repeat("=", g.width*4+1)
	divider := strings.Repeat("-", g.width*4+1)

	b.WriteString(frameStyle.Render(rule))
	b.WriteByte('\n')
	for y := 0; y < g.height; y++ {
		b.WriteString(frameStyle.Render("|"))
		for x := 0; x < g.width; x++ {
			switch {
			case x == g.agentX && y == g.agentY:
				b.WriteString(agentStyle.Render(" " + glyph(g.facing) + " "))
			case g.HasDirt(x, y):
				b.WriteString(dirtStyle.Render(" * "))
			default:
				b.WriteString("   ")
			}
			b.WriteString(frameStyle.Render("|"))
		}
		b.WriteByte('\n')
		b.WriteString(frameStyle.Render(divider))
		b.WriteByte('\n')
	}

	b.WriteString(statsStyle.Render(fmt.Sprintf("Agent: (%d, %d) facing %s", g.agentX, g.agentY, g.facing)))
	b.WriteByte('\n')
	b.WriteString(statsStyle.Render(fmt.Sprintf("Dirt remaining: %d cells", g.DirtCount())))
	b.WriteByte('\n')
	b.WriteString(frameStyle.Render(rule))
	b.WriteByte('\n')
	return b.String()
}
