package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sakataka/tetris-game2-sub000/internal/tetris"
)

const blockRune = "██"

// cellStyles maps engine cell colors to lipgloss styles.
var cellStyles = map[tetris.Cell]lipgloss.Style{
	tetris.PieceI.Color(): lipgloss.NewStyle().Foreground(lipgloss.Color("14")),  // bright cyan
	tetris.PieceO.Color(): lipgloss.NewStyle().Foreground(lipgloss.Color("11")),  // bright yellow
	tetris.PieceT.Color(): lipgloss.NewStyle().Foreground(lipgloss.Color("13")),  // bright magenta
	tetris.PieceS.Color(): lipgloss.NewStyle().Foreground(lipgloss.Color("10")),  // bright green
	tetris.PieceZ.Color(): lipgloss.NewStyle().Foreground(lipgloss.Color("9")),   // bright red
	tetris.PieceJ.Color(): lipgloss.NewStyle().Foreground(lipgloss.Color("12")),  // bright blue
	tetris.PieceL.Color(): lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // orange
}

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	ghostStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	spinStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// render draws the full frame: playfield, side panels, and help bar.
func (m Model) render() string {
	board := boardStyle.Render(renderBoard(m.game))
	side := m.renderSidebar()

	frame := lipgloss.JoinHorizontal(lipgloss.Top, board, " ", side)
	frame += "\n" + helpStyle.Render(m.help.View(m.keys))

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, frame)
	}
	return frame
}

// renderBoard draws the stack, the ghost outline, and the active piece.
func renderBoard(g tetris.Game) string {
	w, h := g.Board.Width(), g.Board.Height()

	// Active piece cells and ghost cells keyed by position.
	active := make(map[tetris.Point]tetris.Cell)
	ghost := make(map[tetris.Point]bool)
	if g.Current != nil {
		if gp := g.GhostPosition(); gp != nil {
			shadow := *g.Current
			shadow.X, shadow.Y = gp.X, gp.Y
			for _, p := range shadow.Cells() {
				ghost[p] = true
			}
		}
		for _, p := range g.Current.Cells() {
			active[p] = g.Current.Type.Color()
		}
	}

	var sb strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < w; x++ {
			pt := tetris.Point{X: x, Y: y}
			switch {
			case active[pt] != 0:
				sb.WriteString(cellStyles[active[pt]].Render(blockRune))
			case g.Board.Cell(x, y) != 0:
				sb.WriteString(cellStyles[g.Board.Cell(x, y)].Render(blockRune))
			case ghost[pt]:
				sb.WriteString(ghostStyle.Render("░░"))
			default:
				sb.WriteString("  ")
			}
		}
	}
	return sb.String()
}

// renderSidebar draws hold, next, the score panel, and status banners.
func (m Model) renderSidebar() string {
	g := m.game

	hold := panelStyle.Render("Hold\n" + renderMiniShape(g.Held))
	next := panelStyle.Render("Next\n" + renderMiniShape(g.Next))

	var hud strings.Builder
	hud.WriteString(labelStyle.Render("Score") + "\n")
	hud.WriteString(valueStyle.Render(fmt.Sprintf("%d", g.Score)) + "\n")
	hud.WriteString(labelStyle.Render("Lines") + "\n")
	hud.WriteString(valueStyle.Render(fmt.Sprintf("%d", g.Lines)) + "\n")
	hud.WriteString(labelStyle.Render("Level") + "\n")
	hud.WriteString(valueStyle.Render(fmt.Sprintf("%d", g.Level)))
	stats := panelStyle.Render(hud.String())

	parts := []string{hold, next, stats}

	if callout := spinCallout(g.LastLock); callout != "" {
		parts = append(parts, spinStyle.Render(callout))
	}
	switch {
	case g.Over:
		parts = append(parts, bannerStyle.Render("GAME OVER"), labelStyle.Render("r to restart"))
	case g.Paused:
		parts = append(parts, bannerStyle.Render("PAUSED"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderMiniShape draws a piece preview in a 4x2 cell box.
func renderMiniShape(t tetris.PieceType) string {
	if t == tetris.PieceNone {
		return "        \n        "
	}
	shape := tetris.ShapeOf(t, 0)
	style := cellStyles[t.Color()]

	// Trim to the two rows every spawn shape occupies.
	rows := make([]string, 0, 2)
	for _, row := range shape {
		filled := false
		var sb strings.Builder
		for _, v := range row {
			if v != 0 {
				filled = true
				sb.WriteString(style.Render(blockRune))
			} else {
				sb.WriteString("  ")
			}
		}
		if filled {
			rows = append(rows, sb.String())
		}
	}
	for len(rows) < 2 {
		rows = append(rows, "        ")
	}
	return strings.Join(rows, "\n")
}

// spinCallout names the spin recorded by the most recent lock.
func spinCallout(lock *tetris.LockResult) string {
	if lock == nil {
		return ""
	}
	switch lock.Spin.Spin {
	case tetris.SpinNormal:
		return "T-SPIN!"
	case tetris.SpinMini:
		return "T-SPIN MINI"
	default:
		return ""
	}
}
