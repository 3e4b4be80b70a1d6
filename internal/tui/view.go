package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"jsonlens/internal/tree"
)

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')

	switch {
	case m.showHelp:
		b.WriteString(m.renderHelp())
	case m.detailFor != nil:
		b.WriteString(m.renderDetail())
	default:
		b.WriteString(m.renderTree())
	}

	b.WriteByte('\n')
	if m.searching {
		b.WriteString(m.searchInput.View())
		b.WriteByte('\n')
	}
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m appModel) renderHeader() string {
	title := fmt.Sprintf(" jsonlens — %s (%d documents)", m.source, len(m.root.Children))
	st := lipgloss.NewStyle().
		Background(colorHeaderBg).
		Foreground(colorHeaderFg).
		Bold(true).
		Width(m.width)
	return st.Render(clipLine(title, m.width))
}

func (m appModel) renderTree() string {
	if len(m.rows) == 0 {
		empty := styleMuted().Italic(true).Render("No data")
		return padLines(empty, m.contentHeight())
	}

	h := m.contentHeight()
	end := m.scroll + h
	if end > len(m.rows) {
		end = len(m.rows)
	}

	lines := make([]string, 0, h)
	for i := m.scroll; i < end; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.cursor))
	}
	return padLines(strings.Join(lines, "\n"), h)
}

func (m appModel) renderRow(r row, selected bool) string {
	twisty := glyphTwistyLeaf()
	if len(r.node.Children) > 0 {
		if m.expanded[r.node] {
			twisty = glyphTwistyExpanded()
		} else {
			twisty = glyphTwistyCollapsed()
		}
	}

	label := singleLine(r.node.Label)
	line := strings.Repeat("  ", r.depth) + twisty + " " + label

	if selected {
		return lipgloss.NewStyle().
			Background(colorSelectedBg).
			Foreground(colorSelectedFg).
			Bold(true).
			Width(m.width).
			Render(clipLine(line, m.width))
	}

	st := lipgloss.NewStyle().Foreground(kindColor(r.node.Kind))
	return st.Render(clipLine(line, m.width))
}

func kindColor(k tree.Kind) lipgloss.TerminalColor {
	switch k {
	case tree.KindString:
		return colorStringFg
	case tree.KindNumber:
		return colorNumberFg
	case tree.KindBool, tree.KindNull:
		return colorBoolFg
	case tree.KindError:
		return colorErrorFg
	default:
		return colorKeyFg
	}
}

func (m appModel) renderDetail() string {
	title := styleMuted().Render(" Full text — press 'b' or esc to go back")
	body := m.detailView.View()
	return padLines(title+"\n"+body, m.contentHeight())
}

func (m appModel) renderStatus() string {
	n := m.currentNode()
	path := ""
	if n != nil {
		path = n.Path
	}
	left := " " + m.positionInfo()
	if path != "" {
		left += "  " + path
	}
	if m.status != "" {
		left += "  |  " + m.status
	}
	if m.detailFor == nil && m.status == "" && !m.searching {
		left += "  |  enter: expand/detail  /: search  y: path  ?: help  q: quit"
	}
	return styleMuted().Width(m.width).Render(clipLine(left, m.width))
}

func (m appModel) renderHelp() string {
	help := strings.TrimSpace(`
 Keys

 up/k, down/j     move
 g/G              first / last row
 pgup/pgdn        page up / down
 ctrl+u/ctrl+d    half page up / down
 p                jump to parent
 enter, space     expand/collapse; open full text on truncated strings
 E / C            expand all / collapse all
 /                search labels (enter to confirm, esc to cancel)
 n / N            next / previous search match
 y / Y            copy node path / node value
 b, esc           leave the full-text view
 ?                toggle this help
 q, ctrl+c        quit
`)
	return padLines(help, m.contentHeight())
}

// clipLine truncates a rendered line to the terminal width, ANSI-aware, so
// styled rows never wrap and break the layout.
func clipLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	return xansi.Cut(s, 0, width-1) + glyphEllipsis()
}

// singleLine keeps labels on one physical row; previews of strings with
// embedded newlines or tabs would otherwise break the flattened layout.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return s
}

// padLines pads body with blank lines up to height rows so the status bar
// stays pinned to the bottom of the screen.
func padLines(body string, height int) string {
	lines := strings.Split(body, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
