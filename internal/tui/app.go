package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"jsonlens/internal/tree"
)

type appModel struct {
	root    *tree.Node
	source  string
	parents map[*tree.Node]*tree.Node

	width  int
	height int

	rows     []row
	expanded map[*tree.Node]bool
	cursor   int
	scroll   int

	searching   bool
	searchInput textinput.Model
	matches     []*tree.Node
	matchIdx    int

	// detailFor is non-nil while the full-text view for a truncated string
	// is open.
	detailFor  *tree.Node
	detailView viewport.Model

	showHelp bool
	status   string
}

func newAppModel(root *tree.Node, source string) appModel {
	si := textinput.New()
	si.Prompt = "/"
	si.Placeholder = "search"
	si.CharLimit = 256

	expanded := map[*tree.Node]bool{}
	return appModel{
		root:        root,
		source:      source,
		parents:     parentIndex(root),
		rows:        flattenVisible(root, expanded),
		expanded:    expanded,
		searchInput: si,
	}
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detailView.Width = m.detailWidth()
		m.detailView.Height = m.detailHeight()
		m.adjustScroll()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.detailFor != nil {
			return m.updateDetail(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateTree(msg)
	}
	return m, nil
}

func (m appModel) updateTree(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "y" && msg.String() != "Y" {
		m.status = ""
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.adjustScroll()
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.adjustScroll()
		}

	case "g", "home":
		m.cursor = 0
		m.adjustScroll()

	case "G", "end":
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
			m.adjustScroll()
		}

	case "pgdown", "ctrl+f":
		m.moveCursor(m.contentHeight())

	case "pgup", "ctrl+b":
		m.moveCursor(-m.contentHeight())

	case "ctrl+d":
		m.moveCursor(m.contentHeight() / 2)

	case "ctrl+u":
		m.moveCursor(-m.contentHeight() / 2)

	case "p":
		m.jumpToParent()

	case "enter", " ":
		m.activateCursor()

	case "E":
		m.setExpandedAll(true)

	case "C":
		m.setExpandedAll(false)

	case "/":
		m.searching = true
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		m.matches = nil
		m.matchIdx = 0

	case "n":
		m.cycleMatch(1)

	case "N":
		m.cycleMatch(-1)

	case "y":
		m.yankPath()

	case "Y":
		m.yankValue()

	case "?":
		m.showHelp = true
	}

	return m, nil
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.matches = nil
		m.matchIdx = 0
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		if len(m.matches) > 0 {
			m.jumpToNode(m.matches[0])
			m.matchIdx = 0
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.matches = findMatches(m.root, m.searchInput.Value())
	return m, cmd
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "b", "esc", "q":
		m.detailFor = nil
		return m, nil
	}
	var cmd tea.Cmd
	m.detailView, cmd = m.detailView.Update(msg)
	return m, cmd
}

// activateCursor is the one interaction the data model prescribes: a node
// holding a truncated string opens the full-text view. Containers toggle
// expansion; other leaves do nothing.
func (m *appModel) activateCursor() {
	n := m.currentNode()
	if n == nil {
		return
	}
	if n.FullValue != "" {
		m.openDetail(n)
		return
	}
	if len(n.Children) > 0 {
		m.expanded[n] = !m.expanded[n]
		m.reflatten()
	}
}

func (m *appModel) openDetail(n *tree.Node) {
	m.detailFor = n
	m.detailView = viewport.New(m.detailWidth(), m.detailHeight())
	m.detailView.SetContent(wrapText(n.FullValue, m.detailWidth()))
}

func (m *appModel) setExpandedAll(open bool) {
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		if len(n.Children) > 0 {
			m.expanded[n] = open
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, c := range m.root.Children {
		walk(c)
	}
	m.reflatten()
}

func (m *appModel) jumpToParent() {
	n := m.currentNode()
	if n == nil {
		return
	}
	parent := m.parents[n]
	if parent == nil || parent == m.root {
		return
	}
	m.jumpToNode(parent)
}

func (m *appModel) cycleMatch(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.matchIdx = (m.matchIdx + delta + len(m.matches)) % len(m.matches)
	m.jumpToNode(m.matches[m.matchIdx])
}

// jumpToNode expands the ancestors of n so it becomes visible, then moves
// the cursor to it.
func (m *appModel) jumpToNode(n *tree.Node) {
	for p := m.parents[n]; p != nil && p != m.root; p = m.parents[p] {
		m.expanded[p] = true
	}
	m.reflatten()
	for i, r := range m.rows {
		if r.node == n {
			m.cursor = i
			break
		}
	}
	m.adjustScroll()
}

func (m *appModel) yankPath() {
	n := m.currentNode()
	if n == nil {
		return
	}
	if err := copyToClipboard(n.Path); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied " + n.Path
}

func (m *appModel) yankValue() {
	n := m.currentNode()
	if n == nil {
		return
	}
	text := n.FullValue
	if text == "" {
		text = n.Label
	}
	if err := copyToClipboard(text); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied value"
}

func (m *appModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustScroll()
}

func (m *appModel) reflatten() {
	cur := m.currentNode()
	m.rows = flattenVisible(m.root, m.expanded)
	if cur != nil {
		for i, r := range m.rows {
			if r.node == cur {
				m.cursor = i
				break
			}
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustScroll()
}

func (m *appModel) adjustScroll() {
	h := m.contentHeight()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+h {
		m.scroll = m.cursor - h + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m appModel) currentNode() *tree.Node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].node
}

// contentHeight is the number of tree rows that fit between the header and
// the status bar (plus the search line while it is open).
func (m appModel) contentHeight() int {
	h := m.height - 2
	if m.searching {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m appModel) detailWidth() int {
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	return w
}

func (m appModel) detailHeight() int {
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	return h
}

// findMatches collects every node (visible or not) whose label contains the
// query, case-insensitively, in tree order.
func findMatches(root *tree.Node, query string) []*tree.Node {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []*tree.Node
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		if strings.Contains(strings.ToLower(n.Label), query) {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, c := range root.Children {
		walk(c)
	}
	return out
}

func wrapText(s string, width int) string {
	if width < 1 {
		return s
	}
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		r := []rune(line)
		for len(r) > width {
			b.WriteString(string(r[:width]))
			b.WriteByte('\n')
			r = r[width:]
		}
		b.WriteString(string(r))
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m appModel) positionInfo() string {
	if len(m.rows) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", m.cursor+1, len(m.rows))
}
