package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const listNameWidth = 48

type listModel struct {
	names     []string
	idx       int
	filter    textinput.Model
	filtering bool
	status    string
}

func newListModel() listModel {
	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.Prompt = "/ "
	filter.Width = 30
	return listModel{filter: filter}
}

func (m listModel) current() (string, bool) {
	if len(m.names) == 0 || m.idx < 0 || m.idx >= len(m.names) {
		return "", false
	}
	return m.names[m.idx], true
}

// setNames replaces the visible names and keeps the cursor on selected when
// it is still present.
func (m *listModel) setNames(names []string, selected string) {
	m.names = names
	m.idx = 0
	for i, name := range names {
		if name == selected {
			m.idx = i
			break
		}
	}
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.names)-1 {
		m.idx++
	}
}

func (m listModel) View(path string) string {
	var b strings.Builder

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.names) == 0 {
		if m.filter.Value() != "" {
			b.WriteString("No matching accounts\n")
		} else {
			b.WriteString("No accounts yet\n")
		}
	}
	for i, name := range m.names {
		line := "  " + fitText(name, listNameWidth)
		if i == m.idx {
			line = selectedStyle.Render("> " + fitText(name, listNameWidth))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	hotKeys := "enter: open  n: new  e: edit  d: delete  c: copy password  u: copy user  /: filter  v: about  q: quit"
	if m.filtering {
		hotKeys = "enter: apply  esc: clear filter"
	}
	title := fmt.Sprintf("ACCOUNTS (%d)  %s", len(m.names), path)
	return renderPage(title, b.String(), hotKeys)
}
