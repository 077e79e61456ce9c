package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// unlockModel asks for the master password of an existing database, or for
// a new password twice when the database is being created.
type unlockModel struct {
	path       string
	create     bool
	inputs     []textinput.Model
	focus      int
	err        string
	submitting bool
	spinner    spinner.Model
}

func newUnlockModel(path string, create bool) unlockModel {
	count := 1
	if create {
		count = 2
	}

	inputs := make([]textinput.Model, count)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
	}
	inputs[0].Placeholder = "master password"
	if create {
		inputs[1].Placeholder = "repeat password"
	}
	inputs[0].Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return unlockModel{path: path, create: create, inputs: inputs, spinner: s}
}

func (m *unlockModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *unlockModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m unlockModel) lastFocused() bool {
	return m.focus == len(m.inputs)-1
}

func (m unlockModel) password() string {
	return m.inputs[0].Value()
}

func (m unlockModel) confirmed() bool {
	return !m.create || m.inputs[0].Value() == m.inputs[1].Value()
}

// reset drops the typed passwords and moves focus back to the first field.
func (m *unlockModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m unlockModel) View() string {
	title := "UNLOCK DATABASE"
	if m.create {
		title = "NEW DATABASE"
	}

	var b strings.Builder
	b.WriteString("File: ")
	b.WriteString(m.path)
	b.WriteString("\n\n")
	b.WriteString("Password: [" + m.inputs[0].View() + "]\n")
	if m.create {
		b.WriteString("Repeat:   [" + m.inputs[1].View() + "]\n")
	}
	if m.submitting {
		b.WriteString("\n" + m.spinner.View() + " Deriving key...\n")
	}
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	hotKeys := "enter: open  esc: quit"
	if m.create {
		hotKeys = "tab: next field  enter: create  esc: quit"
	}
	return renderPage(title, b.String(), hotKeys)
}
