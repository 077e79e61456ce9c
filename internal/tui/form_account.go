package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldUser
	fieldPassword
	fieldURL
	fieldNotes

	formFieldCount
)

// formAccountModel edits a single account. The first four fields are single
// line inputs, notes is a multi-line area.
type formAccountModel struct {
	inputs     []textinput.Model
	notes      textarea.Model
	focus      int
	editing    bool
	oldName    string
	err        string
	submitting bool
}

func newFormAccountModel(item *models.Record) formAccountModel {
	inputs := make([]textinput.Model, fieldNotes)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'
	inputs[fieldName].Focus()

	notes := textarea.New()
	notes.ShowLineNumbers = false
	notes.SetWidth(42)
	notes.SetHeight(4)

	m := formAccountModel{inputs: inputs, notes: notes}
	if item == nil {
		return m
	}

	m.editing = true
	m.oldName = item.Name
	m.inputs[fieldName].SetValue(item.Name)
	m.inputs[fieldUser].SetValue(string(item.UserID))
	m.inputs[fieldPassword].SetValue(string(item.Secret))
	m.inputs[fieldURL].SetValue(string(item.URL))
	m.notes.SetValue(string(item.Notes))
	return m
}

func (m formAccountModel) record() models.Record {
	return models.NewRecordFromStrings(
		strings.TrimSpace(m.inputs[fieldName].Value()),
		m.inputs[fieldUser].Value(),
		m.inputs[fieldPassword].Value(),
		m.inputs[fieldURL].Value(),
		m.notes.Value(),
	)
}

func (m *formAccountModel) setFocus(i int) {
	if m.focus == fieldNotes {
		m.notes.Blur()
	} else {
		m.inputs[m.focus].Blur()
	}

	m.focus = (i + formFieldCount) % formFieldCount
	if m.focus == fieldNotes {
		m.notes.Focus()
	} else {
		m.inputs[m.focus].Focus()
	}
}

func (m *formAccountModel) focusNext() { m.setFocus(m.focus + 1) }

func (m *formAccountModel) focusPrev() { m.setFocus(m.focus - 1) }

func (m formAccountModel) updateFocused(msg tea.Msg) (formAccountModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == fieldNotes {
		m.notes, cmd = m.notes.Update(msg)
	} else {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

// wipe clears every input so no secret outlives the form. A form that was
// never opened has nothing to clear.
func (m *formAccountModel) wipe() {
	if m.inputs == nil {
		return
	}
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.notes.SetValue("")
}

func (m formAccountModel) View() string {
	title := "NEW ACCOUNT"
	if m.editing {
		title = "EDIT: " + m.oldName
	}

	var b strings.Builder
	b.WriteString("Name:     [" + m.inputs[fieldName].View() + "]\n")
	b.WriteString("User:     [" + m.inputs[fieldUser].View() + "]\n")
	b.WriteString("Password: [" + m.inputs[fieldPassword].View() + "]\n")
	b.WriteString("URL:      [" + m.inputs[fieldURL].View() + "]\n")
	b.WriteString("Notes:\n")
	b.WriteString(m.notes.View())
	b.WriteString("\n")
	if m.submitting {
		b.WriteString("\nSaving...\n")
	}
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	return renderPage(title, b.String(), "tab: next field  ctrl+s: save  esc: cancel")
}
