package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

const statusTimeout = 3 * time.Second

type screen int

const (
	screenUnlock screen = iota
	screenList
	screenDetail
	screenForm
)

// appModel routes input between the unlock, list, detail and form screens
// and the confirm, error and about overlays. Reads go to the open session
// directly; anything that writes the database file runs as a tea.Cmd.
type appModel struct {
	ctx       context.Context
	vault     service.VaultService
	clipboard clipboard.Clipboard
	buildInfo models.AppBuildInfo

	currentScreen screen
	unlock        unlockModel
	list          listModel
	detail        detailModel
	form          formAccountModel

	showConfirm   bool
	confirm       confirmModel
	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool

	quitByUser bool
}

func newAppModel(ctx context.Context, vault service.VaultService, clip clipboard.Clipboard,
	buildInfo models.AppBuildInfo, path string, create bool) appModel {
	m := appModel{
		ctx:           ctx,
		vault:         vault,
		clipboard:     clip,
		buildInfo:     buildInfo,
		currentScreen: screenUnlock,
		unlock:        newUnlockModel(path, create),
		list:          newListModel(),
	}
	if !create && vault.IsOpen() && vault.Path() == path {
		m.currentScreen = screenList
		m.reloadList("")
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		return m.updateKey(msg)
	case unlockDoneMsg:
		m.unlock.submitting = false
		m.unlock.reset()
		if msg.err != nil {
			m.unlock.err = humanizeError(msg.err)
			return m, nil
		}
		m.unlock.err = ""
		m.currentScreen = screenList
		m.reloadList("")
		return m, nil
	case accountSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.err = humanizeError(msg.err)
			return m, nil
		}
		m.form.wipe()
		m.detail.close()
		m.currentScreen = screenList
		m.reloadList(msg.name)
		return m, m.setStatus("Saved " + msg.name)
	case accountDeletedMsg:
		if msg.err != nil {
			m.openError(msg.err)
			return m, nil
		}
		m.detail.close()
		m.currentScreen = screenList
		m.reloadList("")
		return m, m.setStatus("Deleted " + msg.name)
	case copiedMsg:
		if msg.err != nil {
			m.openError(msg.err)
			return m, nil
		}
		text := "Copied " + msg.what
		if d := clipboardClearAfter(m.clipboard); d > 0 {
			text += ", clears in " + d.String()
		}
		return m, m.setStatus(text)
	case clearStatusMsg:
		m.list.status = ""
		m.detail.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.unlock.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.unlock.spinner, cmd = m.unlock.spinner.Update(msg)
		return m, cmd
	}

	if m.currentScreen == screenForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.updateFocused(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.showError:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.showError = false
		}
		return m, nil
	case m.showConfirm:
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			return m, m.cmdDelete(m.confirm.name)
		case key.Matches(msg, keys.no):
			m.showConfirm = false
		}
		return m, nil
	case m.showBuildInfo:
		if key.Matches(msg, keys.esc, keys.about) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenUnlock:
		return m.updateUnlock(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}
	return m, nil
}

func (m appModel) updateUnlock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.unlock.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m.quit()
	case key.Matches(msg, keys.tab):
		m.unlock.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.unlock.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if !m.unlock.lastFocused() {
			m.unlock.focusNext()
			return m, nil
		}
		if !m.unlock.confirmed() {
			m.unlock.err = app.MsgPasswordsDoNotMatch
			m.unlock.reset()
			return m, nil
		}
		m.unlock.submitting = true
		m.unlock.err = ""
		return m, tea.Batch(
			m.cmdUnlock(m.unlock.path, []byte(m.unlock.password()), m.unlock.create),
			m.unlock.spinner.Tick,
		)
	}

	var cmd tea.Cmd
	m.unlock.inputs[m.unlock.focus], cmd = m.unlock.inputs[m.unlock.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.filtering {
		switch {
		case key.Matches(msg, keys.esc):
			m.list.filtering = false
			m.list.filter.Blur()
			m.list.filter.SetValue("")
			m.reloadList("")
			return m, nil
		case key.Matches(msg, keys.enter):
			m.list.filtering = false
			m.list.filter.Blur()
			return m, nil
		case msg.Type == tea.KeyUp:
			m.list.moveUp()
			return m, nil
		case msg.Type == tea.KeyDown:
			m.list.moveDown()
			return m, nil
		}

		before := m.list.filter.Value()
		var cmd tea.Cmd
		m.list.filter, cmd = m.list.filter.Update(msg)
		if m.list.filter.Value() != before {
			m.reloadList("")
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m.quit()
	case key.Matches(msg, keys.up):
		m.list.moveUp()
	case key.Matches(msg, keys.down):
		m.list.moveDown()
	case key.Matches(msg, keys.filter):
		m.list.filtering = true
		return m, m.list.filter.Focus()
	case key.Matches(msg, keys.esc):
		if m.list.filter.Value() != "" {
			m.list.filter.SetValue("")
			m.reloadList("")
		}
	case key.Matches(msg, keys.about):
		m.showBuildInfo = true
	case key.Matches(msg, keys.newItem):
		m.form = newFormAccountModel(nil)
		m.currentScreen = screenForm
	case key.Matches(msg, keys.enter):
		rec, ok := m.selectedAccount()
		if !ok {
			return m, nil
		}
		m.detail = newDetailModel(rec)
		m.currentScreen = screenDetail
	case key.Matches(msg, keys.edit):
		rec, ok := m.selectedAccount()
		if !ok {
			return m, nil
		}
		m.form = newFormAccountModel(&rec)
		rec.Wipe()
		m.currentScreen = screenForm
	case key.Matches(msg, keys.delete):
		if name, ok := m.list.current(); ok {
			m.confirm = confirmModel{name: name}
			m.showConfirm = true
		}
	case key.Matches(msg, keys.copy), key.Matches(msg, keys.copyUser):
		rec, ok := m.selectedAccount()
		if !ok {
			return m, nil
		}
		cmd := m.copyField(rec, key.Matches(msg, keys.copyUser))
		rec.Wipe()
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.detail.close()
		m.currentScreen = screenList
	case key.Matches(msg, keys.quit):
		return m.quit()
	case key.Matches(msg, keys.reveal):
		m.detail.reveal = !m.detail.reveal
	case key.Matches(msg, keys.copy):
		return m, m.copyField(m.detail.item, false)
	case key.Matches(msg, keys.copyUser):
		return m, m.copyField(m.detail.item, true)
	case key.Matches(msg, keys.edit):
		item := m.detail.item
		m.form = newFormAccountModel(&item)
		m.currentScreen = screenForm
	case key.Matches(msg, keys.delete):
		m.confirm = confirmModel{name: m.detail.item.Name}
		m.showConfirm = true
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.form.wipe()
		if m.detail.item.Name != "" {
			m.currentScreen = screenDetail
		} else {
			m.currentScreen = screenList
		}
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.save):
		return m.submitForm()
	case key.Matches(msg, keys.enter) && m.form.focus != fieldNotes:
		if m.form.focus == fieldURL {
			return m.submitForm()
		}
		m.form.focusNext()
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.updateFocused(msg)
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	rec := m.form.record()
	if rec.Name == "" {
		m.form.err = "name is required"
		return m, nil
	}
	m.form.err = ""
	m.form.submitting = true
	return m, m.cmdSave(m.form.editing, m.form.oldName, rec)
}

// selectedAccount loads the account under the cursor. The caller owns the
// returned record and must wipe it.
func (m *appModel) selectedAccount() (models.Record, bool) {
	name, ok := m.list.current()
	if !ok {
		return models.Record{}, false
	}
	rec, err := m.vault.Account(name)
	if err != nil {
		m.openError(err)
		return models.Record{}, false
	}
	return rec, true
}

// reloadList refreshes names with the current filter, keeping the cursor on
// selected, or on the previously selected name when selected is empty.
func (m *appModel) reloadList(selected string) {
	if selected == "" {
		selected, _ = m.list.current()
	}
	names, err := m.vault.Accounts(m.list.filter.Value())
	if err != nil {
		m.openError(err)
		return
	}
	m.list.setNames(names, selected)
}

func (m *appModel) openError(err error) {
	m.errorOverlay = errorOverlayModel{message: humanizeError(err)}
	m.showError = true
}

func (m *appModel) setStatus(text string) tea.Cmd {
	m.list.status = text
	m.detail.status = text
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.quitByUser = true
	m.detail.close()
	m.form.wipe()
	return m, tea.Quit
}

func (m appModel) copyField(rec models.Record, user bool) tea.Cmd {
	if user {
		return m.cmdCopy(string(rec.UserID), "user")
	}
	return m.cmdCopy(string(rec.Secret), "password")
}

func (m appModel) cmdUnlock(path string, password []byte, create bool) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		defer clear(password)
		if create {
			return unlockDoneMsg{err: vault.Create(ctx, path, password)}
		}
		return unlockDoneMsg{err: vault.Open(ctx, path, password)}
	}
}

func (m appModel) cmdSave(editing bool, oldName string, rec models.Record) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		var err error
		if editing {
			err = vault.UpdateAccount(ctx, oldName, rec)
		} else {
			err = vault.AddAccount(ctx, rec)
		}
		return accountSavedMsg{name: rec.Name, err: err}
	}
}

func (m appModel) cmdDelete(name string) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		return accountDeletedMsg{name: name, err: vault.DeleteAccount(ctx, name)}
	}
}

func (m appModel) cmdCopy(text, what string) tea.Cmd {
	clip := m.clipboard
	return func() tea.Msg {
		return copiedMsg{what: what, err: clip.Copy(text)}
	}
}

func clipboardClearAfter(c clipboard.Clipboard) time.Duration {
	if timed, ok := c.(interface{ ClearAfter() time.Duration }); ok {
		return timed.ClearAfter()
	}
	return 0
}

func (m appModel) View() string {
	switch {
	case m.showError:
		return m.errorOverlay.View()
	case m.showConfirm:
		return m.confirm.View()
	case m.showBuildInfo:
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.currentScreen {
	case screenList:
		return m.list.View(m.vault.Path())
	case screenDetail:
		return m.detail.View()
	case screenForm:
		return m.form.View()
	default:
		return m.unlock.View()
	}
}
