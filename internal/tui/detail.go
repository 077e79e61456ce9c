package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

const maskedSecret = "••••••••"

type detailModel struct {
	item   models.Record
	reveal bool
	status string
}

func newDetailModel(item models.Record) detailModel {
	return detailModel{item: item}
}

// close wipes the shown secret.
func (m *detailModel) close() {
	m.item.Wipe()
	m.item = models.Record{}
	m.reveal = false
	m.status = ""
}

func (m detailModel) View() string {
	secret := maskedSecret
	if m.reveal {
		secret = valueOrDash(m.item.Secret)
	}

	var b strings.Builder
	b.WriteString("User:     " + valueOrDash(m.item.UserID) + "\n")
	b.WriteString("Password: " + secret + "\n")
	b.WriteString("URL:      " + valueOrDash(m.item.URL) + "\n")
	b.WriteString("Notes:\n")
	for _, line := range strings.Split(valueOrDash(m.item.Notes), "\n") {
		b.WriteString("  " + line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	hotKeys := "space: show/hide  c: copy password  u: copy user  e: edit  d: delete  esc: back"
	return renderPage(m.item.Name, b.String(), hotKeys)
}
