package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"leadboard/pkg/contacts"
)

const messageExcerptLen = 32

// refreshView reruns the derived-view pipeline from scratch and feeds the
// resulting page into the table. Called after every change to a pipeline
// input: record list, search term, status filter, sort config or page.
func (m *Model) refreshView() {
	view := contacts.VisiblePage(
		m.store.All(),
		m.searchTerm,
		m.statusFilter,
		m.sortConfig,
		m.page,
		m.config.PageSize,
	)

	m.page = view.PageNumber
	m.view = view

	if view.Filtered > 0 {
		m.pager.SetTotalPages(view.Filtered)
		m.pager.Page = view.PageNumber - 1
	} else {
		m.pager.TotalPages = 1
		m.pager.Page = 0
	}

	rows := make([]table.Row, 0, len(view.Page))
	for _, c := range view.Page {
		message := c.Message
		if message != "" && !m.expanded[c.ID] {
			message = truncate(message, messageExcerptLen)
		}

		rows = append(rows, table.Row{
			displayValue(c.Name),
			displayValue(c.Email),
			displayValue(c.Phone),
			m.formatDate(c.Date),
			string(c.Status),
			fmt.Sprintf("%d", len(c.Reminders)),
			displayValue(message),
		})
	}
	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// selectedContact resolves the table cursor to the backing store record.
func (m *Model) selectedContact() *contacts.Contact {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.view.Page) {
		return nil
	}
	c, ok := m.store.Get(m.view.Page[cursor].ID)
	if !ok {
		return nil
	}
	return c
}

// canSubmitReminder mirrors the mutation-layer precondition so the form
// can disable submit instead of surfacing an error.
func (m *Model) canSubmitReminder() bool {
	return strings.TrimSpace(m.dateInput.Value()) != "" &&
		strings.TrimSpace(m.timeInput.Value()) != ""
}

// submitReminder appends the reminder and closes the modal. A rejected
// submission (missing date or time) leaves the form open and mutates
// nothing; no error is shown.
func (m *Model) submitReminder() {
	_, err := m.store.AddReminder(
		m.selectedID,
		m.dateInput.Value(),
		m.timeInput.Value(),
		m.noteInput.Value(),
	)
	if err != nil {
		m.logger.Debug("reminder rejected", "error", err)
		return
	}

	m.mode = NormalMode
	m.resetReminderInputs()
	m.selectedID = ""
	m.refreshView()
}

// focusNextInput cycles through the reminder form inputs
func (m *Model) focusNextInput() {
	m.activeInput = (m.activeInput + 1) % 3
	m.applyInputFocus()
}

// focusPreviousInput cycles through the reminder form inputs
func (m *Model) focusPreviousInput() {
	m.activeInput = (m.activeInput + 2) % 3
	m.applyInputFocus()
}

func (m *Model) applyInputFocus() {
	switch m.activeInput {
	case 0:
		m.dateInput.Focus()
		m.timeInput.Blur()
		m.noteInput.Blur()
	case 1:
		m.dateInput.Blur()
		m.timeInput.Focus()
		m.noteInput.Blur()
	case 2:
		m.dateInput.Blur()
		m.timeInput.Blur()
		m.noteInput.Focus()
	}
}

// displayValue substitutes the placeholder for absent fields. Absence
// only surfaces here, never in the data model.
func displayValue(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// formatDate renders a submission timestamp for the table. Raw values
// that match no known layout are shown as-is.
func (m *Model) formatDate(raw string) string {
	if raw == "" {
		return "N/A"
	}
	t, ok := contacts.ParseDate(raw)
	if !ok {
		return raw
	}
	return t.Format("Jan 02 2006 15:04")
}

// truncate shortens s to n runes with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// statusStyle colors a status label.
func (m *Model) statusStyle(status contacts.Status) lipgloss.Style {
	switch status {
	case contacts.StatusCustomerWon:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.StatusWonColor))
	case contacts.StatusCustomerLost:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.StatusLostColor))
	case contacts.StatusNew:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.StatusNewColor))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor))
	}
}
