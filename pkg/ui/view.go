package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"leadboard/pkg/contacts"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		sb.WriteString(m.titleBar(" Leadboard — Campaign Submissions "))
		sb.WriteString("\n")

		if user := m.session.CurrentUser(); user != nil {
			signedIn := fmt.Sprintf("Signed in as %s", user.DisplayName())
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.MutedTextColor)).Render(signedIn))
		}
		sb.WriteString("\n\n")

		if m.loading {
			sb.WriteString(fmt.Sprintf("%s Loading submissions…\n\n", m.spinner.View()))
		}

		if m.loadErr != nil {
			banner := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
				Background(lipgloss.Color(m.styles.ErrorColor)).
				Padding(0, 1).
				Render(fmt.Sprintf(" %s ", m.loadErr.Error()))
			retry := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.MutedTextColor)).
				Render("  press ctrl+r to retry")
			sb.WriteString(banner + retry + "\n\n")
		}

		sb.WriteString(m.table.View())
		sb.WriteString("\n")
		sb.WriteString(m.statusLine())
		sb.WriteString("\n")
		if m.view.TotalPages > 1 {
			sb.WriteString(m.pager.View())
			sb.WriteString("\n")
		}

	case SearchMode:
		sb.WriteString(m.titleBar(" Search Contacts "))
		sb.WriteString("\n\n")
		sb.WriteString("Enter a term to match against name, email and message:")
		sb.WriteString("\n\n")
		sb.WriteString(m.searchInput.View())

	case ReminderMode:
		sb.WriteString(m.titleBar(" Add Reminder "))
		sb.WriteString("\n\n")

		if c, ok := m.store.Get(m.selectedID); ok {
			target := fmt.Sprintf("For %s (%s)", displayValue(c.Name), displayValue(c.Email))
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render(target))
			sb.WriteString("\n\n")
		}
		sb.WriteString(m.renderReminderForm())

	case DetailViewMode:
		sb.WriteString(m.titleBar(" Contact Detail "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderDetail())

	case HelpViewMode:
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
		sb.WriteString("\n\n")

		keyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.AccentColor)).
			Bold(true)
		descStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor))

		addCommand := func(binding key.Binding) {
			sb.WriteString(fmt.Sprintf("%s: %s\n",
				descStyle.Render(binding.Help().Desc),
				keyStyle.Render(binding.Help().Key)))
		}

		addCommand(m.keyMap.QuitApp)
		addCommand(m.keyMap.ShowHelp)
		addCommand(m.keyMap.Refresh)
		addCommand(m.keyMap.SearchContacts)
		addCommand(m.keyMap.CycleStatusFilter)
		addCommand(m.keyMap.CycleStatus)
		addCommand(m.keyMap.AddReminder)
		addCommand(m.keyMap.ToggleMessage)
		addCommand(m.keyMap.ShowDetail)
		addCommand(m.keyMap.SignOut)

		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Sorting & Paging"))
		sb.WriteString("\n\n")

		addCommand(m.keyMap.SortByName)
		addCommand(m.keyMap.SortByEmail)
		addCommand(m.keyMap.SortByPhone)
		addCommand(m.keyMap.SortByDate)
		addCommand(m.keyMap.SortByStatus)
		addCommand(m.keyMap.PrevPage)
		addCommand(m.keyMap.NextPage)

	case SignOutConfirmMode:
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.ErrorColor)).
			Padding(0, 1).
			Render(" Sign Out "))
		sb.WriteString("\n\n")
		sb.WriteString("Sign out and discard all in-memory edits?\n\n")
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
	}

	// Add help status bar at the bottom
	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

func (m Model) titleBar(title string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1).
		Render(title)
}

// statusLine summarizes the active pipeline inputs under the table.
func (m Model) statusLine() string {
	filterPart := "all statuses"
	if m.statusFilter != contacts.FilterAll {
		filterPart = fmt.Sprintf("status %s", m.statusFilter)
	}

	searchPart := ""
	if m.searchTerm != "" {
		searchPart = fmt.Sprintf(" | search %q", m.searchTerm)
	}

	direction := "asc"
	if m.sortConfig.Direction == contacts.SortDesc {
		direction = "desc"
	}

	pagePart := "no pages"
	if m.view.TotalPages > 0 {
		pagePart = fmt.Sprintf("page %d/%d", m.view.PageNumber, m.view.TotalPages)
	}

	line := fmt.Sprintf("Showing %d of %d contacts (%s%s) | sorted by %s (%s) | %s",
		len(m.view.Page), m.view.Filtered, filterPart, searchPart,
		m.sortConfig.Key, direction, pagePart)

	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render(line)
}

// renderReminderForm renders the input form for adding a reminder
func (m Model) renderReminderForm() string {
	var sb strings.Builder

	sb.WriteString("Date (YYYY-MM-DD):\n")
	sb.WriteString(m.dateInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Time (HH:MM):\n")
	sb.WriteString(m.timeInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Note:\n")
	sb.WriteString(m.noteInput.View())
	sb.WriteString("\n\n")

	if m.canSubmitReminder() {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.AccentColor)).
			Render("Ready to save"))
	} else {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.MutedTextColor)).
			Render("Date and time are required"))
	}

	return sb.String()
}

// renderDetail renders the full record for the selected contact.
func (m Model) renderDetail() string {
	c, ok := m.store.Get(m.selectedID)
	if !ok {
		return "Contact no longer loaded."
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)

	var sb strings.Builder
	field := func(label, value string) {
		sb.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(label+":"), displayValue(value)))
	}

	field("Name", c.Name)
	field("Email", c.Email)
	field("Phone", c.Phone)
	field("Patient type", c.PatientType)
	field("Submitted", m.formatDate(c.Date))
	sb.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Status:"), m.statusStyle(c.Status).Render(string(c.Status))))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("Message:"))
	sb.WriteString("\n")
	sb.WriteString(displayValue(c.Message))
	sb.WriteString("\n\n")

	sb.WriteString(labelStyle.Render(fmt.Sprintf("Reminders (%d):", len(c.Reminders))))
	sb.WriteString("\n")
	if len(c.Reminders) == 0 {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.MutedTextColor)).Render("none"))
		sb.WriteString("\n")
	}
	for _, r := range c.Reminders {
		line := fmt.Sprintf("- %s %s", r.Date, r.Time)
		if r.Note != "" {
			line += " — " + r.Note
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// helpBar renders a sleek status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor))

	separator := separatorStyle.Render(" • ")

	addAction := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		addAction("ctrl+f", "search")
		addAction("f", "filter")
		addAction("t", "status")
		addAction("r", "reminder")
		addAction("m", "message")
		addAction("enter", "detail")
		addAction("←/→", "page")
		addAction("1-5", "sort")
		addAction("ctrl+r", "reload")
		addAction("ctrl+b", "help")
		addAction("q", "quit")

	case SearchMode:
		addAction("enter", "search")
		addAction("esc", "cancel")

	case ReminderMode:
		addAction("tab", "next field")
		if m.canSubmitReminder() {
			addAction("enter", "save")
		}
		addAction("esc", "cancel")

	case DetailViewMode:
		addAction("t", "status")
		addAction("r", "reminder")
		addAction("esc", "back")

	case HelpViewMode:
		addAction("ctrl+b/esc", "back")
		addAction("q", "quit")

	case SignOutConfirmMode:
		addAction("y", "confirm")
		addAction("n", "cancel")
	}

	return strings.Join(actions, separator)
}
