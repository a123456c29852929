package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"leadboard/pkg/contacts"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case contactsLoadedMsg:
		m.loading = false
		m.loadErr = nil
		m.store.Replace(msg.contacts)
		m.expanded = map[string]bool{}
		m.logger.Info("contact list replaced", "count", len(msg.contacts))
		m.refreshView()
		return m, nil

	case loadFailedMsg:
		// Prior contacts stay; only the banner changes.
		m.loading = false
		m.loadErr = msg.err
		m.logger.Error("load failed", "error", msg.err)
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.Refresh):
				m.loading = true
				m.loadErr = nil
				return m, tea.Batch(m.spinner.Tick, fetchContacts(m.client))

			case key.Matches(msg, m.keyMap.SearchContacts):
				m.mode = SearchMode
				m.searchInput.Focus()
				m.searchInput.SetValue("") // Clear previous search
				return m, nil

			case key.Matches(msg, m.keyMap.CycleStatusFilter):
				m.statusFilter = contacts.NextStatusFilter(m.statusFilter)
				m.page = 1
				m.refreshView()

			case key.Matches(msg, m.keyMap.CycleStatus):
				if c := m.selectedContact(); c != nil {
					m.store.SetStatus(c.ID, c.Status.Next())
					m.refreshView()
				}

			case key.Matches(msg, m.keyMap.AddReminder):
				if c := m.selectedContact(); c != nil {
					m.mode = ReminderMode
					m.selectedID = c.ID
					m.resetReminderInputs()
				}

			case key.Matches(msg, m.keyMap.ToggleMessage):
				if c := m.selectedContact(); c != nil {
					m.expanded[c.ID] = !m.expanded[c.ID]
					m.refreshView()
				}

			case key.Matches(msg, m.keyMap.ShowDetail):
				if c := m.selectedContact(); c != nil {
					m.mode = DetailViewMode
					m.selectedID = c.ID
				}

			case key.Matches(msg, m.keyMap.PrevPage):
				m.page--
				m.refreshView()

			case key.Matches(msg, m.keyMap.NextPage):
				m.page++
				m.refreshView()

			case key.Matches(msg, m.keyMap.SortByName):
				m.toggleSort("name")

			case key.Matches(msg, m.keyMap.SortByEmail):
				m.toggleSort("email")

			case key.Matches(msg, m.keyMap.SortByPhone):
				m.toggleSort("phone")

			case key.Matches(msg, m.keyMap.SortByDate):
				m.toggleSort("date")

			case key.Matches(msg, m.keyMap.SortByStatus):
				m.toggleSort("status")

			case key.Matches(msg, m.keyMap.SignOut):
				m.mode = SignOutConfirmMode
			}

		case SearchMode:
			switch msg.String() {
			case "esc":
				// Exit search mode and drop the active term
				m.mode = NormalMode
				m.searchTerm = ""
				m.page = 1
				m.refreshView()

			case "enter":
				m.searchTerm = m.searchInput.Value()
				m.logger.Debug("searching contacts", "term", m.searchTerm)
				m.mode = NormalMode
				m.page = 1
				m.refreshView()
			}

			m.searchInput, cmd = m.searchInput.Update(msg)
			cmds = append(cmds, cmd)

		case ReminderMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.resetReminderInputs()
				m.selectedID = ""

			case "tab":
				m.focusNextInput()

			case "shift+tab":
				m.focusPreviousInput()

			case "enter":
				if m.activeInput == 2 { // Submit on enter from the last field (note)
					m.submitReminder()
				} else {
					m.focusNextInput()
				}
			}

			// Handle input updates
			switch m.activeInput {
			case 0:
				m.dateInput, cmd = m.dateInput.Update(msg)
				cmds = append(cmds, cmd)
			case 1:
				m.timeInput, cmd = m.timeInput.Update(msg)
				cmds = append(cmds, cmd)
			case 2:
				m.noteInput, cmd = m.noteInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case DetailViewMode:
			switch {
			case msg.String() == "esc":
				m.mode = NormalMode
				m.selectedID = ""

			case key.Matches(msg, m.keyMap.AddReminder):
				m.mode = ReminderMode
				m.resetReminderInputs()

			case key.Matches(msg, m.keyMap.CycleStatus):
				if c, ok := m.store.Get(m.selectedID); ok {
					m.store.SetStatus(c.ID, c.Status.Next())
					m.refreshView()
				}
			}

		case HelpViewMode:
			switch msg.String() {
			case "esc", "ctrl+b":
				m.mode = NormalMode
			}

		case SignOutConfirmMode:
			switch msg.String() {
			case "y", "Y":
				m.store.Clear()
				if err := m.session.SignOut(); err != nil {
					m.logger.Error("sign out failed", "error", err)
				}
				return m, tea.Quit

			case "n", "N", "esc":
				m.mode = NormalMode
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
	}

	// Only update table in normal mode
	if m.mode == NormalMode {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// toggleSort applies the header-toggle contract: same key flips the
// direction, a new key starts ascending.
func (m *Model) toggleSort(key string) {
	m.sortConfig = contacts.ToggleSort(m.sortConfig, key)
	m.refreshView()
}
