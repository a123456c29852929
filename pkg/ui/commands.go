package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"leadboard/pkg/api"
	"leadboard/pkg/contacts"
)

// contactsLoadedMsg carries a successfully fetched batch.
type contactsLoadedMsg struct {
	contacts []contacts.Contact
}

// loadFailedMsg carries the load error; previously loaded contacts stay
// untouched.
type loadFailedMsg struct {
	err error
}

// fetchContacts runs the remote load off the update loop. Overlapping
// fetches are not guarded against: whichever finishes last wins and
// replaces the list.
func fetchContacts(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		list, err := client.FetchSubmissions(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return contactsLoadedMsg{contacts: list}
	}
}
