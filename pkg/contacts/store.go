package contacts

import "strings"

// Store owns the in-memory contact list. Every mutation goes through an
// explicit method; there is no locking because all access happens on the
// Bubble Tea event loop.
type Store struct {
	contacts []Contact
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{contacts: []Contact{}}
}

// Replace swaps the whole contact list. Prior status and reminder edits
// are dropped with the old list; a refresh deliberately wipes them.
func (s *Store) Replace(list []Contact) {
	s.contacts = list
}

// Clear drops every contact, used on sign-out.
func (s *Store) Clear() {
	s.contacts = []Contact{}
}

// All returns the current contact list.
func (s *Store) All() []Contact {
	return s.contacts
}

// Len returns the number of loaded contacts.
func (s *Store) Len() int {
	return len(s.contacts)
}

// Get returns the contact with the given identifier.
func (s *Store) Get(id string) (*Contact, bool) {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			return &s.contacts[i], true
		}
	}
	return nil, false
}

// SetStatus overwrites the status of the contact with the given
// identifier. Unknown identifiers are a no-op; the reported bool says
// whether a contact was updated.
func (s *Store) SetStatus(id string, status Status) bool {
	c, ok := s.Get(id)
	if !ok {
		return false
	}
	c.Status = status
	return true
}

// AddReminder appends a reminder to the contact with the given
// identifier. Date and time are required, the note is optional. On
// rejection no mutation occurs.
func (s *Store) AddReminder(id, date, tm, note string) (Reminder, error) {
	if strings.TrimSpace(date) == "" {
		return Reminder{}, ErrMissingDate
	}
	if strings.TrimSpace(tm) == "" {
		return Reminder{}, ErrMissingTime
	}

	c, ok := s.Get(id)
	if !ok {
		return Reminder{}, ErrContactNotFound
	}

	r := Reminder{
		ID:   NewReminderID(),
		Date: strings.TrimSpace(date),
		Time: strings.TrimSpace(tm),
		Note: strings.TrimSpace(note),
	}
	c.Reminders = append(c.Reminders, r)
	return r, nil
}
