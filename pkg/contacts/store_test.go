package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWith(t *testing.T, list []Contact) *Store {
	t.Helper()
	s := NewStore()
	s.Replace(list)
	return s
}

func TestStore_SetStatus(t *testing.T) {
	s := storeWith(t, testContacts())

	ok := s.SetStatus("2", StatusCustomerWon)
	assert.True(t, ok)

	c, found := s.Get("2")
	require.True(t, found)
	assert.Equal(t, StatusCustomerWon, c.Status)
}

func TestStore_SetStatus_UnknownIDIsNoOp(t *testing.T) {
	list := testContacts()
	s := storeWith(t, list)

	ok := s.SetStatus("nope", StatusProspect)
	assert.False(t, ok)

	for _, c := range s.All() {
		assert.Equal(t, StatusNew, c.Status)
	}
}

func TestStore_AddReminder(t *testing.T) {
	s := storeWith(t, testContacts())

	r, err := s.AddReminder("1", "2026-04-01", "09:30", "call back")
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "2026-04-01", r.Date)
	assert.Equal(t, "09:30", r.Time)
	assert.Equal(t, "call back", r.Note)

	c, _ := s.Get("1")
	require.Len(t, c.Reminders, 1)
	assert.Equal(t, r, c.Reminders[0])
}

func TestStore_AddReminder_NoteOptional(t *testing.T) {
	s := storeWith(t, testContacts())

	_, err := s.AddReminder("1", "2026-04-01", "09:30", "")
	assert.NoError(t, err)
}

func TestStore_AddReminder_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		date    string
		time    string
		wantErr error
	}{
		{"missing date", "1", "", "09:30", ErrMissingDate},
		{"missing time", "1", "2026-04-01", "", ErrMissingTime},
		{"blank date", "1", "   ", "09:30", ErrMissingDate},
		{"unknown contact", "nope", "2026-04-01", "09:30", ErrContactNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := storeWith(t, testContacts())

			_, err := s.AddReminder(tt.id, tt.date, tt.time, "note")
			assert.ErrorIs(t, err, tt.wantErr)

			// Rejection means no mutation anywhere
			for _, c := range s.All() {
				assert.Empty(t, c.Reminders)
			}
		})
	}
}

func TestStore_ReplaceDropsEdits(t *testing.T) {
	s := storeWith(t, testContacts())
	s.SetStatus("1", StatusProspect)
	_, err := s.AddReminder("1", "2026-04-01", "09:30", "")
	require.NoError(t, err)

	// A refresh replaces wholesale and drops prior edits.
	s.Replace(testContacts())

	c, found := s.Get("1")
	require.True(t, found)
	assert.Equal(t, StatusNew, c.Status)
	assert.Empty(t, c.Reminders)
}

func TestStore_Clear(t *testing.T) {
	s := storeWith(t, testContacts())
	s.Clear()
	assert.Zero(t, s.Len())
}

func TestStatus_Next(t *testing.T) {
	assert.Equal(t, StatusProspect, StatusNew.Next())
	assert.Equal(t, StatusCustomerWon, StatusProspect.Next())
	assert.Equal(t, StatusCustomerLost, StatusCustomerWon.Next())
	assert.Equal(t, StatusNew, StatusCustomerLost.Next())
}
