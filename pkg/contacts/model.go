package contacts

import (
	"strconv"
	"time"
)

// Status is the follow-up state of a contact. It is client-side only and
// is never written back to the remote API.
type Status string

const (
	StatusNew          Status = "New"
	StatusProspect     Status = "Prospect"
	StatusCustomerWon  Status = "Customer-won"
	StatusCustomerLost Status = "Customer-lost"
)

// Statuses lists every valid status in cycle order.
var Statuses = []Status{StatusNew, StatusProspect, StatusCustomerWon, StatusCustomerLost}

// Next returns the status that follows s in cycle order.
func (s Status) Next() Status {
	for i, st := range Statuses {
		if st == s {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusNew
}

// Contact represents a single campaign-form submission. All text fields
// are optional on the remote side; an empty string means the field was
// absent. The raw payload is preserved verbatim, no validation happens at
// load time.
type Contact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	PatientType string `json:"patientType"`
	Date        string `json:"date"`

	Status    Status     `json:"-"`
	Reminders []Reminder `json:"-"`
}

// Reminder is a follow-up note attached to a contact. Reminders live only
// in memory for the current session.
type Reminder struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Time string `json:"time"`
	Note string `json:"note"`
}

// Normalize attaches the default mutable fields to a freshly loaded
// contact: every contact starts as New with no reminders.
func (c *Contact) Normalize() {
	c.Status = StatusNew
	c.Reminders = []Reminder{}
}

// NewReminderID generates a timestamp-based identifier, unique within the
// session. It is never persisted or synced.
func NewReminderID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

// dateLayouts are the timestamp formats the remote API has been observed
// to send.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a contact timestamp. The second return value is false
// when the string is empty or matches none of the known layouts.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
