package contacts

import (
	"sort"
	"strings"
)

// SortDirection is the requested ordering direction.
type SortDirection string

const (
	SortAsc  SortDirection = "ascending"
	SortDesc SortDirection = "descending"
)

// SortConfig selects the contact field to order by and the direction.
type SortConfig struct {
	Key       string
	Direction SortDirection
}

// DefaultSort orders by submission date, newest first.
func DefaultSort() SortConfig {
	return SortConfig{Key: "date", Direction: SortDesc}
}

// ToggleSort returns the config after selecting key: picking the active
// key again flips the direction, picking a new key resets to ascending.
func ToggleSort(cfg SortConfig, key string) SortConfig {
	if cfg.Key == key {
		if cfg.Direction == SortAsc {
			cfg.Direction = SortDesc
		} else {
			cfg.Direction = SortAsc
		}
		return cfg
	}
	return SortConfig{Key: key, Direction: SortAsc}
}

// Sort orders contacts by the configured key without touching the input
// slice. Contacts with an absent key value sort after present values no
// matter the direction: the null check short-circuits before the
// direction is applied. Ties keep whatever order sort.Slice leaves them
// in.
func Sort(list []Contact, cfg SortConfig) []Contact {
	sorted := make([]Contact, len(list))
	copy(sorted, list)

	sort.Slice(sorted, func(i, j int) bool {
		vi, iOK := sortValue(sorted[i], cfg.Key)
		vj, jOK := sortValue(sorted[j], cfg.Key)

		if !iOK {
			return false
		}
		if !jOK {
			return true
		}

		var result bool
		if cfg.Key == "date" {
			ti, iOK := ParseDate(vi)
			tj, jOK := ParseDate(vj)
			if !iOK {
				return false
			}
			if !jOK {
				return true
			}
			result = ti.Before(tj)
		} else {
			result = strings.ToLower(vi) < strings.ToLower(vj)
		}

		if cfg.Direction == SortDesc {
			result = !result
		}
		return result
	})

	return sorted
}

// sortValue extracts the raw field value used for ordering. The second
// return value is false when the field is absent.
func sortValue(c Contact, key string) (string, bool) {
	var v string
	switch key {
	case "name":
		v = c.Name
	case "email":
		v = c.Email
	case "phone":
		v = c.Phone
	case "message":
		v = c.Message
	case "patientType":
		v = c.PatientType
	case "date":
		v = c.Date
	case "status":
		v = string(c.Status)
	}
	return v, v != ""
}
