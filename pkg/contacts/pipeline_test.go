package contacts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContacts() []Contact {
	list := []Contact{
		{ID: "1", Name: "Alice Archer", Email: "alice@example.com", Message: "Interested in botox", Date: "2026-03-01T10:00:00Z"},
		{ID: "2", Name: "Bob Breeze", Email: "bob@example.com", Message: "Pricing question", Date: "2026-03-02T10:00:00Z"},
		{ID: "3", Name: "Cara Quinn", Email: "cara@example.com", Message: "Follow up please", Date: "2026-03-03T10:00:00Z"},
		{ID: "4", Name: "Dan Field", Date: "2026-02-28T09:30:00Z"},
	}
	for i := range list {
		list[i].Normalize()
	}
	return list
}

func TestFilter_Identity(t *testing.T) {
	list := testContacts()
	got := Filter(list, "", FilterAll)
	assert.Equal(t, list, got, "empty term and all-filter must pass every contact")
}

func TestFilter_Status(t *testing.T) {
	list := testContacts()
	list[1].Status = StatusProspect
	list[2].Status = StatusProspect

	got := Filter(list, "", StatusFilter(StatusProspect))
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	assert.Empty(t, Filter(list, "", StatusFilter(StatusCustomerWon)))
}

func TestFilter_SearchTerm(t *testing.T) {
	list := testContacts()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"matches name case-insensitively", "ALICE", []string{"1"}},
		{"matches email", "bob@", []string{"2"}},
		{"matches message", "follow up", []string{"3"}},
		{"shared domain matches several", "example.com", []string{"1", "2", "3"}},
		{"absent fields never match", "nosuchvalue", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(list, tt.term, FilterAll)
			var ids []string
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilter_AbsentFieldWithNonEmptyTerm(t *testing.T) {
	// Contact 4 has no email and no message; a term matching nothing of
	// its present fields must not pass it.
	list := testContacts()
	got := Filter(list, "field", FilterAll)
	require.Len(t, got, 1)
	assert.Equal(t, "4", got[0].ID)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
}

func TestPaginate(t *testing.T) {
	list := make([]Contact, 25)
	for i := range list {
		list[i] = Contact{ID: fmt.Sprintf("%d", i)}
	}

	page1 := Paginate(list, 1, 10)
	require.Len(t, page1, 10)
	assert.Equal(t, "0", page1[0].ID)
	assert.Equal(t, "9", page1[9].ID)

	page3 := Paginate(list, 3, 10)
	require.Len(t, page3, 5)
	assert.Equal(t, "20", page3[0].ID)
	assert.Equal(t, "24", page3[4].ID)

	// Out-of-range pages clamp to the boundary instead of erroring
	clampedHigh := Paginate(list, 99, 10)
	assert.Equal(t, page3, clampedHigh)
	clampedLow := Paginate(list, 0, 10)
	assert.Equal(t, page1, clampedLow)

	assert.Empty(t, Paginate(nil, 1, 10))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(9, 3))
	assert.Equal(t, 1, ClampPage(5, 0))
}

func TestVisiblePage_ProspectScenario(t *testing.T) {
	// 12 records, 3 of them Prospect: the filter yields exactly those 3
	// on a single page, default sort date descending.
	var list []Contact
	for i := 1; i <= 12; i++ {
		c := Contact{
			ID:   fmt.Sprintf("%d", i),
			Name: fmt.Sprintf("Contact %02d", i),
			Date: fmt.Sprintf("2026-03-%02dT08:00:00Z", i),
		}
		c.Normalize()
		list = append(list, c)
	}
	list[1].Status = StatusProspect
	list[5].Status = StatusProspect
	list[8].Status = StatusProspect

	view := VisiblePage(list, "", StatusFilter(StatusProspect), DefaultSort(), 1, 10)

	require.Len(t, view.Page, 3)
	assert.Equal(t, 3, view.Filtered)
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, 1, view.PageNumber)

	// date descending: newest of the three first
	assert.Equal(t, "9", view.Page[0].ID)
	assert.Equal(t, "6", view.Page[1].ID)
	assert.Equal(t, "2", view.Page[2].ID)
}

func TestVisiblePage_ClampsAfterShrink(t *testing.T) {
	list := testContacts()
	view := VisiblePage(list, "", FilterAll, DefaultSort(), 7, 2)
	assert.Equal(t, 2, view.TotalPages)
	assert.Equal(t, 2, view.PageNumber)
	assert.Len(t, view.Page, 2)
}

func TestNextStatusFilter(t *testing.T) {
	f := FilterAll
	var seen []StatusFilter
	for i := 0; i < len(StatusFilters); i++ {
		f = NextStatusFilter(f)
		seen = append(seen, f)
	}
	assert.Equal(t, FilterAll, f, "cycle returns to all")
	assert.Contains(t, seen, StatusFilter(StatusCustomerLost))
}
