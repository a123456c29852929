package contacts

import "strings"

// StatusFilter narrows the table to one status, or shows everything.
type StatusFilter string

// FilterAll passes every contact regardless of status.
const FilterAll StatusFilter = "all"

// StatusFilters lists the filter values in cycle order.
var StatusFilters = []StatusFilter{
	FilterAll,
	StatusFilter(StatusNew),
	StatusFilter(StatusProspect),
	StatusFilter(StatusCustomerWon),
	StatusFilter(StatusCustomerLost),
}

// NextStatusFilter returns the filter that follows f in cycle order.
func NextStatusFilter(f StatusFilter) StatusFilter {
	for i, sf := range StatusFilters {
		if sf == f {
			return StatusFilters[(i+1)%len(StatusFilters)]
		}
	}
	return FilterAll
}

// Filter keeps the contacts matching the status filter and the search
// term. The term matches case-insensitively against name, email and
// message; an absent field never matches a non-empty term.
func Filter(list []Contact, term string, status StatusFilter) []Contact {
	filtered := make([]Contact, 0, len(list))
	needle := strings.ToLower(term)

	for _, c := range list {
		if status != FilterAll && c.Status != Status(status) {
			continue
		}
		if needle != "" && !matchesTerm(c, needle) {
			continue
		}
		filtered = append(filtered, c)
	}

	return filtered
}

func matchesTerm(c Contact, needle string) bool {
	for _, field := range []string{c.Name, c.Email, c.Message} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// TotalPages returns ceil(n/size), 0 for an empty sequence.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// ClampPage keeps a 1-based page inside [1, totalPages]. With no pages at
// all the page stays at 1 so an empty view is still addressable.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages >= 1 && page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices the 1-based page out of list. The page is clamped to
// the valid range first.
func Paginate(list []Contact, page, size int) []Contact {
	total := TotalPages(len(list), size)
	page = ClampPage(page, total)
	if total == 0 {
		return []Contact{}
	}

	start := (page - 1) * size
	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// View is one recomputed derived view: the visible page plus the counts
// the presentation layer needs.
type View struct {
	Page       []Contact
	PageNumber int
	TotalPages int
	Filtered   int
}

// VisiblePage runs the full filter/sort/paginate pipeline from scratch.
// It is a pure function of its inputs; callers re-invoke it whenever any
// input changes.
func VisiblePage(list []Contact, term string, status StatusFilter, cfg SortConfig, page, size int) View {
	filtered := Filter(list, term, status)
	sorted := Sort(filtered, cfg)

	total := TotalPages(len(sorted), size)
	page = ClampPage(page, total)

	return View{
		Page:       Paginate(sorted, page, size),
		PageNumber: page,
		TotalPages: total,
		Filtered:   len(sorted),
	}
}
