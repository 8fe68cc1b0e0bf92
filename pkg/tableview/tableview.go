// Package tableview turns the shared fleet collection into one displayed
// table page. Everything here is a pure function of its inputs; the caller
// owns the query state and feeds header clicks through ToggleSort.
package tableview

import (
	"sort"
	"strings"
	"time"

	"github.com/samkiyya/SAM-Fleet/models"
)

// SortField is the closed set of sortable columns.
type SortField string

const (
	SortByName        SortField = "name"
	SortByStatus      SortField = "status"
	SortByLastUpdated SortField = "lastUpdated"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// PageSize is the fixed number of rows per table page.
const PageSize = 10

// Query describes one projection of the collection.
type Query struct {
	SearchTerm    string
	StatusFilter  *models.VehicleStatus
	SortField     SortField
	SortDirection SortDirection
	Page          int
	PageSize      int
}

// DefaultQuery matches the table's initial state: newest first, page one.
func DefaultQuery() Query {
	return Query{
		SortField:     SortByLastUpdated,
		SortDirection: Descending,
		Page:          1,
		PageSize:      PageSize,
	}
}

// ToggleSort applies the header-click rule: clicking the active column flips
// the direction, clicking a new column selects it ascending.
func (q *Query) ToggleSort(field SortField) {
	if q.SortField == field {
		if q.SortDirection == Ascending {
			q.SortDirection = Descending
		} else {
			q.SortDirection = Ascending
		}
		return
	}
	q.SortField = field
	q.SortDirection = Ascending
}

// Page is one displayed slice of the filtered, sorted collection.
type Page struct {
	Rows        []models.Vehicle
	TotalPages  int
	CurrentPage int
}

// View projects collection through q. Out-of-range pages yield an empty row
// set; clamping the page number into [1, TotalPages] is the caller's job
// (see ClampPage).
func View(collection []models.Vehicle, q Query) Page {
	if q.PageSize <= 0 {
		q.PageSize = PageSize
	}
	if q.Page <= 0 {
		q.Page = 1
	}

	filtered := filter(collection, q)
	sortVehicles(filtered, q.SortField, q.SortDirection)

	totalPages := (len(filtered) + q.PageSize - 1) / q.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (q.Page - 1) * q.PageSize
	end := start + q.PageSize
	rows := []models.Vehicle{}
	if start < len(filtered) {
		if end > len(filtered) {
			end = len(filtered)
		}
		rows = filtered[start:end]
	}

	return Page{Rows: rows, TotalPages: totalPages, CurrentPage: q.Page}
}

// Matches reports whether v passes q's search and status predicates. The
// search is case-insensitive substring containment over name and license
// plate.
func Matches(v models.Vehicle, q Query) bool {
	if q.StatusFilter != nil && v.Status != *q.StatusFilter {
		return false
	}
	if q.SearchTerm == "" {
		return true
	}
	term := strings.ToLower(q.SearchTerm)
	return strings.Contains(strings.ToLower(v.Name), term) ||
		strings.Contains(strings.ToLower(v.LicensePlate), term)
}

// ClampPage bounds page to [1, totalPages] for the presentation layer.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func filter(collection []models.Vehicle, q Query) []models.Vehicle {
	filtered := make([]models.Vehicle, 0, len(collection))
	for _, v := range collection {
		if Matches(v, q) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// sortVehicles orders vehicles in place. The sort is stable: equal keys keep
// their relative input order in either direction.
func sortVehicles(vehicles []models.Vehicle, field SortField, direction SortDirection) {
	sort.SliceStable(vehicles, func(i, j int) bool {
		c := compare(vehicles[i], vehicles[j], field)
		if direction == Descending {
			return c > 0
		}
		return c < 0
	})
}

func compare(a, b models.Vehicle, field SortField) int {
	switch field {
	case SortByName:
		return strings.Compare(a.Name, b.Name)
	case SortByStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	default: // SortByLastUpdated
		at, bt := time.Time(a.LastUpdated), time.Time(b.LastUpdated)
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		default:
			return 0
		}
	}
}
