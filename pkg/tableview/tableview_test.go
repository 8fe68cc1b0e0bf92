package tableview

import (
	"fmt"
	"testing"
	"time"

	"github.com/samkiyya/SAM-Fleet/models"
)

func vehicleAt(name, plate string, status models.VehicleStatus, updated time.Time) models.Vehicle {
	return models.Vehicle{
		ID:           models.NewRecordID(),
		Name:         name,
		Type:         "Truck",
		LicensePlate: plate,
		Driver:       "driver",
		Mileage:      1000,
		FuelLevel:    50,
		Status:       status,
		LastUpdated:  models.JSONTime(updated),
	}
}

// fleetOf builds n vehicles with distinct names, plates and timestamps.
func fleetOf(n int) []models.Vehicle {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]models.Vehicle, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, vehicleAt(
			fmt.Sprintf("Vehicle %02d", i),
			fmt.Sprintf("PLT-%03d", i),
			models.StatusActive,
			base.Add(time.Duration(i)*time.Hour),
		))
	}
	return out
}

func TestViewDefaults(t *testing.T) {
	collection := fleetOf(25)
	page := View(collection, DefaultQuery())

	if len(page.Rows) != PageSize {
		t.Fatalf("rows = %d, expected %d", len(page.Rows), PageSize)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, expected 3", page.TotalPages)
	}
	if page.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, expected 1", page.CurrentPage)
	}
	// default sort is lastUpdated descending, so the newest record leads
	if page.Rows[0].Name != "Vehicle 24" {
		t.Errorf("first row = %q, expected newest vehicle", page.Rows[0].Name)
	}
}

func TestViewSearchFilter(t *testing.T) {
	collection := []models.Vehicle{
		vehicleAt("Delivery Van", "ABC-123", models.StatusActive, time.Now()),
		vehicleAt("Dump Truck", "XYZ-789", models.StatusActive, time.Now()),
		vehicleAt("Sedan", "abc-456", models.StatusActive, time.Now()),
	}

	tests := []struct {
		name   string
		search string
		want   int
	}{
		{"empty search matches all", "", 3},
		{"name substring", "van", 1},
		{"plate substring case-insensitive", "ABC", 2},
		{"substring not prefix", "ruck", 1},
		{"no match", "helicopter", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := DefaultQuery()
			q.SearchTerm = tt.search
			page := View(collection, q)
			if len(page.Rows) != tt.want {
				t.Errorf("search %q: rows = %d, expected %d", tt.search, len(page.Rows), tt.want)
			}
			for _, row := range page.Rows {
				if !Matches(row, q) {
					t.Errorf("row %q does not satisfy its own query", row.Name)
				}
			}
		})
	}
}

func TestViewStatusFilterScenario(t *testing.T) {
	// 12 records, 3 of them Active: filtering must yield exactly 3 rows on 1 page
	collection := fleetOf(12)
	for i := range collection {
		if i >= 3 {
			collection[i].Status = models.StatusInactive
		}
	}

	q := DefaultQuery()
	active := models.StatusActive
	q.StatusFilter = &active

	page := View(collection, q)
	if len(page.Rows) != 3 {
		t.Fatalf("rows = %d, expected 3", len(page.Rows))
	}
	if page.TotalPages != 1 {
		t.Errorf("TotalPages = %d, expected 1", page.TotalPages)
	}
	for _, row := range page.Rows {
		if row.Status != models.StatusActive {
			t.Errorf("row %q has status %q, expected Active", row.Name, row.Status)
		}
	}
}

func TestViewSearchAndStatusCombine(t *testing.T) {
	now := time.Now()
	collection := []models.Vehicle{
		vehicleAt("Van A", "AAA-111", models.StatusActive, now),
		vehicleAt("Van B", "BBB-222", models.StatusInactive, now),
		vehicleAt("Truck C", "CCC-333", models.StatusActive, now),
	}

	q := DefaultQuery()
	q.SearchTerm = "van"
	active := models.StatusActive
	q.StatusFilter = &active

	page := View(collection, q)
	if len(page.Rows) != 1 || page.Rows[0].Name != "Van A" {
		t.Errorf("expected only the active van, got %d rows", len(page.Rows))
	}
}

func TestViewSortStability(t *testing.T) {
	now := time.Now()
	// four records sharing one status, names distinguish input order
	collection := []models.Vehicle{
		vehicleAt("first", "P-1", models.StatusActive, now),
		vehicleAt("second", "P-2", models.StatusActive, now),
		vehicleAt("third", "P-3", models.StatusInactive, now),
		vehicleAt("fourth", "P-4", models.StatusActive, now),
	}

	q := DefaultQuery()
	q.SortField = SortByStatus
	q.SortDirection = Ascending

	page := View(collection, q)
	gotActive := []string{}
	for _, row := range page.Rows {
		if row.Status == models.StatusActive {
			gotActive = append(gotActive, row.Name)
		}
	}
	want := []string{"first", "second", "fourth"}
	for i := range want {
		if gotActive[i] != want[i] {
			t.Fatalf("tie group order = %v, expected %v", gotActive, want)
		}
	}

	// ties keep input order in the other direction too
	q.SortDirection = Descending
	page = View(collection, q)
	gotActive = gotActive[:0]
	for _, row := range page.Rows {
		if row.Status == models.StatusActive {
			gotActive = append(gotActive, row.Name)
		}
	}
	for i := range want {
		if gotActive[i] != want[i] {
			t.Fatalf("descending tie group order = %v, expected %v", gotActive, want)
		}
	}
}

func TestViewDirectionFlipReversesRows(t *testing.T) {
	collection := fleetOf(7) // distinct names, no ties

	q := DefaultQuery()
	q.SortField = SortByName
	q.SortDirection = Ascending
	asc := View(collection, q)

	q.SortDirection = Descending
	desc := View(collection, q)

	if len(asc.Rows) != len(desc.Rows) {
		t.Fatalf("row counts differ: %d vs %d", len(asc.Rows), len(desc.Rows))
	}
	for i := range asc.Rows {
		mirror := desc.Rows[len(desc.Rows)-1-i]
		if asc.Rows[i].ID != mirror.ID {
			t.Errorf("row %d: flip did not reverse order (%q vs %q)", i, asc.Rows[i].Name, mirror.Name)
		}
	}
}

func TestViewPagination(t *testing.T) {
	collection := fleetOf(21)

	tests := []struct {
		name      string
		pageNum   int
		wantRows  int
		wantPages int
	}{
		{"first page full", 1, 10, 3},
		{"second page full", 2, 10, 3},
		{"last page partial", 3, 1, 3},
		{"beyond range is empty, not clamped", 4, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := DefaultQuery()
			q.Page = tt.pageNum
			got := View(collection, q)
			if len(got.Rows) != tt.wantRows {
				t.Errorf("page %d: rows = %d, expected %d", tt.pageNum, len(got.Rows), tt.wantRows)
			}
			if got.TotalPages != tt.wantPages {
				t.Errorf("page %d: TotalPages = %d, expected %d", tt.pageNum, got.TotalPages, tt.wantPages)
			}
			if got.CurrentPage != tt.pageNum {
				t.Errorf("page %d: CurrentPage = %d", tt.pageNum, got.CurrentPage)
			}
		})
	}
}

func TestViewTotalPagesMinimumOne(t *testing.T) {
	page := View(nil, DefaultQuery())
	if page.TotalPages != 1 {
		t.Errorf("TotalPages on empty collection = %d, expected 1", page.TotalPages)
	}
	if len(page.Rows) != 0 {
		t.Errorf("rows on empty collection = %d, expected 0", len(page.Rows))
	}
}

func TestViewDoesNotMutateCollection(t *testing.T) {
	collection := []models.Vehicle{
		vehicleAt("b", "P-1", models.StatusActive, time.Now()),
		vehicleAt("a", "P-2", models.StatusActive, time.Now()),
	}

	q := DefaultQuery()
	q.SortField = SortByName
	View(collection, q)

	if collection[0].Name != "b" || collection[1].Name != "a" {
		t.Error("View reordered the caller's collection")
	}
}

func TestToggleSort(t *testing.T) {
	q := DefaultQuery()

	// same field flips direction
	q.ToggleSort(SortByLastUpdated)
	if q.SortDirection != Ascending {
		t.Errorf("direction = %q, expected flip to asc", q.SortDirection)
	}
	q.ToggleSort(SortByLastUpdated)
	if q.SortDirection != Descending {
		t.Errorf("direction = %q, expected flip back to desc", q.SortDirection)
	}

	// new field resets to ascending
	q.ToggleSort(SortByName)
	if q.SortField != SortByName || q.SortDirection != Ascending {
		t.Errorf("got %q/%q, expected name/asc", q.SortField, q.SortDirection)
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{0, 3, 1},
		{-5, 3, 1},
		{1, 3, 1},
		{3, 3, 3},
		{4, 3, 3},
		{99, 1, 1},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.total); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, expected %d", tt.page, tt.total, got, tt.want)
		}
	}
}
