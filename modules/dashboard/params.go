package dashboard

import (
	"time"

	"github.com/a-h/templ"
)

// Views renders the dashboard pages. Every field is required.
type Views struct {
	OverviewPage    func(OverviewPageParams) templ.Component
	DataPage        func(DataPageParams) templ.Component
	MaintenancePage func(MaintenancePageParams) templ.Component
	// MaintenanceBody is the #maintenance section alone, patched when switching checks.
	MaintenanceBody func(MaintenancePageParams) templ.Component
	// FixList is the #fix-list section alone, patched after an inline edit.
	FixList func(FixListParams) templ.Component
}

// Tile is one data-quality counter on the overview page.
type Tile struct {
	Check  string
	Label  string
	Count  int64
	FixURL string
}

// OverviewPageParams contains data for rendering the overview page.
type OverviewPageParams struct {
	Total      int64
	Tiles      []Tile
	ComputedAt time.Time
}

// TherapistRow is one line of the data browser.
type TherapistRow struct {
	ID       string
	Name     string
	Title    string
	Street   string
	Zip      string
	City     string
	Canton   string
	Email    string
	Phone    string
	Verified bool
}

// DataPageParams contains data for rendering the data browser.
type DataPageParams struct {
	Therapists []TherapistRow
	Limit      int
}

// CheckOption is an entry of the check switcher.
type CheckOption struct {
	Name   string
	Label  string
	URL    string
	Active bool
}

// FindingRow is a failing record with its inline edit form.
type FindingRow struct {
	ID     string
	Name   string
	Value  string
	IsNull bool
	Reason string
}

// FixListParams contains data for rendering the fix list.
// An empty Findings slice renders the all-clear message.
type FixListParams struct {
	Check    string
	Field    string
	Findings []FindingRow
}

// MaintenancePageParams contains data for rendering the maintenance page.
type MaintenancePageParams struct {
	Check       string
	Label       string
	Description string
	Checks      []CheckOption
	FixList     FixListParams
}
