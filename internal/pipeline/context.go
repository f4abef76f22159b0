// The immutable data context shared by every aggregation call.
package pipeline

import (
	"sort"

	"github.com/mesh-intelligence/mortalidash/internal/dataset"
)

// Context holds the fully joined canonical record table. It is built once
// at startup and read-only afterwards, so concurrent request handlers may
// share it without synchronization.
type Context struct {
	Records []Record

	// Departments lists every distinct department name present in the
	// records, sorted, for the selector control.
	Departments []string
}

// Build runs the whole pipeline over the three loaded tables: normalize
// the mortality rows, join geography and cause names, label age groups.
// Empty input tables degrade to sentinel-filled records, never to an
// error.
func Build(mortality, geography, causes dataset.Table) *Context {
	records := Normalize(mortality)
	JoinGeography(records, geography)
	JoinCauses(records, causes)
	for i := range records {
		records[i].AgeGroupLabel = AgeLabel(records[i].AgeGroupCode)
	}

	seen := make(map[string]bool)
	var departments []string
	for _, rec := range records {
		if !seen[rec.DepartmentName] {
			seen[rec.DepartmentName] = true
			departments = append(departments, rec.DepartmentName)
		}
	}
	sort.Strings(departments)

	return &Context{Records: records, Departments: departments}
}
