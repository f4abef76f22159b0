// Package views computes the aggregate projections behind the dashboard
// charts. Compute is a pure function over the immutable pipeline context:
// each call derives fresh result tables and mutates nothing, so it is safe
// to invoke from concurrent request handlers.
package views

import (
	"regexp"
	"sort"

	"github.com/mesh-intelligence/mortalidash/internal/pipeline"
)

// FilterAll is the selector sentinel meaning "no department filter".
const FilterAll = "_ALL_"

// Result-row caps for the ranked views.
const (
	topHomicideMunicipalities = 5
	lowestMortalityCount      = 10
	topCauseCount             = 10
)

// homicidePattern selects homicide cause codes. The alternation is kept
// exactly as the dashboard has always matched it; it is redundant and
// amounts to "contains X9".
var homicidePattern = regexp.MustCompile(`X9[0-9]|X95|X9`)

// CountRow is one labeled count in a grouped view.
type CountRow struct {
	Label string `json:"label"`
	Total int    `json:"total"`
}

// MonthRow is one month's count; Month 0 groups records whose month was
// missing or unparseable.
type MonthRow struct {
	Month int `json:"month"`
	Total int `json:"total"`
}

// SexRow is one (department, sex) count for the stacked bar chart.
type SexRow struct {
	Department string `json:"department"`
	Sex        string `json:"sex"`
	Total      int    `json:"total"`
}

// CauseRow is one row of the ranked cause table.
type CauseRow struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// Summary carries the headline counts for the side card.
type Summary struct {
	TotalRecords   int `json:"total_records"`
	Departments    int `json:"departments"`
	Municipalities int `json:"municipalities"`
}

// Views bundles the seven aggregates plus the summary, computed over one
// filter selection.
type Views struct {
	Summary         Summary    `json:"summary"`
	ByDepartment    []CountRow `json:"by_department"`
	ByMonth         []MonthRow `json:"by_month"`
	TopHomicides    []CountRow `json:"top_homicides"`
	LowestMortality []CountRow `json:"lowest_mortality"`
	ByDepartmentSex []SexRow   `json:"by_department_sex"`
	ByAgeGroup      []CountRow `json:"by_age_group"`
	TopCauses       []CauseRow `json:"top_causes"`
}

// Compute derives all views over the records matching the department
// filter. FilterAll (or the empty string) selects every record. An empty
// filtered set yields empty aggregates, not an error. The seven views are
// independent of each other.
func Compute(ctx *pipeline.Context, department string) Views {
	records := ctx.Records
	if department != "" && department != FilterAll {
		filtered := make([]pipeline.Record, 0, len(records))
		for _, rec := range records {
			if rec.DepartmentName == department {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	return Views{
		Summary:         summarize(records),
		ByDepartment:    byDepartment(records),
		ByMonth:         byMonth(records),
		TopHomicides:    topHomicides(records),
		LowestMortality: lowestMortality(records),
		ByDepartmentSex: byDepartmentSex(records),
		ByAgeGroup:      byAgeGroup(records),
		TopCauses:       topCauses(records),
	}
}

// countBy groups records by a string key and counts them, preserving the
// key order of first appearance. That order is the documented tie-break
// for the ranked views: deterministic, but otherwise arbitrary.
func countBy(records []pipeline.Record, key func(pipeline.Record) string) []CountRow {
	totals := make(map[string]int, len(records))
	var order []string
	for _, rec := range records {
		k := key(rec)
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k]++
	}

	rows := make([]CountRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, CountRow{Label: k, Total: totals[k]})
	}
	return rows
}

func summarize(records []pipeline.Record) Summary {
	departments := make(map[string]bool)
	municipalities := make(map[string]bool)
	for _, rec := range records {
		departments[rec.DepartmentName] = true
		municipalities[rec.MunicipalityName] = true
	}
	return Summary{
		TotalRecords:   len(records),
		Departments:    len(departments),
		Municipalities: len(municipalities),
	}
}

func byDepartment(records []pipeline.Record) []CountRow {
	rows := countBy(records, func(r pipeline.Record) string { return r.DepartmentName })
	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })
	return rows
}

func byMonth(records []pipeline.Record) []MonthRow {
	totals := make(map[int]int)
	for _, rec := range records {
		totals[rec.Month]++
	}
	months := make([]int, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Ints(months)

	rows := make([]MonthRow, 0, len(months))
	for _, m := range months {
		rows = append(rows, MonthRow{Month: m, Total: totals[m]})
	}
	return rows
}

func topHomicides(records []pipeline.Record) []CountRow {
	homicides := make([]pipeline.Record, 0, len(records))
	for _, rec := range records {
		if homicidePattern.MatchString(rec.CauseCode) {
			homicides = append(homicides, rec)
		}
	}
	rows := countBy(homicides, func(r pipeline.Record) string { return r.MunicipalityName })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return truncate(rows, topHomicideMunicipalities)
}

func lowestMortality(records []pipeline.Record) []CountRow {
	rows := countBy(records, func(r pipeline.Record) string { return r.MunicipalityName })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total < rows[j].Total })
	return truncate(rows, lowestMortalityCount)
}

func byDepartmentSex(records []pipeline.Record) []SexRow {
	type key struct{ department, sex string }
	totals := make(map[key]int)
	var order []key
	for _, rec := range records {
		k := key{department: rec.DepartmentName, sex: rec.Sex}
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k]++
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].department != order[j].department {
			return order[i].department < order[j].department
		}
		return order[i].sex < order[j].sex
	})

	rows := make([]SexRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, SexRow{Department: k.department, Sex: k.sex, Total: totals[k]})
	}
	return rows
}

func byAgeGroup(records []pipeline.Record) []CountRow {
	rows := countBy(records, func(r pipeline.Record) string { return r.AgeGroupLabel })
	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })
	return rows
}

func topCauses(records []pipeline.Record) []CauseRow {
	type key struct{ code, name string }
	totals := make(map[key]int)
	var order []key
	for _, rec := range records {
		k := key{code: rec.CauseCode, name: rec.CauseName}
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k]++
	}

	rows := make([]CauseRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, CauseRow{Code: k.code, Name: k.name, Total: totals[k]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	if len(rows) > topCauseCount {
		rows = rows[:topCauseCount]
	}
	return rows
}

func truncate(rows []CountRow, n int) []CountRow {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
