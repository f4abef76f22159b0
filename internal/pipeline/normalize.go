// Record normalization: column resolution, type coercion, defaults.
package pipeline

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/mortalidash/internal/dataset"
)

// Normalize builds one Record per mortality row, in input order. Each
// semantic column is resolved against its synonym list once for the whole
// table; an unresolved column applies the field default to every record
// rather than failing.
func Normalize(mortality dataset.Table) []Record {
	deptCol, hasDept := dataset.ResolveColumn(mortality, mortalityDeptCodeCols...)
	mpioCol, hasMpio := dataset.ResolveColumn(mortality, mortalityMpioCodeCols...)
	sexCol, hasSex := dataset.ResolveColumn(mortality, mortalitySexCols...)
	monthCol, hasMonth := dataset.ResolveColumn(mortality, mortalityMonthCols...)
	ageCol, hasAge := dataset.ResolveColumn(mortality, mortalityAgeGroupCols...)
	causeCol, hasCause := dataset.ResolveColumn(mortality, mortalityCauseCodeCols...)

	records := make([]Record, 0, mortality.Len())
	for _, row := range mortality.Rows {
		rec := Record{Sex: SexUnavailable}
		if hasDept {
			rec.DepartmentCode = strings.TrimSpace(row[deptCol])
		}
		if hasMpio {
			rec.MunicipalityCode = strings.TrimSpace(row[mpioCol])
		}
		if hasSex {
			rec.Sex = strings.TrimSpace(row[sexCol])
		}
		if hasMonth {
			rec.Month = parseMonth(row[monthCol])
		}
		if hasAge {
			rec.AgeGroupCode = strings.TrimSpace(row[ageCol])
		}
		if hasCause {
			rec.CauseCode = strings.TrimSpace(row[causeCol])
		}
		records = append(records, rec)
	}
	return records
}

// parseMonth coerces a raw month cell to an integer in [0,12]. Cells may
// carry "3", "3.0", or garbage; anything unparseable or out of range
// becomes 0, the sentinel for "unknown month".
func parseMonth(raw string) int {
	s := strings.TrimSpace(raw)
	m, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		m = int(f)
	}
	if m < 0 || m > 12 {
		return 0
	}
	return m
}
