// Geography join: attach department and municipality names.
package pipeline

import (
	"strings"

	"github.com/mesh-intelligence/mortalidash/internal/dataset"
)

// geoKey is the composite join key of the geography table.
type geoKey struct {
	dept string
	mpio string
}

type geoNames struct {
	department   string
	municipality string
}

// JoinGeography left-joins records against the geography table on
// (department code, municipality code), exact string equality after
// trimming. If any of the four geography columns is unresolved the join is
// skipped wholesale and every record receives the unknown sentinels; this
// is a global fallback, not a per-row one. When duplicate keys appear in
// the geography table the first row wins.
func JoinGeography(records []Record, geo dataset.Table) {
	deptCodeCol, ok1 := dataset.ResolveColumn(geo, geoDeptCodeCols...)
	mpioCodeCol, ok2 := dataset.ResolveColumn(geo, geoMpioCodeCols...)
	deptNameCol, ok3 := dataset.ResolveColumn(geo, geoDeptNameCols...)
	mpioNameCol, ok4 := dataset.ResolveColumn(geo, geoMpioNameCols...)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		for i := range records {
			records[i].DepartmentName = UnknownDepartment
			records[i].MunicipalityName = UnknownMunicipality
		}
		return
	}

	index := make(map[geoKey]geoNames, geo.Len())
	for _, row := range geo.Rows {
		key := geoKey{
			dept: strings.TrimSpace(row[deptCodeCol]),
			mpio: strings.TrimSpace(row[mpioCodeCol]),
		}
		if _, dup := index[key]; dup {
			continue
		}
		index[key] = geoNames{
			department:   strings.TrimSpace(row[deptNameCol]),
			municipality: strings.TrimSpace(row[mpioNameCol]),
		}
	}

	for i := range records {
		key := geoKey{dept: records[i].DepartmentCode, mpio: records[i].MunicipalityCode}
		names, ok := index[key]
		if !ok {
			records[i].DepartmentName = UnknownDepartment
			records[i].MunicipalityName = UnknownMunicipality
			continue
		}
		records[i].DepartmentName = names.department
		records[i].MunicipalityName = names.municipality
	}
}
