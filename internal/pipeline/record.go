// Package pipeline turns the three raw source tables into the canonical
// in-memory record table the dashboard aggregates over. The pipeline runs
// once at startup; the resulting Context is never mutated afterwards.
package pipeline

// Sentinel values substituted when source data is absent, unparseable, or
// unmatched by a join. They are user-visible labels and stay in the
// dataset's language.
const (
	UnknownDepartment   = "Departamento desconocido"
	UnknownMunicipality = "Municipio desconocido"
	SexUnavailable      = "No disponible"
	CauseUnclassified   = "No clasificada"
	AgeNoInfo           = "Sin info"
)

// Candidate column names per semantic field, in priority order. Dataset
// releases rename these; the first name present wins.
var (
	mortalityDeptCodeCols  = []string{"COD_DEPARTAMENTO", "COD_DPTO", "COD_DEPTO", "COD_DANE"}
	mortalityMpioCodeCols  = []string{"COD_MUNICIPIO", "COD_MPIO", "COD_MPIO_A", "COD_MUN"}
	mortalitySexCols       = []string{"SEXO"}
	mortalityMonthCols     = []string{"MES"}
	mortalityAgeGroupCols  = []string{"GRUPO_EDAD1", "GRUPO_EDAD"}
	mortalityCauseCodeCols = []string{"COD_MUERTE", "COD_MUER"}

	geoDeptCodeCols = []string{"COD_DEPARTAMENTO", "COD_DEPTO", "COD_DANE"}
	geoMpioCodeCols = []string{"COD_MUNICIPIO", "COD_MPIO"}
	geoDeptNameCols = []string{"DEPARTAMENTO", "NOMBRE_DEPARTAMENTO", "NOMBRE_DPT"}
	geoMpioNameCols = []string{"MUNICIPIO", "NOMBRE_MUNICIPIO"}

	causeCodeCols = []string{"CÓDIGO", "CODIGO", "Código", "Código_CIE", "Código_CIE10", "Unnamed: 0"}
	causeNameCols = []string{"NOMBRE", "NOMBRE_CAUSA", "DESCRIPCION", "NOMBRE_CIE", "Descripcion", "Nombre"}
)

// Record is one normalized mortality row. Every field is populated after
// Build: missing source data is replaced by the explicit defaults above,
// never left empty-typed.
type Record struct {
	DepartmentCode   string `json:"department_code"`
	MunicipalityCode string `json:"municipality_code"`
	Month            int    `json:"month"` // 0 means unknown month
	Sex              string `json:"sex"`
	AgeGroupCode     string `json:"age_group_code"`
	CauseCode        string `json:"cause_code"`

	// Filled by the joins and the age labeler.
	DepartmentName   string `json:"department_name"`
	MunicipalityName string `json:"municipality_name"`
	CauseName        string `json:"cause_name"`
	AgeGroupLabel    string `json:"age_group_label"`
}
