package integration

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/mortalidash/internal/dataset"
	"github.com/mesh-intelligence/mortalidash/internal/pipeline"
	"github.com/mesh-intelligence/mortalidash/internal/server"
	sqlitex "github.com/mesh-intelligence/mortalidash/internal/sqlite"
	"github.com/mesh-intelligence/mortalidash/internal/views"
)

// buildTestContext writes the three datasets as xlsx files and runs the
// whole pipeline over them: three mortality rows across two departments,
// a geography table covering both, and one classified cause code.
func buildTestContext(t *testing.T) *pipeline.Context {
	t.Helper()
	dir := t.TempDir()

	mortality := writeWorkbook(t, dir, "NoFetal2019.xlsx",
		[]any{"COD_DPTO", "COD_MUNICIPIO", "SEXO", "MES", "GRUPO_EDAD1", "COD_MUERTE"},
		[][]any{
			{"05", "05001", "Masculino", 1, "12", "X95"},
			{"05", "05001", "Femenino", 2, 7.0, "A00"},
			{"08", "08001", "Masculino", 1, "12", "X91"},
		})
	geography := writeWorkbook(t, dir, "Divipola.xlsx",
		[]any{"COD_DEPARTAMENTO", "COD_MUNICIPIO", "DEPARTAMENTO", "MUNICIPIO"},
		[][]any{
			{"05", "05001", "Antioquia", "Medellín"},
			{"08", "08001", "Atlántico", "Barranquilla"},
		})
	causes := writeWorkbook(t, dir, "CodigosDeMuerte.xlsx",
		[]any{"CODIGO", "NOMBRE"},
		[][]any{
			{"X95", "Agresión con disparo de otras armas de fuego"},
		})

	return pipeline.Build(
		dataset.Load(mortality),
		dataset.Load(geography),
		dataset.Load(causes),
	)
}

func TestPipeline_EndToEnd(t *testing.T) {
	ctx := buildTestContext(t)
	require.Len(t, ctx.Records, 3)
	assert.Equal(t, []string{"Antioquia", "Atlántico"}, ctx.Departments)

	// Excel numeric cells arrive as strings and still coerce: month 1,
	// age group "7" from 7.0.
	assert.Equal(t, 1, ctx.Records[0].Month)
	assert.Equal(t, "Primera infancia 1-4", ctx.Records[1].AgeGroupLabel)

	// The classified cause resolves, the unclassified one passes through.
	assert.Equal(t, "Agresión con disparo de otras armas de fuego", ctx.Records[0].CauseName)
	assert.Equal(t, "A00", ctx.Records[1].CauseName)

	all := views.Compute(ctx, views.FilterAll)
	require.Len(t, all.ByDepartment, 2)
	assert.Equal(t, 3, all.ByDepartment[0].Total+all.ByDepartment[1].Total)
	assert.Equal(t, 3, all.Summary.TotalRecords)

	antioquia := views.Compute(ctx, "Antioquia")
	require.Len(t, antioquia.ByDepartment, 1)
	assert.Equal(t, "Antioquia", antioquia.ByDepartment[0].Label)
	assert.Equal(t, 2, antioquia.ByDepartment[0].Total)

	// Homicide codes X95 and X91 land in the violence ranking.
	require.Len(t, all.TopHomicides, 2)
	assert.Equal(t, 1, all.TopHomicides[0].Total)
}

func TestPipeline_MissingDatasetsDegrade(t *testing.T) {
	dir := t.TempDir()

	mortality := writeWorkbook(t, dir, "NoFetal2019.xlsx",
		[]any{"COD_DPTO", "COD_MUNICIPIO", "SEXO", "MES", "GRUPO_EDAD1", "COD_MUERTE"},
		[][]any{{"05", "05001", "Masculino", 1, "12", "X95"}})

	// Geography and cause files absent: the loader substitutes empty
	// tables and the joins fall back to sentinels.
	ctx := pipeline.Build(
		dataset.Load(mortality),
		dataset.Load(filepath.Join(dir, "Divipola.xlsx")),
		dataset.Load(filepath.Join(dir, "CodigosDeMuerte.xlsx")),
	)
	require.Len(t, ctx.Records, 1)
	assert.Equal(t, pipeline.UnknownDepartment, ctx.Records[0].DepartmentName)
	assert.Equal(t, pipeline.UnknownMunicipality, ctx.Records[0].MunicipalityName)
	assert.Equal(t, "X95", ctx.Records[0].CauseName)

	v := views.Compute(ctx, views.FilterAll)
	assert.Equal(t, 1, v.Summary.TotalRecords)
	require.Len(t, v.ByDepartment, 1)
	assert.Equal(t, pipeline.UnknownDepartment, v.ByDepartment[0].Label)
}

func TestDashboardAPI_EndToEnd(t *testing.T) {
	ctx := buildTestContext(t)
	ts := httptest.NewServer(server.New(ctx).Handler())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/api/departments")
	require.NoError(t, err)
	defer res.Body.Close()

	var departments []string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&departments))
	assert.Equal(t, []string{views.FilterAll, "Antioquia", "Atlántico"}, departments)

	res2, err := http.Get(ts.URL + "/api/views?departamento=Atl%C3%A1ntico")
	require.NoError(t, err)
	defer res2.Body.Close()

	var v views.Views
	require.NoError(t, json.NewDecoder(res2.Body).Decode(&v))
	assert.Equal(t, 1, v.Summary.TotalRecords)
	require.Len(t, v.TopCauses, 1)
	assert.Equal(t, "X91", v.TopCauses[0].Code)
}

func TestSQLiteExport_EndToEnd(t *testing.T) {
	ctx := buildTestContext(t)
	dataDir := t.TempDir()

	snapshotID, err := sqlitex.Export(dataDir, views.FilterAll, ctx.Records)
	require.NoError(t, err)
	require.NotEmpty(t, snapshotID)

	db, err := sql.Open("sqlite", filepath.Join(dataDir, sqlitex.DBFileName))
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM records WHERE snapshot_id = ?`, snapshotID).Scan(&count))
	assert.Equal(t, len(ctx.Records), count)

	// The joined names survive the roundtrip.
	var name string
	require.NoError(t, db.QueryRow(
		`SELECT department_name FROM records WHERE cause_code = 'X95'`).Scan(&name))
	assert.Equal(t, "Antioquia", name)
}
