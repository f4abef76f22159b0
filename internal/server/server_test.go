package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mesh-intelligence/mortalidash/internal/dataset"
	"github.com/mesh-intelligence/mortalidash/internal/pipeline"
	"github.com/mesh-intelligence/mortalidash/internal/views"
)

func testContext() *pipeline.Context {
	mortality := dataset.Table{
		Columns: []string{"COD_DPTO", "COD_MUNICIPIO", "SEXO", "MES", "GRUPO_EDAD1", "COD_MUERTE"},
		Rows: []dataset.Row{
			{"COD_DPTO": "05", "COD_MUNICIPIO": "05001", "SEXO": "Masculino",
				"MES": "1", "GRUPO_EDAD1": "12", "COD_MUERTE": "X95"},
			{"COD_DPTO": "08", "COD_MUNICIPIO": "08001", "SEXO": "Femenino",
				"MES": "2", "GRUPO_EDAD1": "20", "COD_MUERTE": "A00"},
		},
	}
	geo := dataset.Table{
		Columns: []string{"COD_DEPARTAMENTO", "COD_MUNICIPIO", "DEPARTAMENTO", "MUNICIPIO"},
		Rows: []dataset.Row{
			{"COD_DEPARTAMENTO": "05", "COD_MUNICIPIO": "05001", "DEPARTAMENTO": "Antioquia", "MUNICIPIO": "Medellín"},
			{"COD_DEPARTAMENTO": "08", "COD_MUNICIPIO": "08001", "DEPARTAMENTO": "Atlántico", "MUNICIPIO": "Barranquilla"},
		},
	}
	return pipeline.Build(mortality, geo, dataset.Table{})
}

func TestHandleDepartments(t *testing.T) {
	ts := httptest.NewServer(New(testContext()).Handler())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/api/departments")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	var options []string
	if err := json.NewDecoder(res.Body).Decode(&options); err != nil {
		t.Fatal(err)
	}
	want := []string{views.FilterAll, "Antioquia", "Atlántico"}
	if len(options) != len(want) {
		t.Fatalf("options = %v, want %v", options, want)
	}
	for i := range want {
		if options[i] != want[i] {
			t.Fatalf("options = %v, want %v", options, want)
		}
	}
}

func TestHandleViews_Filtered(t *testing.T) {
	ts := httptest.NewServer(New(testContext()).Handler())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/api/views?departamento=Antioquia")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	var v views.Views
	if err := json.NewDecoder(res.Body).Decode(&v); err != nil {
		t.Fatal(err)
	}
	if v.Summary.TotalRecords != 1 {
		t.Errorf("TotalRecords = %d, want 1", v.Summary.TotalRecords)
	}
	if len(v.ByDepartment) != 1 || v.ByDepartment[0].Label != "Antioquia" {
		t.Errorf("ByDepartment = %v, want only Antioquia", v.ByDepartment)
	}
}

func TestHandleViews_UnknownDepartmentIsEmptyNotError(t *testing.T) {
	ts := httptest.NewServer(New(testContext()).Handler())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/api/views?departamento=Vaup%C3%A9s")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	var v views.Views
	if err := json.NewDecoder(res.Body).Decode(&v); err != nil {
		t.Fatal(err)
	}
	if v.Summary.TotalRecords != 0 {
		t.Errorf("TotalRecords = %d, want 0", v.Summary.TotalRecords)
	}
}

func TestHandleIndex(t *testing.T) {
	ts := httptest.NewServer(New(testContext()).Handler())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`id="dept"`, "Antioquia", "Todos"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("index page missing %q", want)
		}
	}
}

func TestHandleExport(t *testing.T) {
	ts := httptest.NewServer(New(testContext()).Handler())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/api/export.xlsx?departamento=_ALL_")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	if got := res.Header.Get("Content-Type"); !strings.Contains(got, "spreadsheetml") {
		t.Errorf("Content-Type = %q, want xlsx", got)
	}
}
