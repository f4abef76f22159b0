package pipeline

import (
	"testing"

	"github.com/mesh-intelligence/mortalidash/internal/dataset"
)

func causeTable(rows ...dataset.Row) dataset.Table {
	return dataset.Table{Columns: []string{"CODIGO", "NOMBRE"}, Rows: rows}
}

func TestJoinCauses_Match(t *testing.T) {
	records := []Record{{CauseCode: "X95"}}
	causes := causeTable(dataset.Row{"CODIGO": " X95 ", "NOMBRE": " Agresión con disparo "})

	JoinCauses(records, causes)
	if records[0].CauseName != "Agresión con disparo" {
		t.Errorf("CauseName = %q, want joined description", records[0].CauseName)
	}
}

func TestJoinCauses_NoMatchPassesCodeThrough(t *testing.T) {
	records := []Record{{CauseCode: "X95"}}
	causes := causeTable(dataset.Row{"CODIGO": "A00", "NOMBRE": "Cólera"})

	JoinCauses(records, causes)
	if records[0].CauseName != "X95" {
		t.Errorf("CauseName = %q, want pass-through X95", records[0].CauseName)
	}
}

func TestJoinCauses_MissingColumnSkipsJoin(t *testing.T) {
	records := []Record{
		{CauseCode: "X95"},
		{CauseCode: ""},
	}
	// Name column present, code column absent: join skipped.
	causes := dataset.Table{
		Columns: []string{"NOMBRE"},
		Rows:    []dataset.Row{{"NOMBRE": "Agresión"}},
	}

	JoinCauses(records, causes)
	if records[0].CauseName != "X95" {
		t.Errorf("CauseName = %q, want raw code", records[0].CauseName)
	}
	if records[1].CauseName != CauseUnclassified {
		t.Errorf("empty code CauseName = %q, want %q", records[1].CauseName, CauseUnclassified)
	}
}

func TestJoinCauses_UnnamedFirstColumn(t *testing.T) {
	// Some releases of the cause table ship the code in an unnamed index
	// column; the loader names it "Unnamed: 0".
	records := []Record{{CauseCode: "X95"}}
	causes := dataset.Table{
		Columns: []string{"Unnamed: 0", "Nombre"},
		Rows:    []dataset.Row{{"Unnamed: 0": "X95", "Nombre": "Agresión con disparo"}},
	}

	JoinCauses(records, causes)
	if records[0].CauseName != "Agresión con disparo" {
		t.Errorf("CauseName = %q, want joined description", records[0].CauseName)
	}
}
