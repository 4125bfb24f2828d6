package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ytget/chemviz/internal/model"
)

const sampleJSON = `{
	"type_distribution": {"Valve": 2, "Pump": 3, "Reactor": 1},
	"data": [
		{"equipment_name": "P-1", "equipment_type": "Pump", "flowrate": 120.5, "pressure": "5.2", "temperature": 110},
		{"equipment_name": "V-1", "equipment_type": "Valve", "flowrate": "n/a", "pressure": 3, "temperature": null}
	]
}`

func TestParseJSON_PreservesDistributionOrder(t *testing.T) {
	ds, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	keys := ds.Distribution.Keys()
	expected := []string{"Valve", "Pump", "Reactor"}
	for i, k := range expected {
		if keys[i] != k {
			t.Errorf("Key %d: expected %s, got %s", i, k, keys[i])
		}
	}
	if ds.Distribution.Total() != 6 {
		t.Errorf("Expected total 6, got %d", ds.Distribution.Total())
	}
	if ds.ID == "" {
		t.Error("Expected a snapshot id")
	}
}

func TestParseJSON_KeepsRawCells(t *testing.T) {
	ds, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(ds.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(ds.Rows))
	}

	p1 := ds.Rows[0]
	if p1.Name != "P-1" || p1.Type != "Pump" {
		t.Errorf("Unexpected row identity: %+v", p1)
	}
	if p1.Float("flowrate") != 120.5 || p1.Float("pressure") != 5.2 {
		t.Errorf("Unexpected numeric cells: %+v", p1.Values)
	}

	v1 := ds.Rows[1]
	if raw, _ := v1.Raw("flowrate"); raw != "n/a" {
		t.Errorf("Expected raw n/a, got %q", raw)
	}
	if v1.Float("flowrate") != 0 || v1.Float("temperature") != 0 {
		t.Errorf("Expected malformed cells to read as 0, got %+v", v1.Values)
	}
}

func TestParseJSON_DerivesMissingDistribution(t *testing.T) {
	ds, err := ParseJSON([]byte(`{"data": [
		{"equipment_type": "Pump"}, {"equipment_type": "Valve"}, {"equipment_type": "Pump"}, {}
	]}`))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	expected := model.Distribution{{Name: "Pump", Count: 2}, {Name: "Valve", Count: 1}, {Name: UnknownType, Count: 1}}
	if len(ds.Distribution) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, ds.Distribution)
	}
	for i := range expected {
		if ds.Distribution[i] != expected[i] {
			t.Errorf("Entry %d: expected %+v, got %+v", i, expected[i], ds.Distribution[i])
		}
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	for _, payload := range []string{`[]`, `{"type_distribution": [1,2]}`, `nope`} {
		if _, err := ParseJSON([]byte(payload)); err == nil {
			t.Errorf("Expected error for %s", payload)
		}
	}
}

func TestParseCSV(t *testing.T) {
	csvData := "Equipment Name,Equipment-Type,Flowrate,Pressure,Temperature\n" +
		"P-1,Pump,100,5,90\n" +
		"\n" +
		"R-1,Reactor,abc,7.5,300\n"

	ds, err := ParseCSV([]byte(csvData))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(ds.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(ds.Rows))
	}
	if ds.Rows[1].Name != "R-1" || ds.Rows[1].Type != "Reactor" {
		t.Errorf("Unexpected row: %+v", ds.Rows[1])
	}
	if ds.Rows[1].Float("pressure") != 7.5 || ds.Rows[1].Float("flowrate") != 0 {
		t.Errorf("Unexpected values: %+v", ds.Rows[1].Values)
	}
	if len(ds.Distribution) != 2 || ds.Distribution[0].Name != "Pump" {
		t.Errorf("Unexpected derived distribution: %+v", ds.Distribution)
	}
}

func TestParseCSV_Empty(t *testing.T) {
	if _, err := ParseCSV(nil); err == nil {
		t.Error("Expected error for missing header")
	}
}

func writeWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"equipment_name", "equipment_type", "flowrate", "pressure", "temperature"},
		{"HX-1", "Heat Exchanger", 80, 2.5, 150},
		{"P-2", "Pump", 95.5, 4, 60},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		r := row
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equipment.xlsx")
	writeWorkbook(t, path)

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ds.Name != "equipment.xlsx" {
		t.Errorf("Expected name equipment.xlsx, got %s", ds.Name)
	}
	if len(ds.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(ds.Rows))
	}
	if ds.Rows[1].Float("flowrate") != 95.5 {
		t.Errorf("Expected 95.5, got %v", ds.Rows[1].Float("flowrate"))
	}
	if ds.Distribution[0].Name != "Heat Exchanger" {
		t.Errorf("Unexpected distribution: %+v", ds.Distribution)
	}
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(ds.Rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(ds.Rows))
	}
}

func TestLoad_Unsupported(t *testing.T) {
	_, err := Load("report.pdf")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	ds, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	s := Summarize(ds)
	if s.TotalCount != 2 {
		t.Errorf("Expected 2 rows, got %d", s.TotalCount)
	}
	if s.AvgFlowrate != 60.25 {
		t.Errorf("Expected avg flowrate 60.25, got %v", s.AvgFlowrate)
	}
	if s.AvgPressure != 4.1 {
		t.Errorf("Expected avg pressure 4.1, got %v", s.AvgPressure)
	}
	if s.AvgTemperature != 55 {
		t.Errorf("Expected avg temperature 55, got %v", s.AvgTemperature)
	}

	if empty := Summarize(nil); empty.TotalCount != 0 {
		t.Errorf("Expected empty summary, got %+v", empty)
	}
}
