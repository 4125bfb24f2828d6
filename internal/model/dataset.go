package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Row field names of the dataset input contract
const (
	FieldEquipmentName = "equipment_name"
	FieldEquipmentType = "equipment_type"
)

// CategoryCount is one entry of the categorical aggregate
type CategoryCount struct {
	Name  string
	Count int
}

// Distribution maps category names to counts and keeps the order the
// categories were first seen in, which is the order charts label them.
type Distribution []CategoryCount

// Keys returns category names in order
func (d Distribution) Keys() []string {
	keys := make([]string, len(d))
	for i, c := range d {
		keys[i] = c.Name
	}
	return keys
}

// Total returns the sum of all counts
func (d Distribution) Total() int {
	total := 0
	for _, c := range d {
		total += c.Count
	}
	return total
}

// UnmarshalJSON decodes a JSON object while preserving key order
func (d *Distribution) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("type_distribution: expected object, got %v", tok)
	}

	out := Distribution{}
	index := map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var num json.Number
		if err := dec.Decode(&num); err != nil {
			return fmt.Errorf("type_distribution[%q]: %w", key, err)
		}
		f, err := num.Float64()
		if err != nil {
			return fmt.Errorf("type_distribution[%q]: %w", key, err)
		}
		if f != math.Trunc(f) {
			return fmt.Errorf("type_distribution[%q]: count %s is not a whole number", key, num)
		}

		// A repeated key keeps its first position and takes the last value
		if i, ok := index[key]; ok {
			out[i].Count = int(f)
			continue
		}
		index[key] = len(out)
		out = append(out, CategoryCount{Name: key, Count: int(f)})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*d = out
	return nil
}

// MarshalJSON encodes the distribution as a JSON object in order
func (d Distribution) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, c := range d {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(c.Count))
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// Row is one equipment record. Numeric cells are kept in their raw textual
// form so malformed values survive ingestion and degrade at projection time.
type Row struct {
	Name   string
	Type   string
	Values map[string]string
}

// NewRow builds a row from its name, type and raw numeric cells
func NewRow(name, typ string, values map[string]string) Row {
	if values == nil {
		values = make(map[string]string)
	}
	return Row{Name: name, Type: typ, Values: values}
}

// Raw returns the raw cell text for field
func (r Row) Raw(field string) (string, bool) {
	v, ok := r.Values[field]
	return v, ok
}

// Float returns the cell parsed as a number, or 0 when absent or unparsable
func (r Row) Float(field string) float64 {
	return ParseNumber(r.Values[field])
}

// ParseNumber parses a raw cell as a finite number. Anything else yields 0.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// UnmarshalJSON accepts numeric cells as JSON numbers or strings
func (r *Row) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	row := NewRow("", "", nil)
	for key, raw := range fields {
		text := rawText(raw)
		switch key {
		case FieldEquipmentName:
			row.Name = text
		case FieldEquipmentType:
			row.Type = text
		default:
			row.Values[key] = text
		}
	}
	*r = row
	return nil
}

// MarshalJSON writes numeric-looking cells as numbers
func (r Row) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Values)+2)
	out[FieldEquipmentName] = r.Name
	out[FieldEquipmentType] = r.Type
	for k, v := range r.Values {
		if num, ok := jsonNumber(v); ok {
			out[k] = num
			continue
		}
		out[k] = v
	}
	return json.Marshal(out)
}

func jsonNumber(raw string) (json.Number, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || !json.Valid([]byte(s)) {
		return "", false
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "", false
	}
	return json.Number(s), true
}

func rawText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	return string(trimmed)
}

// Dataset is one immutable snapshot the widgets are projected from
type Dataset struct {
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name,omitempty"`
	Distribution Distribution `json:"type_distribution"`
	Rows         []Row        `json:"data"`
}

// Summary holds headline statistics for a dataset
type Summary struct {
	TotalCount     int     `json:"total_count"`
	AvgFlowrate    float64 `json:"avg_flowrate"`
	AvgPressure    float64 `json:"avg_pressure"`
	AvgTemperature float64 `json:"avg_temperature"`
}
