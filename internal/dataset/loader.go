package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ytget/chemviz/internal/logging"
	"github.com/ytget/chemviz/internal/model"
)

// Supported file extensions
const (
	ExtJSON = ".json"
	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
)

// UnknownType is used for rows without an equipment type
const UnknownType = "Unknown"

// ErrUnsupportedFormat is returned for file extensions without a loader
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Load reads a dataset file, choosing the parser by extension
func Load(path string) (*model.Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name := filepath.Base(path)

	var (
		ds  *model.Dataset
		err error
	)
	switch ext {
	case ExtJSON:
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			ds, err = ParseJSON(data)
		}
	case ExtCSV:
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			ds, err = ParseCSV(data)
		}
	case ExtXLSX:
		ds, err = LoadXLSX(path)
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}

	ds.Name = name
	logging.Infof("loaded dataset %s (%d rows, %d types)", name, len(ds.Rows), len(ds.Distribution))
	return ds, nil
}

// ParseJSON decodes the dataset input contract:
// {"type_distribution": {...}, "data": [{...}, ...]}
func ParseJSON(data []byte) (*model.Dataset, error) {
	var ds model.Dataset
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return finalize(&ds), nil
}

// ParseCSV reads rows from CSV with a header line. Header names are matched
// case-insensitively with spaces and dashes treated as underscores.
func ParseCSV(data []byte) (*model.Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logging.Debugf("skipping malformed CSV row: %v", err)
			continue
		}
		records = append(records, record)
	}

	return finalize(&model.Dataset{Rows: rowsFromTable(headers, records)}), nil
}

// LoadXLSX reads rows from the first sheet of a workbook
func LoadXLSX(path string) (*model.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return parseWorkbook(f)
}

func parseWorkbook(f *excelize.File) (*model.Dataset, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	table, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(table) == 0 {
		return finalize(&model.Dataset{}), nil
	}

	return finalize(&model.Dataset{Rows: rowsFromTable(table[0], table[1:])}), nil
}

func rowsFromTable(headers []string, records [][]string) []model.Row {
	keys := make([]string, len(headers))
	for i, h := range headers {
		keys[i] = toSnakeCase(strings.TrimSpace(h))
	}

	rows := make([]model.Row, 0, len(records))
	for _, record := range records {
		if isBlank(record) {
			continue
		}
		row := model.NewRow("", "", nil)
		for i, val := range record {
			if i >= len(keys) || keys[i] == "" {
				continue
			}
			val = strings.TrimSpace(val)
			switch keys[i] {
			case model.FieldEquipmentName:
				row.Name = val
			case model.FieldEquipmentType:
				row.Type = val
			default:
				row.Values[keys[i]] = val
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// finalize stamps a snapshot id and fills in a missing distribution
func finalize(ds *model.Dataset) *model.Dataset {
	if ds.ID == "" {
		ds.ID = uuid.NewString()
	}
	if len(ds.Distribution) == 0 {
		ds.Distribution = DeriveDistribution(ds.Rows)
	}
	return ds
}

// DeriveDistribution counts rows per equipment type in first-seen order
func DeriveDistribution(rows []model.Row) model.Distribution {
	dist := model.Distribution{}
	index := make(map[string]int)
	for _, row := range rows {
		key := row.Type
		if key == "" {
			key = UnknownType
		}
		i, ok := index[key]
		if !ok {
			i = len(dist)
			index[key] = i
			dist = append(dist, model.CategoryCount{Name: key})
		}
		dist[i].Count++
	}
	return dist
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// toSnakeCase converts "Equipment Name" to "equipment_name"
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
