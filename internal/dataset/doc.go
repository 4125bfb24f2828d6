// Package dataset loads equipment datasets from JSON, CSV and XLSX files into
// immutable snapshots and computes their headline statistics. Numeric cells
// are kept raw so the chart projection can apply its own degradation rules.
package dataset
