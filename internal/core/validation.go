package core

// validation.go provides header and row validation for equipment CSV data.
//
// Validation happens at two levels:
//  1. Header validation: Value and Utilization must be present
//  2. Row validation: both cells must be non-empty and numeric
//
// A header failure aborts the run. A row failure only drops that row.

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from the CSV header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ValidationError represents why a single row cannot produce a MaxUtil.
type ValidationError struct {
	Reason  SkipReason
	Field   string // Column name, empty for row-shape problems
	Value   string // The offending raw cell
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// Names are matched exactly: no trimming, no case folding.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[h] = i
	}
	return idx
}

// ValidateHeader checks that every required column exists in the header.
// Returns the header index, or a *SchemaError listing missing columns.
func ValidateHeader(header []string, required ...string) (HeaderIndex, error) {
	idx := MakeHeaderIndex(header)
	var missing []string

	for _, name := range required {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	return idx, nil
}

// Row is a decoded data row bound to its header.
type Row struct {
	Line   int      // 1-based line the row starts on
	Fields []string // Raw cells as read
	width  int      // Header column count
	index  HeaderIndex
}

// NewRow binds a record to a header index of the given width.
func NewRow(line int, fields []string, width int, index HeaderIndex) Row {
	return Row{Line: line, Fields: fields, width: width, index: index}
}

// Get returns the raw cell for a column. ok is false when the header has no
// such column or the row is too short to reach it.
func (r Row) Get(name string) (string, bool) {
	pos, ok := r.index[name]
	if !ok || pos >= len(r.Fields) {
		return "", false
	}
	return r.Fields[pos], true
}

// Record returns the output cells: the original cells, padded to the header
// width, followed by the MaxUtil cell.
func (r Row) Record(maxUtil string) []string {
	out := make([]string, r.width+1)
	copy(out, r.Fields)
	out[r.width] = maxUtil
	return out
}

// evaluate validates a row and computes its MaxUtil.
// A non-nil *ValidationError means the row is skipped.
func (t *Transformer) evaluate(row Row) (MaxUtil, *ValidationError) {
	valueRaw, ok := row.Get(t.opts.ValueColumn)
	if !ok || valueRaw == "" {
		return MaxUtil{}, &ValidationError{
			Reason:  SkipMissingField,
			Field:   t.opts.ValueColumn,
			Message: "required field is empty",
		}
	}

	utilRaw, ok := row.Get(t.opts.UtilizationColumn)
	if !ok || utilRaw == "" {
		return MaxUtil{}, &ValidationError{
			Reason:  SkipMissingField,
			Field:   t.opts.UtilizationColumn,
			Message: "required field is empty",
		}
	}

	value, err := ParseNumber(valueRaw)
	if err != nil {
		return MaxUtil{}, &ValidationError{
			Reason:  SkipInvalidValue,
			Field:   t.opts.ValueColumn,
			Value:   valueRaw,
			Message: "invalid number format",
		}
	}

	util, err := ParseUtilization(utilRaw)
	if err != nil {
		return MaxUtil{}, &ValidationError{
			Reason:  SkipInvalidUtilization,
			Field:   t.opts.UtilizationColumn,
			Value:   utilRaw,
			Message: "invalid number format",
		}
	}

	if len(row.Fields) > row.width {
		return MaxUtil{}, &ValidationError{
			Reason:  SkipExtraFields,
			Message: fmt.Sprintf("row has %d columns, header has %d", len(row.Fields), row.width),
		}
	}

	return ComputeMaxUtil(value, util, t.opts.Digits), nil
}
