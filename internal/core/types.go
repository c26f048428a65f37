package core

import "time"

// IncorrectDataMessage is the diagnostic shown when the input header lacks a
// required column.
const IncorrectDataMessage = "Check your input_file! Incorrect data!"

// Default column names and precision.
const (
	DefaultValueColumn       = "Value"
	DefaultUtilizationColumn = "Utilization"
	DefaultMaxUtilColumn     = "MaxUtil"
	DefaultDigits            = 2
)

// Options configures a Transformer.
type Options struct {
	ValueColumn       string // Numerator column (exact, case-sensitive)
	UtilizationColumn string // Denominator column, may carry a trailing '%'
	MaxUtilColumn     string // Appended output column
	Digits            int    // Decimal places MaxUtil is rounded to
	UseCRLF           bool   // Terminate output lines with \r\n
}

// DefaultOptions returns the options used by the maxutil CLI.
func DefaultOptions() Options {
	return Options{
		ValueColumn:       DefaultValueColumn,
		UtilizationColumn: DefaultUtilizationColumn,
		MaxUtilColumn:     DefaultMaxUtilColumn,
		Digits:            DefaultDigits,
		UseCRLF:           true,
	}
}

// HeaderIndex maps column names to their position in the CSV row.
// When a name repeats, the last position wins.
type HeaderIndex map[string]int

// SkipReason explains why a data row was left out of the output.
type SkipReason string

const (
	SkipMissingField       SkipReason = "missing_field"
	SkipInvalidValue       SkipReason = "invalid_value"
	SkipInvalidUtilization SkipReason = "invalid_utilization"
	SkipExtraFields        SkipReason = "extra_fields"
)

// Summary describes the MaxUtil values written during a run.
// Only finite values are included.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Result contains the outcome of a transformation run.
type Result struct {
	HeaderValid    bool
	MissingColumns []string // Required columns absent from the header
	RowsRead       int      // Data rows decoded (header excluded)
	RowsWritten    int
	Skipped        map[SkipReason]int
	BytesRead      int64
	Duration       time.Duration
	Summary        *Summary // nil when no finite MaxUtil was written
}

// SkippedTotal returns the number of data rows left out of the output.
func (r Result) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}
