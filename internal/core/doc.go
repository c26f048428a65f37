// Package core provides the MaxUtil transformation for equipment CSV files.
//
// This package holds all domain logic independent of the command line. It can
// be used by the CLI, by tests, or embedded in another tool without
// modification.
//
// # Pipeline
//
// A run is a single pass over the input:
//
//  1. The input is wrapped with BOM stripping and byte counting
//  2. The header is validated: Value and Utilization must be present
//  3. The output header (input header + MaxUtil) is written
//  4. Each data row is parsed; rows with missing or non-numeric
//     Value/Utilization are skipped
//  5. MaxUtil = Value / Utilization * 100, rounded to [Options.Digits]
//  6. The row is written with its original cells plus MaxUtil
//
// # Header Failures
//
// A header missing a required column is not an error: [Transformer.TransformFile]
// returns a [Result] with HeaderValid=false and creates no output file. The
// caller decides how to report it (the CLI prints [IncorrectDataMessage]).
//
// # Row Skips
//
// Rows that cannot produce a MaxUtil are dropped silently. Each drop is
// counted by [SkipReason] in [Result.Skipped] and logged at debug level.
//
// # Error Handling
//
// Only I/O failures are returned as errors. Technical errors are mapped to
// user-friendly messages using [MapError]:
//
//   - FILE001-FILE007: File errors (not found, invalid CSV, permissions, disk full)
//   - ERR000: Unknown error
package core
