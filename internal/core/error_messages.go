// Package core provides the MaxUtil transformation for equipment CSV files.
//
// # Error Codes Reference
//
// This file defines user-friendly messages for errors that abort a run.
// Row-level problems never reach this table: those rows are skipped.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - Not found: Input file or output directory does not exist
//	          Action: Check the -f and -o paths
//	          Patterns: "no such file", "cannot find the"
//
//	FILE002 - Invalid CSV: File could not be decoded as CSV
//	          Action: Ensure the file is comma-separated text
//	          Patterns: "parse error", "wrong number of fields"
//
//	FILE003 - Permission denied: File cannot be read or written
//	          Action: Check file permissions
//	          Patterns: "permission denied", "access is denied"
//
//	FILE004 - No input: No input file was given
//	          Action: Pass the input path with -f
//	          Patterns: "no input file"
//
//	FILE005 - Is a directory: A directory was given where a file is expected
//	          Action: Pass a file path, not a directory
//	          Patterns: "is a directory"
//
//	FILE006 - No output: No output file was given
//	          Action: Pass the output path with -o
//	          Patterns: "no output file"
//
//	FILE007 - Disk full: Output could not be written
//	          Action: Free disk space and run again
//	          Patterns: "no space left"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Run again with LOG_LEVEL=debug for details
//
// Patterns are matched case-insensitively using strings.Contains; the first
// match wins.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	msgNotFound = UserMessage{
		Message: "File or directory not found",
		Action:  "Check the -f and -o paths",
		Code:    "FILE001",
	}
	msgInvalidCSV = UserMessage{
		Message: "File is not a valid CSV",
		Action:  "Ensure the file is comma-separated text",
		Code:    "FILE002",
	}
	msgPermission = UserMessage{
		Message: "Permission denied",
		Action:  "Check file permissions",
		Code:    "FILE003",
	}
)

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// More specific patterns come before general ones.
var errorPatterns = []errorPattern{
	{pattern: "no input file", msg: UserMessage{
		Message: "No input file was given",
		Action:  "Pass the input path with -f",
		Code:    "FILE004",
	}},
	{pattern: "no output file", msg: UserMessage{
		Message: "No output file was given",
		Action:  "Pass the output path with -o",
		Code:    "FILE006",
	}},
	{pattern: "no such file", msg: msgNotFound},
	{pattern: "cannot find the", msg: msgNotFound},
	{pattern: "is a directory", msg: UserMessage{
		Message: "A directory was given where a file is expected",
		Action:  "Pass a file path, not a directory",
		Code:    "FILE005",
	}},
	{pattern: "permission denied", msg: msgPermission},
	{pattern: "access is denied", msg: msgPermission},
	{pattern: "parse error", msg: msgInvalidCSV},
	{pattern: "wrong number of fields", msg: msgInvalidCSV},
	{pattern: "no space left", msg: UserMessage{
		Message: "Output could not be written, disk is full",
		Action:  "Free disk space and run again",
		Code:    "FILE007",
	}},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Run again with LOG_LEVEL=debug for details",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If no pattern matches, the ERR000 fallback is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// UserError pairs a technical error with its user-friendly message.
// The original error is preserved for logging.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError creates a UserError by mapping a technical error.
// Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
