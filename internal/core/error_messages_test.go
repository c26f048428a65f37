package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "missing file maps correctly",
			err:         errors.New("open input: open data.csv: no such file or directory"),
			wantCode:    "FILE001",
			wantMessage: "File or directory not found",
		},
		{
			name:        "windows missing file maps correctly",
			err:         errors.New("open data.csv: The system cannot find the file specified."),
			wantCode:    "FILE001",
			wantMessage: "File or directory not found",
		},
		{
			name:        "csv parse error maps correctly",
			err:         errors.New("read row: parse error on line 3, column 5: bare \" in non-quoted field"),
			wantCode:    "FILE002",
			wantMessage: "File is not a valid CSV",
		},
		{
			name:        "permission denied maps correctly",
			err:         errors.New("create output: open out.csv: permission denied"),
			wantCode:    "FILE003",
			wantMessage: "Permission denied",
		},
		{
			name:        "no input path maps correctly",
			err:         ErrNoInputPath,
			wantCode:    "FILE004",
			wantMessage: "No input file was given",
		},
		{
			name:        "directory maps correctly",
			err:         errors.New("read header: read /tmp: is a directory"),
			wantCode:    "FILE005",
			wantMessage: "A directory was given where a file is expected",
		},
		{
			name:        "no output path maps correctly",
			err:         ErrNoOutputPath,
			wantCode:    "FILE006",
			wantMessage: "No output file was given",
		},
		{
			name:        "disk full maps correctly",
			err:         errors.New("flush output: write out.csv: no space left on device"),
			wantCode:    "FILE007",
			wantMessage: "Output could not be written, disk is full",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("PERMISSION DENIED"),
			wantCode:    "FILE003",
			wantMessage: "Permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	got := FormatUserError(ErrNoInputPath)
	want := "No input file was given (Code: FILE004). Pass the input path with -f"
	if got != want {
		t.Errorf("FormatUserError() = %q, want %q", got, want)
	}

	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}
}

func TestNewUserError(t *testing.T) {
	if NewUserError(nil) != nil {
		t.Error("NewUserError(nil) should return nil")
	}

	technical := fmt.Errorf("create output: %w", errors.New("permission denied"))
	ue := NewUserError(technical)

	if ue.Error() != "Permission denied" {
		t.Errorf("Error() = %q", ue.Error())
	}
	if ue.User.Code != "FILE003" {
		t.Errorf("Code = %q, want FILE003", ue.User.Code)
	}
	if !errors.Is(ue, technical) {
		t.Error("UserError should unwrap to the technical error")
	}
}
