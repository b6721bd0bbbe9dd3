package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "single digit", input: "7", want: 7},
		{name: "multi digit", input: "467", want: 467},
		{name: "surrounding spaces", input: " 12 ", want: 12},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToInt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty input", input: "", want: []string{}},
		{name: "trailing newline", input: "ab\ncd\n", want: []string{"ab", "cd"}},
		{name: "windows line endings", input: "ab\r\ncd\r\n", want: []string{"ab", "cd"}},
		{name: "trailing blank lines dropped", input: "ab\ncd\n\n\r\n", want: []string{"ab", "cd"}},
		{name: "inner blank lines kept", input: "7..\n\n.*.", want: []string{"7..", "", ".*."}},
		{name: "leading blank line kept", input: "\nab", want: []string{"", "ab"}},
		{name: "only newlines", input: "\n\n", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Lines(tt.input)); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
