package main

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in         string
		production bool
		want       zerolog.Level
		known      bool
	}{
		{"debug", false, zerolog.DebugLevel, true},
		{"warning", false, zerolog.WarnLevel, true},
		{"disabled", true, zerolog.Disabled, true},
		{"", false, zerolog.InfoLevel, true},
		{"", true, zerolog.WarnLevel, true},
		{"verbose", false, zerolog.InfoLevel, false},
	}

	for _, tt := range tests {
		got, known := parseLogLevel(tt.in, tt.production)
		if got != tt.want || known != tt.known {
			t.Errorf("parseLogLevel(%q, %v) = (%v, %v), expected (%v, %v)",
				tt.in, tt.production, got, known, tt.want, tt.known)
		}
	}
}
