package common

import (
	"errors"
	"testing"
)

func TestParseBuildMode(t *testing.T) {
	tests := []struct {
		in      string
		want    BuildMode
		wantErr bool
	}{
		{"", BuildDevelopment, false},
		{"development", BuildDevelopment, false},
		{"Debug", BuildDevelopment, false},
		{"production", BuildProduction, false},
		{" release ", BuildProduction, false},
		{"staging", BuildDevelopment, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBuildMode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBuildMode) {
					t.Errorf("ParseBuildMode(%q) error = %v, want ErrInvalidBuildMode", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBuildMode(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseBuildMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildMode_IsDevelopment(t *testing.T) {
	if !BuildDevelopment.IsDevelopment() {
		t.Error("BuildDevelopment.IsDevelopment() = false, want true")
	}
	if BuildProduction.IsDevelopment() {
		t.Error("BuildProduction.IsDevelopment() = true, want false")
	}
	if got := BuildMode(7).String(); got != "unknown" {
		t.Errorf("BuildMode(7).String() = %v, want unknown", got)
	}
}
