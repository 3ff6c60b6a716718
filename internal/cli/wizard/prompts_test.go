package wizard

import (
	"testing"
)

func TestValidateThreshold(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "zero",
			input: "0",
		},
		{
			name:  "positive",
			input: "2",
		},
		{
			name:  "surrounding whitespace",
			input: " 3 ",
		},
		{
			name:    "negative",
			input:   "-1",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "two",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "fractional",
			input:   "1.5",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateThreshold(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateThreshold(%q) = nil, want error", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateThreshold(%q) = %v, want nil", tt.input, err)
			}
		})
	}
}

func TestValidateMaxResults(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "one",
			input: "1",
		},
		{
			name:  "larger",
			input: "10",
		},
		{
			name:    "zero",
			input:   "0",
			wantErr: true,
		},
		{
			name:    "negative",
			input:   "-3",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "many",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMaxResults(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateMaxResults(%q) = nil, want error", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateMaxResults(%q) = %v, want nil", tt.input, err)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	if n, err := parseInt("  42  "); err != nil || n != 42 {
		t.Errorf("parseInt(\"  42  \") = %d, %v, want 42, nil", n, err)
	}
	if _, err := parseInt("4 2"); err == nil {
		t.Error("parseInt(\"4 2\") = nil error, want error")
	}
}
