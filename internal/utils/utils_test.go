package utils

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name, email, want string
	}{
		{"Jane Doe", "jane@x.com", "Jane Doe"},
		{"", "jane@x.com", "jane"},
		{"", "ops", "ops"},
		{"", "", "Unknown Admin"},
		{"", "@x.com", "Unknown Admin"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.name, tt.email); got != tt.want {
			t.Errorf("DisplayName(%q, %q) = %q, want %q", tt.name, tt.email, got, tt.want)
		}
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		email, want string
	}{
		{"jane@x.com", "j***@x.com"},
		{"a@b.co", "a***@b.co"},
		{"no-at-sign", "***"},
		{"", "***"},
	}
	for _, tt := range tests {
		if got := MaskEmail(tt.email); got != tt.want {
			t.Errorf("MaskEmail(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}
