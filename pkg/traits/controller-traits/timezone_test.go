package controllertraits

import "testing"

func TestParseTimezone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"America/New_York", "America/New_York"},
		{"-04:00", "Etc/GMT+4"},
		{"-0500", "Etc/GMT+5"},
		{"+01:00", "Etc/GMT-1"},
		{"+05:30", "Etc/GMT-5"},
		{"4", "4"},
	}

	for _, tt := range tests {
		if got := ParseTimezone(tt.in); got != tt.want {
			t.Errorf("ParseTimezone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
