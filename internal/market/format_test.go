package market

import "testing"

func TestFormatVolume(t *testing.T) {
	cases := []struct {
		name   string
		volume float64
		want   string
	}{
		{"billions one decimal", 1_500_000_000, "1.5B"},
		{"billions exact boundary", 1_000_000_000, "1.0B"},
		{"millions one decimal", 2_300_000, "2.3M"},
		{"millions exact boundary", 1_000_000, "1.0M"},
		{"thousands rounded up", 2_500, "3k"},
		{"thousands rounded down", 2_400, "2k"},
		{"thousands exact boundary", 1_000, "1k"},
		{"below a thousand", 999, "999"},
		{"fractional passthrough", 523.45, "523.45"},
		{"zero", 0, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatVolume(tc.volume)
			if got != tc.want {
				t.Errorf("FormatVolume(%v) = %q, want %q", tc.volume, got, tc.want)
			}
		})
	}
}
