package app

import "testing"

func TestScoreAnswer(t *testing.T) {
	cases := []struct {
		name      string
		total     int
		remaining int
		want      int
	}{
		{"instant answer", 30, 30, 1000},
		{"last second", 30, 0, 700},
		{"halfway", 30, 15, 850},
		{"one second in", 30, 29, 990},
		{"remaining above total clamps high", 30, 40, 1000},
		{"remaining below zero clamps low", 30, -5, 700},
		{"degenerate zero-length question", 0, 0, 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scoreAnswer(tc.total, tc.remaining); got != tc.want {
				t.Fatalf("scoreAnswer(%d, %d) = %d, want %d", tc.total, tc.remaining, got, tc.want)
			}
		})
	}
}
