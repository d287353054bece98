package news_test

import (
	"testing"

	"newatalk/internal/usecase/news"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 60},
		{"  ", 60},
		{"abc", 60},
		{"NaN", 60},
		{"20", 20},
		{" 20 ", 20},
		{"5", 10},
		{"-3", 10},
		{"500", 200},
		{"Inf", 200},
		{"1e9", 200},
		{"15.7", 15},
		{"1e2", 100},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := news.ParseLimit(tt.raw); got != tt.want {
				t.Errorf("ParseLimit(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 10}, {9, 10}, {10, 10}, {60, 60}, {200, 200}, {201, 200},
	}
	for _, tt := range tests {
		if got := news.ClampLimit(tt.in); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
