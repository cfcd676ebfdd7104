package mmr

import (
	"testing"
)

func TestBitLength(t *testing.T) {
	tests := []struct {
		num  uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{8, 4},
		{16, 5},
		{17, 5},
		{31, 5},
		{32, 6},
	}
	for _, tt := range tests {
		if got := BitLength(tt.num); got != tt.want {
			t.Errorf("BitLength(%d) = %d, want %d", tt.num, got, tt.want)
		}
	}
}

func TestBitLength64(t *testing.T) {
	if got := BitLength64(19); got != 5 {
		t.Errorf("BitLength64(19) = %d, want 5", got)
	}
}
