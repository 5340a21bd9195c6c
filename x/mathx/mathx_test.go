package mathx

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 10, 0, 5}, // swapped bounds
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
	if got := Clamp(uint16(0), 1, 65535); got != 1 {
		t.Errorf("Clamp(0, 1, 65535) = %d, want 1", got)
	}
}

func TestBetween(t *testing.T) {
	if !Between(170, 50, 300) {
		t.Error("170 should be within [50,300]")
	}
	if Between(301, 50, 300) {
		t.Error("301 should be outside [50,300]")
	}
	if !Between(50, 300, 50) {
		t.Error("bounds should be order-insensitive")
	}
}

func TestRoundDiv(t *testing.T) {
	cases := []struct {
		a, b, want uint32
	}{
		{1953125, 340, 5744}, // 170 Hz LRA period code
		{10, 4, 3},           // 2.5 rounds up
		{9, 4, 2},            // 2.25 rounds down
		{7, 0, 0},            // div-by-zero guard
	}
	for _, c := range cases {
		if got := RoundDiv(c.a, c.b); got != c.want {
			t.Errorf("RoundDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
