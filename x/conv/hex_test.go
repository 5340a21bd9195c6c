package conv

import "testing"

func TestU8Hex(t *testing.T) {
	cases := []struct {
		in   uint8
		want string
	}{
		{0x00, "00"},
		{0x0A, "0A"},
		{0xCA, "CA"},
		{0xFF, "FF"},
	}
	for _, c := range cases {
		if got := U8Hex(c.in); got != c.want {
			t.Errorf("U8Hex(0x%02x) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestU16Hex(t *testing.T) {
	cases := []struct {
		in   uint16
		want string
	}{
		{0x0000, "0000"},
		{0x1670, "1670"},
		{0xFFFF, "FFFF"},
	}
	for _, c := range cases {
		if got := U16Hex(c.in); got != c.want {
			t.Errorf("U16Hex(0x%04x) = %q, want %q", c.in, got, c.want)
		}
	}
}
