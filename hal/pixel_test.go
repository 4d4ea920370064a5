package hal

import "testing"

func TestRGB565Pack(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0xFF, 0x00, 0x00, 0xF800},
		{0x00, 0xFF, 0x00, 0x07E0},
		{0x00, 0x00, 0xFF, 0x001F},
		{0xFF, 0xFF, 0xFF, 0xFFFF},
		{0x00, 0x00, 0x00, 0x0000},
	}
	for _, c := range cases {
		if got := rgb565(c.r, c.g, c.b); got != c.want {
			t.Fatalf("rgb565(%#x, %#x, %#x) = %#04x, want %#04x", c.r, c.g, c.b, got, c.want)
		}
	}
}

func TestRGB888From565FullRange(t *testing.T) {
	r, g, b := rgb888From565(0xFFFF)
	if r != 0xFF || g != 0xFF || b != 0xFF {
		t.Fatalf("rgb888From565(0xffff) = %#x/%#x/%#x, want white", r, g, b)
	}
	r, g, b = rgb888From565(0xF800)
	if r != 0xFF || g != 0 || b != 0 {
		t.Fatalf("rgb888From565(0xf800) = %#x/%#x/%#x, want pure red", r, g, b)
	}
}
