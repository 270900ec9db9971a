package render

import "testing"

func TestWN8ColorBands(t *testing.T) {
	cases := []struct {
		wn8  int
		want int
	}{
		{0, 0x808080},
		{1, 0x930D0D},
		{300, 0x930D0D},
		{301, 0xCD3333},
		{1000, 0x849B24},
		{2500, 0x6844D4},
		{2901, 0x522B99},
		{4700, 0x310D59},
		{4701, 0x24073D},
		{99999, 0x24073D},
	}
	for _, tc := range cases {
		if got := WN8Color(tc.wn8); got != tc.want {
			t.Errorf("WN8Color(%d) = %#x, want %#x", tc.wn8, got, tc.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	if got := ParseHexColor("#ff9900"); got != 0xFF9900 {
		t.Fatalf("ParseHexColor(#ff9900) = %#x", got)
	}
	if got := ParseHexColor("4099BF"); got != 0x4099BF {
		t.Fatalf("ParseHexColor(4099BF) = %#x", got)
	}
	if got := ParseHexColor("not-a-color"); got != DefaultColor {
		t.Fatalf("malformed input must fall back, got %#x", got)
	}
}
