package ui

import (
	"testing"

	"lumen/ui/opt"
)

func barPage(val uint8) *fakePage {
	p := newFakePage(opt.Num[uint8]("a", val, 1, 0, 10))
	p.view.Select(0)
	return p
}

func countBar(leds *[16]uint8, channels [6]int) int {
	lit := 0
	for _, ch := range channels {
		if leds[ch] != 0 {
			lit++
		}
	}
	return lit
}

func TestBargraphFullScale(t *testing.T) {
	var leds [16]uint8
	SetBargraph(barPage(10), &leds, true)

	if got := countBar(&leds, pcaBarRed); got != 6 {
		t.Fatalf("red segments = %d, want 6", got)
	}
	if got := countBar(&leds, pcaBarGreen); got != 0 {
		t.Fatalf("green segments = %d, want 0", got)
	}
}

func TestBargraphZero(t *testing.T) {
	var leds [16]uint8
	SetBargraph(barPage(0), &leds, true)

	if got := countBar(&leds, pcaBarGreen); got != 6 {
		t.Fatalf("green segments = %d, want 6", got)
	}
	if got := countBar(&leds, pcaBarRed); got != 0 {
		t.Fatalf("red segments = %d, want 0", got)
	}
}

func TestBargraphCenter(t *testing.T) {
	var leds [16]uint8
	SetBargraph(barPage(5), &leds, true)

	if leds != ([16]uint8{}) {
		t.Fatalf("leds = %v, want all dark at center", leds)
	}
}

func TestBargraphNoSelection(t *testing.T) {
	p := newFakePage(opt.Num[uint8]("a", 10, 1, 0, 10))

	var leds [16]uint8
	SetBargraph(p, &leds, true)
	if leds != ([16]uint8{}) {
		t.Fatalf("leds = %v, want untouched without selection", leds)
	}
}

func TestBargraphBlanksOnOffPhase(t *testing.T) {
	p := barPage(10)
	p.modify = true

	var leds [16]uint8
	SetBargraph(p, &leds, false)
	if leds != ([16]uint8{}) {
		t.Fatalf("leds = %v, want blanked on off phase", leds)
	}

	SetBargraph(p, &leds, true)
	if got := countBar(&leds, pcaBarRed); got != 6 {
		t.Fatalf("red segments = %d, want 6 on on phase", got)
	}
}
