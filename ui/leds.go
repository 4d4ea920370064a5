package ui

import "lumen/ui/opt"

// Front-panel bargraph channel assignments on the PCA9635. Channels
// are interleaved green/red pairs, ordered bottom-to-top.
var (
	pcaBarGreen = [6]int{0, 2, 14, 12, 6, 4}
	pcaBarRed   = [6]int{1, 3, 15, 13, 7, 5}
)

// SetBargraph renders the selected option's normalized value onto the
// 16-channel LED state: green segments fill below center, red above.
// While modifying, the bargraph blanks on the off phase of the blink
// toggle.
func SetBargraph(p opt.Page, leds *[16]uint8, toggle bool) {
	n, ok := p.View().Selected()
	if !ok || n > 7 {
		return
	}

	c := p.View().Options()[n].Percent()
	for i := 0; i < 6; i++ {
		if float32(i)*0.5/6.0+0.5 < c {
			leds[pcaBarRed[i]] = 0xFF
		} else {
			leds[pcaBarRed[i]] = 0
		}
		if float32(i)*-0.5/6.0+0.5 > c {
			leds[pcaBarGreen[i]] = 0xFF
		} else {
			leds[pcaBarGreen[i]] = 0
		}
	}

	if p.Modify() && !toggle {
		for i := 0; i < 6; i++ {
			leds[pcaBarGreen[i]] = 0
			leds[pcaBarRed[i]] = 0
		}
	}
}
