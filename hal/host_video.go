//go:build !tinygo

package hal

import "sync"

// hostVideo latches the video peripheral registers. The simulator has
// no phosphor model; the values are held for inspection.
type hostVideo struct {
	mu      sync.Mutex
	persist uint16
	decay   uint8
	pal     [16][16][3]uint8
}

func newHostVideo() *hostVideo { return &hostVideo{} }

func (v *hostVideo) SetPersist(p uint16) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.persist = p
}

func (v *hostVideo) SetDecay(d uint8) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.decay = d
}

func (v *hostVideo) SetPaletteRGB(intensity, hue, r, g, b uint8) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if intensity >= 16 || hue >= 16 {
		return
	}
	v.pal[intensity][hue] = [3]uint8{r, g, b}
}

// hostBeam latches the vector-beam registers.
type hostBeam struct {
	mu        sync.Mutex
	hue       uint8
	intensity uint8
}

func newHostBeam() *hostBeam { return &hostBeam{} }

func (b *hostBeam) SetHue(v uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hue = v
}

func (b *hostBeam) SetIntensity(v uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.intensity = v
}

// hostJackLEDs latches the bipolar jack LED channels for the window
// overlay.
type hostJackLEDs struct {
	mu     sync.Mutex
	manual [8]int8
	auto   [8]bool
}

func newHostJackLEDs() *hostJackLEDs {
	j := &hostJackLEDs{}
	for n := range j.auto {
		j.auto[n] = true
	}
	return j
}

func (j *hostJackLEDs) SetManual(n int, v int8) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if n < 0 || n >= len(j.manual) {
		return
	}
	j.manual[n] = v
	j.auto[n] = false
}

func (j *hostJackLEDs) AllAuto() {
	j.mu.Lock()
	defer j.mu.Unlock()
	for n := range j.auto {
		j.auto[n] = true
		j.manual[n] = 0
	}
}

func (j *hostJackLEDs) snapshot() ([8]int8, [8]bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.manual, j.auto
}
