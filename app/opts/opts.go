// Package opts defines this firmware's menu pages: the screen
// selector and one view of options per screen.
package opts

import (
	"lumen/palette"
	"lumen/ui/opt"
)

// Screen enumerates the menu screens.
type Screen uint8

const (
	ScreenXbeam Screen = iota
	ScreenScope
	ScreenTouch
)

func (s Screen) String() string {
	switch s {
	case ScreenXbeam:
		return "XBEAM"
	case ScreenScope:
		return "SCOPE"
	case ScreenTouch:
		return "TOUCH"
	default:
		return "?"
	}
}

// Screens returns the screen variant set in iteration order.
func Screens() []Screen {
	return []Screen{ScreenXbeam, ScreenScope, ScreenTouch}
}

// TouchControl selects the note source for the touch screen.
type TouchControl uint8

const (
	ControlTouch TouchControl = iota
	ControlMidi
)

func (c TouchControl) String() string {
	switch c {
	case ControlTouch:
		return "touch"
	case ControlMidi:
		return "midi"
	default:
		return "?"
	}
}

func touchControls() []TouchControl {
	return []TouchControl{ControlTouch, ControlMidi}
}

// LedMirror selects whether the jack LEDs mirror touch state.
type LedMirror uint8

const (
	MirrorOff LedMirror = iota
	MirrorOn
)

func (m LedMirror) String() string {
	switch m {
	case MirrorOff:
		return "mirror-off"
	case MirrorOn:
		return "mirror-on"
	default:
		return "?"
	}
}

func ledMirrors() []LedMirror {
	return []LedMirror{MirrorOff, MirrorOn}
}

// XbeamOpts are the beam appearance options.
type XbeamOpts struct {
	Persist   *opt.NumOption[uint16]
	Hue       *opt.NumOption[uint8]
	Intensity *opt.NumOption[uint8]
	Palette   *opt.EnumOption[palette.Palette]

	view *opt.View
}

// ScopeOpts are the oscilloscope trigger/capture options.
type ScopeOpts struct {
	GrainSize *opt.NumOption[uint32]
	TrigLevel *opt.NumOption[int32]
	TrigSense *opt.NumOption[int32]

	view *opt.View
}

// TouchOpts are the touch-interface options.
type TouchOpts struct {
	Control   *opt.EnumOption[TouchControl]
	LedMirror *opt.EnumOption[LedMirror]

	view *opt.View
}

// Options is the root menu page. It is owned by the control loop's
// shared state; the mainline only ever works from a Clone.
type Options struct {
	modify bool
	// Draw is set by the UI updater when the menu should be redrawn.
	Draw bool

	Screen *opt.EnumOption[Screen]

	Xbeam XbeamOpts
	Scope ScopeOpts
	Touch TouchOpts
}

// New returns the page with power-on defaults.
func New() *Options {
	o := &Options{
		modify: true,
		Draw:   true,
		Screen: opt.Enum("screen", ScreenXbeam, Screens()),
		Xbeam: XbeamOpts{
			Persist:   opt.Num[uint16]("persist", 1024, 256, 768, 32768),
			Hue:       opt.Num[uint8]("hue", 0, 1, 0, 15),
			Intensity: opt.Num[uint8]("intensity", 8, 1, 0, 15),
			Palette:   opt.Enum("palette", palette.Exp, palette.Palettes()),
		},
		Scope: ScopeOpts{
			GrainSize: opt.Num[uint32]("grainsz", 1000, 1, 512, 1000),
			TrigLevel: opt.Num[int32]("trig lvl", 0, 100, -10000, 10000),
			TrigSense: opt.Num[int32]("trig sns", 1000, 100, 100, 5000),
		},
		Touch: TouchOpts{
			Control:   opt.Enum("control", ControlTouch, touchControls()),
			LedMirror: opt.Enum("led", MirrorOn, ledMirrors()),
		},
	}
	o.Xbeam.view = opt.NewView(o.Xbeam.Persist, o.Xbeam.Hue, o.Xbeam.Intensity, o.Xbeam.Palette)
	o.Scope.view = opt.NewView(o.Scope.GrainSize, o.Scope.TrigLevel, o.Scope.TrigSense)
	o.Touch.view = opt.NewView(o.Touch.Control, o.Touch.LedMirror)
	return o
}

func (o *Options) Modify() bool { return o.modify }

func (o *Options) ToggleModify() { o.modify = !o.modify }

func (o *Options) ScreenOption() opt.Option { return o.Screen }

func (o *Options) NumScreens() int { return o.Screen.NumValues() }

// View returns the active screen's view.
func (o *Options) View() *opt.View {
	switch o.Screen.Val {
	case ScreenScope:
		return o.Scope.view
	case ScreenTouch:
		return o.Touch.view
	default:
		return o.Xbeam.view
	}
}

func (o *Options) SetDraw(draw bool) { o.Draw = draw }

// Clone returns a deep copy for the mainline snapshot. Mutating the
// clone never affects the original.
func (o *Options) Clone() *Options {
	n := New()
	n.modify = o.modify
	n.Draw = o.Draw

	*n.Screen = *o.Screen
	*n.Xbeam.Persist = *o.Xbeam.Persist
	*n.Xbeam.Hue = *o.Xbeam.Hue
	*n.Xbeam.Intensity = *o.Xbeam.Intensity
	*n.Xbeam.Palette = *o.Xbeam.Palette
	*n.Scope.GrainSize = *o.Scope.GrainSize
	*n.Scope.TrigLevel = *o.Scope.TrigLevel
	*n.Scope.TrigSense = *o.Scope.TrigSense
	*n.Touch.Control = *o.Touch.Control
	*n.Touch.LedMirror = *o.Touch.LedMirror

	copySel(n.Xbeam.view, o.Xbeam.view)
	copySel(n.Scope.view, o.Scope.view)
	copySel(n.Touch.view, o.Touch.view)
	return n
}

func copySel(dst, src *opt.View) {
	if i, ok := src.Selected(); ok {
		dst.Select(i)
	} else {
		dst.Deselect()
	}
}
