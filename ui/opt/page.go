package opt

// Page is the root of a menu: a modify flag, a screen selector, and a
// fixed set of views of which exactly one (chosen by the selector) is
// active at a time.
type Page interface {
	Modify() bool
	ToggleModify()
	// ScreenOption returns the enumerated option selecting the active
	// screen.
	ScreenOption() Option
	// NumScreens returns the size of the screen variant set.
	NumScreens() int
	// View returns the active screen's view.
	View() *View
	// SetDraw records whether the mainline should redraw the menu.
	SetDraw(draw bool)
}

// TickUp applies one positive encoder detent to the page.
//
// Dispatch is over (selection, modify): with a selection, modify edits
// the selected option and browse advances the cursor (no wrap past the
// end); with no selection, modify switches screens and browse enters
// the option list.
func TickUp(p Page) {
	v := p.View()
	if i, ok := v.Selected(); ok {
		if p.Modify() {
			v.Options()[i].TickUp()
		} else if i+1 < v.Len() {
			v.Select(i + 1)
		}
		return
	}
	if p.Modify() {
		p.ScreenOption().TickUp()
	} else if v.Len() > 0 {
		v.Select(0)
	}
}

// TickDown applies one negative encoder detent to the page. Stepping
// below the first option clears the selection back to screen level;
// at screen level with modify off it is a no-op.
func TickDown(p Page) {
	v := p.View()
	if i, ok := v.Selected(); ok {
		if p.Modify() {
			v.Options()[i].TickDown()
		} else if i != 0 {
			v.Select(i - 1)
		} else {
			v.Deselect()
		}
		return
	}
	if p.Modify() {
		p.ScreenOption().TickDown()
	}
}

// ConsumeTicks applies a batch of detents in one direction.
func ConsumeTicks(p Page, n int) {
	for ; n > 0; n-- {
		TickUp(p)
	}
	for ; n < 0; n++ {
		TickDown(p)
	}
}
