package opt

// View is the ordered option list of one menu screen plus a cursor.
// The cursor, when set, always addresses a valid index.
type View struct {
	sel  int // -1 when nothing is selected
	opts []Option
}

// NewView returns a view over the given options with no selection.
func NewView(opts ...Option) *View {
	return &View{sel: -1, opts: opts}
}

// Options returns the view's option list in order.
func (v *View) Options() []Option { return v.opts }

// Len returns the number of options in the view.
func (v *View) Len() int { return len(v.opts) }

// Selected returns the cursor index, if any.
func (v *View) Selected() (int, bool) {
	if v.sel < 0 {
		return 0, false
	}
	return v.sel, true
}

// Select places the cursor on option i. Callers keep 0 <= i < Len().
func (v *View) Select(i int) { v.sel = i }

// Deselect clears the cursor, returning to screen-selection level.
func (v *View) Deselect() { v.sel = -1 }
