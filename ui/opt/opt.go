// Package opt implements the generic menu option model: typed leaf
// values, the view/page grouping, and the navigation state machine
// that applies encoder events to them.
package opt

import "fmt"

// Option is a single editable menu entry.
type Option interface {
	Name() string
	// Value returns the rendered form of the current value.
	Value() string
	TickUp()
	TickDown()
	// Percent returns the current value normalized to [0,1], used by
	// the LED bargraph.
	Percent() float32
}

// Number constrains the scalar types a NumOption can hold.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int | ~uint8 | ~uint16 | ~uint32
}

// NumOption is a numeric option stepped within [min, max].
type NumOption[T Number] struct {
	name string
	Val  T
	step T
	min  T
	max  T
}

// Num returns a numeric option. The caller must supply
// min <= value <= max; ticking preserves that invariant.
func Num[T Number](name string, value, step, min, max T) *NumOption[T] {
	return &NumOption[T]{name: name, Val: value, step: step, min: min, max: max}
}

func (o *NumOption[T]) Name() string { return o.name }

func (o *NumOption[T]) Value() string { return fmt.Sprintf("%d", o.Val) }

// TickUp steps the value up, saturating at max rather than overshooting.
func (o *NumOption[T]) TickUp() {
	if o.Val >= o.max {
		o.Val = o.max
		return
	}
	if o.Val+o.step >= o.max {
		o.Val = o.max
	} else {
		o.Val += o.step
	}
}

// TickDown steps the value down, saturating at min.
func (o *NumOption[T]) TickDown() {
	if o.Val <= o.min {
		o.Val = o.min
		return
	}
	if o.Val-o.step <= o.min {
		o.Val = o.min
	} else {
		o.Val -= o.step
	}
}

func (o *NumOption[T]) Percent() float32 {
	if o.max == o.min {
		return 0
	}
	return float32(o.Val-o.min) / float32(o.max-o.min)
}

// Labeled is satisfied by enumeration value types: comparable variants
// with a canonical label.
type Labeled interface {
	comparable
	String() string
}

// EnumOption is an option ranging over a closed, ordered variant set.
type EnumOption[T Labeled] struct {
	name string
	Val  T
	all  []T
}

// Enum returns an enumerated option over the given variant set, in
// iteration order.
func Enum[T Labeled](name string, value T, all []T) *EnumOption[T] {
	return &EnumOption[T]{name: name, Val: value, all: all}
}

func (o *EnumOption[T]) Name() string { return o.name }

func (o *EnumOption[T]) Value() string { return o.Val.String() }

// TickUp advances to the next variant in iteration order. There is no
// wraparound: from the last variant the value stays put.
func (o *EnumOption[T]) TickUp() {
	for i, v := range o.all {
		if v == o.Val {
			if i+1 < len(o.all) {
				o.Val = o.all[i+1]
			}
			return
		}
	}
}

// TickDown steps back to the previously seen variant. The scan runs
// forward tracking a predecessor, so the first variant (which has
// none) stays put.
func (o *EnumOption[T]) TickDown() {
	var prev T
	havePrev := false
	for _, v := range o.all {
		if v == o.Val && havePrev {
			o.Val = prev
			return
		}
		prev = v
		havePrev = true
	}
}

// NumValues returns the size of the variant set.
func (o *EnumOption[T]) NumValues() int { return len(o.all) }

func (o *EnumOption[T]) Percent() float32 {
	if len(o.all) < 2 {
		return 0
	}
	for i, v := range o.all {
		if v == o.Val {
			return float32(i) / float32(len(o.all)-1)
		}
	}
	return 0
}
