package matrix

import (
	"fmt"
	"iter"

	"github.com/zclconf/go-cty/cty"
)

// Axis is one independently varying dimension of configuration, e.g. an
// interpreter version. Values keep their declaration order; they may mix
// strings and numbers.
type Axis struct {
	Name   string
	Values []cty.Value
}

// AxisSet is an ordered, immutable collection of axes. Declaration order is
// significant: it drives both product enumeration order and derived names.
type AxisSet struct {
	axes []Axis
}

// NewAxisSet builds an AxisSet from the given axes, preserving their order.
// Axis names must be unique within the set.
func NewAxisSet(axes ...Axis) (AxisSet, error) {
	seen := make(map[string]struct{}, len(axes))
	set := AxisSet{axes: make([]Axis, 0, len(axes))}
	for _, a := range axes {
		if _, dup := seen[a.Name]; dup {
			return AxisSet{}, fmt.Errorf("axis %q: %w", a.Name, ErrDuplicateAxis)
		}
		seen[a.Name] = struct{}{}
		set.axes = append(set.axes, Axis{
			Name:   a.Name,
			Values: append([]cty.Value(nil), a.Values...),
		})
	}
	return set, nil
}

// Len returns the number of axes.
func (s AxisSet) Len() int { return len(s.axes) }

// Axes returns the axes in declaration order.
func (s AxisSet) Axes() []Axis {
	out := make([]Axis, len(s.axes))
	copy(out, s.axes)
	return out
}

// Validate reports the first axis whose value sequence is empty. An empty
// axis makes the whole product empty, which is almost always a
// configuration mistake rather than an intended matrix.
func (s AxisSet) Validate() error {
	for _, a := range s.axes {
		if len(a.Values) == 0 {
			return fmt.Errorf("axis %q: %w", a.Name, ErrEmptyAxis)
		}
	}
	return nil
}

// Size returns the product cardinality: the product of all axis
// cardinalities. An empty set has size 1; a set containing an axis with no
// values has size 0.
func (s AxisSet) Size() int {
	n := 1
	for _, a := range s.axes {
		n *= len(a.Values)
	}
	return n
}

// Combinations enumerates the Cartesian product of all axes. The sequence
// is lazy and safe to range over any number of times; every pass re-derives
// the full product. The last-declared axis varies fastest. An empty AxisSet
// yields exactly one empty Combination; an axis with no values yields none.
//
// Yielded combinations are independent immutable values, so fanning them
// out to workers is safe.
func (s AxisSet) Combinations() iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		for _, a := range s.axes {
			if len(a.Values) == 0 {
				return
			}
		}
		idx := make([]int, len(s.axes))
		for {
			entries := make([]axisValue, len(s.axes))
			for i, a := range s.axes {
				entries[i] = axisValue{axis: a.Name, value: a.Values[idx[i]]}
			}
			if !yield(Combination{entries: entries}) {
				return
			}
			i := len(idx) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(s.axes[i].Values) {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
