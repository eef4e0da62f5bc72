package matrix

import (
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// axisValue is a single axis assignment inside a Combination.
type axisValue struct {
	axis  string
	value cty.Value
}

// Combination is one fully specified assignment of a value to every axis of
// an AxisSet. It is immutable; With returns a modified copy.
type Combination struct {
	entries []axisValue
}

// NewCombination returns an empty Combination. Assignments are added with
// With.
func NewCombination() Combination { return Combination{} }

// With returns a copy of c with the given axis assigned to value. An
// existing assignment is replaced in place; a new axis is appended.
func (c Combination) With(axis string, value cty.Value) Combination {
	entries := make([]axisValue, len(c.entries), len(c.entries)+1)
	copy(entries, c.entries)
	for i := range entries {
		if entries[i].axis == axis {
			entries[i].value = value
			return Combination{entries: entries}
		}
	}
	entries = append(entries, axisValue{axis: axis, value: value})
	return Combination{entries: entries}
}

// Value returns the value assigned to the given axis.
func (c Combination) Value(axis string) (cty.Value, bool) {
	for _, e := range c.entries {
		if e.axis == axis {
			return e.value, true
		}
	}
	return cty.NilVal, false
}

// Axes returns the axis names in this combination's order.
func (c Combination) Axes() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.axis
	}
	return out
}

// Len returns the number of axis assignments.
func (c Combination) Len() int { return len(c.entries) }

// Equal reports whether two combinations assign the same values to the same
// axes. Order is ignored: combinations are compared as assignments, not as
// sequences.
func (c Combination) Equal(o Combination) bool {
	if len(c.entries) != len(o.entries) {
		return false
	}
	for _, e := range c.entries {
		v, ok := o.Value(e.axis)
		if !ok || !v.RawEquals(e.value) {
			return false
		}
	}
	return true
}

// String renders the combination as space-separated "axis=value" pairs for
// logs and error messages.
func (c Combination) String() string {
	var b strings.Builder
	for i, e := range c.entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.axis)
		b.WriteByte('=')
		b.WriteString(ValueString(e.value))
	}
	return b.String()
}
