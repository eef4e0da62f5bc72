package matrix

import (
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// DeriveName derives the stable identifier for a combination: the prefix
// followed by one "<axis><value>" segment per axis in combination order,
// joined by "-". The empty combination yields the bare prefix.
//
// For a fixed axis set and prefix the result is unique per combination,
// since the name is a lossless concatenation of the axis/value pairs in a
// fixed order. That makes it safe to use as a mapping key or CI job name.
func DeriveName(prefix string, c Combination) string {
	parts := make([]string, 0, len(c.entries)+1)
	parts = append(parts, prefix)
	for _, e := range c.entries {
		parts = append(parts, e.axis+ValueString(e.value))
	}
	return strings.Join(parts, "-")
}

// ValueString renders an axis value the way names render it: strings
// verbatim, numbers via cty conversion.
func ValueString(v cty.Value) string {
	if v.Type() == cty.String {
		return v.AsString()
	}
	s, err := convert.Convert(v, cty.String)
	if err != nil {
		return v.GoString()
	}
	return s.AsString()
}
