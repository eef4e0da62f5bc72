package matrix

import "fmt"

// BuildFunc produces the artifact for one combination. A returned error
// aborts matrix construction; combinations not yet processed are never
// visited.
type BuildFunc func(Combination) (any, error)

// DefaultKey is the alias under which BuildMatrixWithDefault exposes the
// designated combination's artifact.
const DefaultKey = "default"

// BuildMatrix applies fn to every combination of the set and returns the
// artifacts keyed by derived name. fn is invoked exactly once per
// combination, sequentially, in product enumeration order. Errors from fn
// propagate unwrapped. Iteration order of the returned map carries no
// meaning.
func BuildMatrix(set AxisSet, prefix string, fn BuildFunc) (map[string]any, error) {
	out := make(map[string]any, set.Size())
	for c := range set.Combinations() {
		v, err := fn(c)
		if err != nil {
			return nil, err
		}
		out[DeriveName(prefix, c)] = v
	}
	return out, nil
}

// BuildMatrixWithDefault builds the full matrix and additionally exposes
// the designated combination's artifact under DefaultKey. The alias refers
// to the same artifact, not a copy. A default combination that does not
// name a product member is a configuration error, never silently replaced
// by an arbitrary entry.
func BuildMatrixWithDefault(set AxisSet, def Combination, prefix string, fn BuildFunc) (map[string]any, error) {
	out, err := BuildMatrix(set, prefix, fn)
	if err != nil {
		return nil, err
	}
	name, err := defaultName(set, def, prefix)
	if err != nil {
		return nil, err
	}
	v, ok := out[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrDefaultNotFound)
	}
	out[DefaultKey] = v
	return out, nil
}

// defaultName derives the default combination's name with its axes
// normalized to the set's declaration order, so callers may assemble the
// combination in any order.
func defaultName(set AxisSet, def Combination, prefix string) (string, error) {
	if def.Len() != set.Len() {
		return "", fmt.Errorf("default combination has %d axes, axis set has %d: %w",
			def.Len(), set.Len(), ErrDefaultNotFound)
	}
	ordered := NewCombination()
	for _, a := range set.axes {
		v, ok := def.Value(a.Name)
		if !ok {
			return "", fmt.Errorf("default combination missing axis %q: %w", a.Name, ErrDefaultNotFound)
		}
		ordered = ordered.With(a.Name, v)
	}
	return DeriveName(prefix, ordered), nil
}
