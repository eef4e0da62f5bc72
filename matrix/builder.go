package matrix

import "fmt"

// FuncWrapper transforms how the effective build function is derived from
// the caller's raw function. Wrappers compose: each Map call wraps the
// function produced by the wrappers registered before it.
type FuncWrapper func(BuildFunc) BuildFunc

// VersionMapper transforms a combination before it reaches the build
// function.
type VersionMapper func(Combination) Combination

// Builder bundles an axis set and its default combination with the current
// transformation pipeline. Builders are immutable values: Map and
// MapVersions return extended copies, terminal operations only read.
//
// The effective build function of a terminal call is
//
//	wrapped(c) = funcWrapper(fn)(versionMapper(c))
//
// while derived names always come from the raw combination, so transforming
// combinations never changes target names.
type Builder struct {
	axes   AxisSet
	def    Combination
	wrapFn FuncWrapper
	mapVer VersionMapper
}

// New creates a Builder over the given axis set with the designated default
// combination. Membership of the default in the product is checked only by
// lookup when BuildWithDefault runs.
func New(axes AxisSet, def Combination) Builder {
	return Builder{
		axes:   axes,
		def:    def,
		wrapFn: func(fn BuildFunc) BuildFunc { return fn },
		mapVer: func(c Combination) Combination { return c },
	}
}

// Map returns a Builder whose function wrapper applies next after all
// previously registered wrappers: the effective derivation for a raw fn
// becomes next(previous(fn)).
func (b Builder) Map(next FuncWrapper) Builder {
	cur := b.wrapFn
	b.wrapFn = func(fn BuildFunc) BuildFunc { return next(cur(fn)) }
	return b
}

// MapVersions returns a Builder whose combination transform applies next to
// the raw combination first, then the previously accumulated transform to
// its result.
func (b Builder) MapVersions(next VersionMapper) Builder {
	cur := b.mapVer
	b.mapVer = func(c Combination) Combination { return cur(next(c)) }
	return b
}

// Build expands the matrix, passing fn through the pipeline.
func (b Builder) Build(prefix string, fn BuildFunc) (map[string]any, error) {
	return BuildMatrix(b.axes, prefix, b.effective(fn))
}

// BuildWithDefault expands the matrix like Build and additionally exposes
// the default combination's artifact under DefaultKey.
func (b Builder) BuildWithDefault(prefix string, fn BuildFunc) (map[string]any, error) {
	return BuildMatrixWithDefault(b.axes, b.def, prefix, b.effective(fn))
}

// Versions returns the raw product, untouched by the pipeline.
func (b Builder) Versions() []Combination {
	out := make([]Combination, 0, b.axes.Size())
	for c := range b.axes.Combinations() {
		out = append(out, c)
	}
	return out
}

// PassedVersions returns the product as the build function would see it:
// every raw combination run through the full pipeline around an identity
// build step, in product order. A function wrapper that replaces the
// identity's result with a non-Combination value surfaces as
// ErrNotCombination.
func (b Builder) PassedVersions() ([]Combination, error) {
	identity := func(c Combination) (any, error) { return c, nil }
	wrapped := b.effective(identity)
	out := make([]Combination, 0, b.axes.Size())
	for c := range b.axes.Combinations() {
		v, err := wrapped(c)
		if err != nil {
			return nil, err
		}
		cc, ok := v.(Combination)
		if !ok {
			return nil, fmt.Errorf("%T: %w", v, ErrNotCombination)
		}
		out = append(out, cc)
	}
	return out, nil
}

// effective assembles the pipeline around a raw build function.
func (b Builder) effective(fn BuildFunc) BuildFunc {
	wrapped := b.wrapFn(fn)
	return func(c Combination) (any, error) { return wrapped(b.mapVer(c)) }
}
