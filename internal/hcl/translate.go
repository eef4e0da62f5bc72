package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/stverner/vergrid/internal/config"
	"github.com/stverner/vergrid/matrix"
)

// translateMatrix converts a decoded matrix block into the agnostic model.
func translateMatrix(block *matrixBlock) (*config.Spec, error) {
	axes := make([]matrix.Axis, 0, len(block.Axes))
	for _, ab := range block.Axes {
		values, err := axisValues(ab)
		if err != nil {
			return nil, fmt.Errorf("axis %q: %w", ab.Name, err)
		}
		axes = append(axes, matrix.Axis{Name: ab.Name, Values: values})
	}

	set, err := matrix.NewAxisSet(axes...)
	if err != nil {
		return nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}

	spec := &config.Spec{Name: block.Name, Axes: set}
	if block.Default != nil {
		def, err := translateDefault(block.Default, set)
		if err != nil {
			return nil, err
		}
		spec.Default = def
		spec.HasDefault = true
	}
	return spec, nil
}

// axisValues evaluates an axis `values` expression into its ordered list of
// string or number values.
func axisValues(ab *axisBlock) ([]cty.Value, error) {
	val, diags := ab.Values.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate values: %w", diags)
	}
	if !val.Type().IsTupleType() && !val.Type().IsListType() {
		return nil, fmt.Errorf("values must be a list, got %s", val.Type().FriendlyName())
	}

	var values []cty.Value
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		v, err := scalarValue(elem)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// translateDefault decodes the default block's attributes into a
// combination, normalized to axis declaration order. Every declared axis
// must be assigned, and nothing else.
func translateDefault(block *defaultBlock, set matrix.AxisSet) (matrix.Combination, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return matrix.Combination{}, fmt.Errorf("failed to decode default block: %w", diags)
	}

	def := matrix.NewCombination()
	for _, a := range set.Axes() {
		attr, ok := attrs[a.Name]
		if !ok {
			return matrix.Combination{}, fmt.Errorf("default block is missing axis %q", a.Name)
		}
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return matrix.Combination{}, fmt.Errorf("default %q: %w", a.Name, diags)
		}
		v, err := scalarValue(val)
		if err != nil {
			return matrix.Combination{}, fmt.Errorf("default %q: %w", a.Name, err)
		}
		def = def.With(a.Name, v)
		delete(attrs, a.Name)
	}
	for name := range attrs {
		return matrix.Combination{}, fmt.Errorf("default block references unknown axis %q", name)
	}
	return def, nil
}

// scalarValue checks that an axis value is a non-null string or number.
func scalarValue(v cty.Value) (cty.Value, error) {
	if v.IsNull() {
		return cty.NilVal, fmt.Errorf("value must not be null")
	}
	switch v.Type() {
	case cty.String, cty.Number:
		return v, nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value type %s, want string or number", v.Type().FriendlyName())
	}
}
