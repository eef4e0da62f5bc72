package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestDeriveName_ConcreteScenario(t *testing.T) {
	set := mustSet(t, strAxis("size", "39", "310"), strAxis("arch", "x64"))

	var names []string
	for c := range set.Combinations() {
		names = append(names, DeriveName("py", c))
	}
	assert.ElementsMatch(t, []string{"py-size39-archx64", "py-size310-archx64"}, names)
}

func TestDeriveName_EmptyCombinationIsBarePrefix(t *testing.T) {
	assert.Equal(t, "py", DeriveName("py", NewCombination()))
}

func TestDeriveName_NumberValues(t *testing.T) {
	c := NewCombination().
		With("size", cty.NumberIntVal(310)).
		With("arch", cty.StringVal("x64"))
	assert.Equal(t, "py-size310-archx64", DeriveName("py", c))
}

func TestDeriveName_InjectiveOverProduct(t *testing.T) {
	set := mustSet(t,
		strAxis("py", "39", "310", "311"),
		strAxis("arch", "x64", "arm64"),
		Axis{Name: "abi", Values: []cty.Value{cty.NumberIntVal(3), cty.NumberIntVal(4)}},
	)

	names := make(map[string]struct{})
	for c := range set.Combinations() {
		name := DeriveName("vs", c)
		_, dup := names[name]
		require.False(t, dup, "name collision: %s", name)
		names[name] = struct{}{}
	}
	assert.Len(t, names, set.Size())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "x64", ValueString(cty.StringVal("x64")))
	assert.Equal(t, "39", ValueString(cty.NumberIntVal(39)))
	assert.Equal(t, "1.5", ValueString(cty.NumberFloatVal(1.5)))
}
