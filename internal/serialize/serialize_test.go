package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stackplan "github.com/stackplan/stackplan-go"
)

type probe struct {
	Name     string
	Count    int
	Enabled  bool
	Ratio    float64
	Tags     []string
	Nested   inner
	Pointer  *inner
	Skip     string
	internal string
}

type inner struct {
	Value string
}

func TestProperties_OmitsZeroValues(t *testing.T) {
	props, err := Properties(probe{
		Name:    "web",
		Count:   3,
		Enabled: true,
		Nested:  inner{Value: "x"},
	})
	require.NoError(t, err)

	assert.Equal(t, "web", props["Name"])
	assert.Equal(t, int64(3), props["Count"])
	assert.Equal(t, true, props["Enabled"])
	assert.Equal(t, map[string]any{"Value": "x"}, props["Nested"])

	assert.NotContains(t, props, "Ratio")
	assert.NotContains(t, props, "Tags")
	assert.NotContains(t, props, "Pointer")
	assert.NotContains(t, props, "Skip")
	assert.NotContains(t, props, "internal")
}

func TestProperties_Slices(t *testing.T) {
	type withSlice struct {
		Items []inner
	}

	props, err := Properties(withSlice{Items: []inner{{Value: "a"}, {Value: "b"}}})
	require.NoError(t, err)

	items, ok := props["Items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, map[string]any{"Value": "a"}, items[0])
}

func TestProperties_MarshalerPassthrough(t *testing.T) {
	type withRef struct {
		Target stackplan.Ref
	}

	props, err := Properties(withRef{Target: stackplan.Ref{Resource: "ComputeGroup", Attribute: "Name"}})
	require.NoError(t, err)

	target, ok := props["Target"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, target, "Fn::GetAtt")
}

func TestProperties_ZeroRefOmitted(t *testing.T) {
	type withRef struct {
		Target stackplan.Ref
	}

	props, err := Properties(withRef{})
	require.NoError(t, err)
	assert.NotContains(t, props, "Target")
}

func TestProperties_NonStruct(t *testing.T) {
	props, err := Properties("not a struct")
	require.NoError(t, err)
	assert.Nil(t, props)
}

func TestProperties_PointerToStruct(t *testing.T) {
	props, err := Properties(&probe{Name: "ptr"})
	require.NoError(t, err)
	assert.Equal(t, "ptr", props["Name"])
}
