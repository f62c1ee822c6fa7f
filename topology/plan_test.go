package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(order []string, name string) int {
	for i, n := range order {
		if n == name {
			return i
		}
	}
	return -1
}

func TestCompose_EndToEndDefaults(t *testing.T) {
	plan, err := Compose(Overrides{})
	require.NoError(t, err)

	assert.Len(t, plan.Network.Tiers, 2)
	assert.Len(t, plan.Boundary.Nodes, 3)
	assert.Len(t, plan.Boundary.Edges, 2)
	assert.Equal(t, "t2.micro", plan.Compute.InstanceType)
	assert.Equal(t, 80, plan.Edge.ListenerPort)
	assert.Equal(t, EnginePostgres, plan.Data.Engine)
	assert.Equal(t, "dbadmin", plan.Credential.Username)
	assert.Len(t, plan.Outputs, 2)
	assert.Len(t, plan.Order, 6)
}

func TestAssemble_OrderRespectsDependencies(t *testing.T) {
	plan, err := Compose(Overrides{})
	require.NoError(t, err)

	order := plan.Order
	deps := plan.Dependencies()

	for name, reqs := range deps {
		for _, dep := range reqs {
			assert.Less(t, indexOf(order, dep), indexOf(order, name),
				"%s must be created before %s", dep, name)
		}
	}
}

func TestAssemble_OrderDeterministic(t *testing.T) {
	first, err := Compose(Overrides{})
	require.NoError(t, err)
	second, err := Compose(Overrides{})
	require.NoError(t, err)

	assert.Equal(t, first.Order, second.Order)
	assert.Equal(t, first, second)
}

func TestAssemble_OutputSet(t *testing.T) {
	plan, err := Compose(Overrides{})
	require.NoError(t, err)

	require.Len(t, plan.Outputs, 2)

	entry := plan.Outputs[0]
	assert.Equal(t, OutputEntryPoint, entry.Name)
	assert.Equal(t, ResourceEdge, entry.Resource)
	assert.Equal(t, AttrEntryPointDNS, entry.Attribute)

	data := plan.Outputs[1]
	assert.Equal(t, OutputDataEndpoint, data.Name)
	assert.Equal(t, ResourceData, data.Resource)
	assert.Equal(t, AttrDataEndpoint, data.Attribute)
}

func TestAssemble_OutOfOrderComposition(t *testing.T) {
	params, err := Resolve(Overrides{})
	require.NoError(t, err)
	network, err := ComposeNetwork(params.NetworkCIDR)
	require.NoError(t, err)
	boundary := ComposeBoundary()
	compute := ComposeCompute(params, network, boundary)
	edge := ComposeEdge(network, boundary, compute)
	credential := ProvisionCredential()
	data := ComposeData(params, network, boundary, credential)

	tests := []struct {
		name   string
		mutate func(*NetworkPlacement, *SecurityBoundary, *ComputeTierSpec, *EdgeSpec, *DataTierSpec)
	}{
		{
			name: "compute composed before network",
			mutate: func(n *NetworkPlacement, b *SecurityBoundary, c *ComputeTierSpec, e *EdgeSpec, d *DataTierSpec) {
				c.SubnetTier = ""
			},
		},
		{
			name: "edge composed before boundary",
			mutate: func(n *NetworkPlacement, b *SecurityBoundary, c *ComputeTierSpec, e *EdgeSpec, d *DataTierSpec) {
				e.BoundaryNode = ""
			},
		},
		{
			name: "edge composed before compute",
			mutate: func(n *NetworkPlacement, b *SecurityBoundary, c *ComputeTierSpec, e *EdgeSpec, d *DataTierSpec) {
				e.Target = ""
			},
		},
		{
			name: "data bound to unknown tier",
			mutate: func(n *NetworkPlacement, b *SecurityBoundary, c *ComputeTierSpec, e *EdgeSpec, d *DataTierSpec) {
				d.SubnetTier = "isolated"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, b, c, e, d := network, boundary, compute, edge, data
			tt.mutate(&n, &b, &c, &e, &d)

			_, err := Assemble(params, n, b, c, e, d, credential)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDependencyCycle)
		})
	}
}

func TestTopologicalOrder_CycleDetected(t *testing.T) {
	deps := map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"a"},
	}

	_, err := topologicalOrder(deps)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDependencyCycle)
}

func TestTopologicalOrder_UnknownDependency(t *testing.T) {
	deps := map[string][]string{
		"a": {"ghost"},
	}

	_, err := topologicalOrder(deps)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDependencyCycle)
}

func TestCompose_FailsFastOnBadParameters(t *testing.T) {
	_, err := Compose(Overrides{MinCapacity: intPtr(10)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
