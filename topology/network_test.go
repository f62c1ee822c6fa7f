package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeNetwork_Layout(t *testing.T) {
	placement, err := ComposeNetwork("10.20.0.0/16")
	require.NoError(t, err)

	assert.Equal(t, "10.20.0.0/16", placement.CIDR)
	assert.Equal(t, 2, placement.AvailabilityZones)
	assert.Equal(t, 1, placement.NATGateways)

	require.Len(t, placement.Tiers, 2)
	assert.Equal(t, TierPublic, placement.Tiers[0].Name)
	assert.Equal(t, VisibilityPublic, placement.Tiers[0].Visibility)
	assert.Equal(t, TierPrivateEgress, placement.Tiers[1].Name)
	assert.Equal(t, VisibilityPrivateEgress, placement.Tiers[1].Visibility)
	for _, tier := range placement.Tiers {
		assert.Equal(t, 24, tier.CIDRMask)
	}
}

func TestComposeNetwork_SubnetDerivation(t *testing.T) {
	placement, err := ComposeNetwork("10.20.0.0/16")
	require.NoError(t, err)

	require.Len(t, placement.Subnets, 4)

	public := placement.TierSubnets(TierPublic)
	require.Len(t, public, 2)
	assert.Equal(t, "10.20.0.0/24", public[0].CIDR)
	assert.Equal(t, "10.20.1.0/24", public[1].CIDR)

	private := placement.TierSubnets(TierPrivateEgress)
	require.Len(t, private, 2)
	assert.Equal(t, "10.20.10.0/24", private[0].CIDR)
	assert.Equal(t, "10.20.11.0/24", private[1].CIDR)

	// One subnet per tier per AZ.
	for _, subnets := range [][]Subnet{public, private} {
		assert.Equal(t, 0, subnets[0].AZIndex)
		assert.Equal(t, 1, subnets[1].AZIndex)
	}
}

func TestComposeNetwork_Deterministic(t *testing.T) {
	first, err := ComposeNetwork("10.20.0.0/16")
	require.NoError(t, err)
	second, err := ComposeNetwork("10.20.0.0/16")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComposeNetwork_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cidr string
	}{
		{name: "not a cidr", cidr: "10.20.0.0"},
		{name: "garbage", cidr: "banana"},
		{name: "ipv6", cidr: "2001:db8::/32"},
		{name: "too small", cidr: "10.20.0.0/20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComposeNetwork(tt.cidr)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestComposeNetwork_TierLookup(t *testing.T) {
	placement, err := ComposeNetwork("10.20.0.0/16")
	require.NoError(t, err)

	tier, ok := placement.Tier(VisibilityPrivateEgress)
	require.True(t, ok)
	assert.Equal(t, TierPrivateEgress, tier.Name)

	_, ok = placement.Tier(Visibility("isolated"))
	assert.False(t, ok)
}
