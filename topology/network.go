package topology

import (
	"fmt"
	"net/netip"
)

// Fixed network policy for this topology.
const (
	availabilityZoneCount = 2
	natEgressPaths        = 1
	subnetCIDRMask        = 24

	// TierPublic and TierPrivateEgress name the two subnet tiers, in order.
	TierPublic        = "public"
	TierPrivateEgress = "private-with-egress"

	// Third-octet offsets for per-AZ subnet blocks within the network CIDR.
	publicSubnetOffset  = 0
	privateSubnetOffset = 10
)

// Visibility describes how a subnet tier is exposed.
type Visibility string

const (
	// VisibilityPublic subnets are internet-reachable.
	VisibilityPublic Visibility = "public"
	// VisibilityPrivateEgress subnets reach out through a NAT path but
	// accept no inbound traffic from outside the network.
	VisibilityPrivateEgress Visibility = "private-with-egress"
)

// SubnetTier is one layer of the subnet layout, realized once per AZ.
type SubnetTier struct {
	Name       string
	CIDRMask   int
	Visibility Visibility
}

// Subnet is a concrete per-AZ subnet derived from the network CIDR.
type Subnet struct {
	Name    string
	Tier    string
	AZIndex int
	CIDR    string
}

// NetworkPlacement is the derived subnet layout for the topology.
type NetworkPlacement struct {
	CIDR              string
	AvailabilityZones int
	NATGateways       int
	Tiers             []SubnetTier
	Subnets           []Subnet
}

// Tier returns the subnet tier with the given visibility.
func (n NetworkPlacement) Tier(v Visibility) (SubnetTier, bool) {
	for _, t := range n.Tiers {
		if t.Visibility == v {
			return t, true
		}
	}
	return SubnetTier{}, false
}

// TierSubnets returns the subnets belonging to the named tier.
func (n NetworkPlacement) TierSubnets(tier string) []Subnet {
	var out []Subnet
	for _, s := range n.Subnets {
		if s.Tier == tier {
			out = append(out, s)
		}
	}
	return out
}

// ComposeNetwork derives the subnet layout from a network CIDR: two
// availability zones, a public tier and a private-with-egress tier with one
// NAT egress path, /24 subnets per tier per AZ. ComposeNetwork is a pure
// function — the same cidr always yields a structurally identical placement.
func ComposeNetwork(cidr string) (NetworkPlacement, error) {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return NetworkPlacement{}, fmt.Errorf("%w: network cidr %q: %v", ErrInvalidParameter, cidr, err)
	}
	if !prefix.Addr().Is4() {
		return NetworkPlacement{}, fmt.Errorf("%w: network cidr %q: IPv4 block required", ErrInvalidParameter, cidr)
	}
	if prefix.Bits() > subnetCIDRMask-8 {
		return NetworkPlacement{}, fmt.Errorf("%w: network cidr %q: block too small to carve /%d subnets", ErrInvalidParameter, cidr, subnetCIDRMask)
	}

	placement := NetworkPlacement{
		CIDR:              cidr,
		AvailabilityZones: availabilityZoneCount,
		NATGateways:       natEgressPaths,
		Tiers: []SubnetTier{
			{Name: TierPublic, CIDRMask: subnetCIDRMask, Visibility: VisibilityPublic},
			{Name: TierPrivateEgress, CIDRMask: subnetCIDRMask, Visibility: VisibilityPrivateEgress},
		},
	}

	tierOffsets := []struct {
		tier   string
		offset int
	}{
		{TierPublic, publicSubnetOffset},
		{TierPrivateEgress, privateSubnetOffset},
	}

	base := prefix.Masked().Addr().As4()
	for _, to := range tierOffsets {
		for az := 0; az < availabilityZoneCount; az++ {
			block := base
			block[2] = byte(to.offset + az)
			sub := netip.PrefixFrom(netip.AddrFrom4(block), subnetCIDRMask)
			placement.Subnets = append(placement.Subnets, Subnet{
				Name:    fmt.Sprintf("%s-%c", to.tier, 'a'+az),
				Tier:    to.tier,
				AZIndex: az,
				CIDR:    sub.String(),
			})
		}
	}

	return placement, nil
}
