package topology

// ComputeTierSpec is the scalable compute group. It is owned exclusively by
// the topology; its lifetime is the plan's lifetime.
type ComputeTierSpec struct {
	InstanceType string
	// SubnetTier names the tier the group's instances are placed in.
	SubnetTier string
	// BoundaryNode names the security boundary node the group belongs to.
	BoundaryNode    string
	MinCapacity     int
	DesiredCapacity int
	MaxCapacity     int
}

// ComposeCompute binds the compute group to the private-with-egress subnet
// tier and the compute-tier boundary node. Capacity bounds come straight from
// the resolved parameters; Resolve has already enforced min ≤ desired ≤ max.
func ComposeCompute(params Parameters, placement NetworkPlacement, boundary SecurityBoundary) ComputeTierSpec {
	tier, _ := placement.Tier(VisibilityPrivateEgress)
	node, _ := boundary.Node(NodeComputeTier)
	return ComputeTierSpec{
		InstanceType:    params.ComputeInstanceType,
		SubnetTier:      tier.Name,
		BoundaryNode:    node.Name,
		MinCapacity:     params.MinCapacity,
		DesiredCapacity: params.DesiredCapacity,
		MaxCapacity:     params.MaxCapacity,
	}
}
