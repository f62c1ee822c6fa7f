package topology

// Fixed health-check contract between the entry point and the compute group.
const (
	healthCheckPath            = "/health"
	healthCheckIntervalSeconds = 60
)

// HealthCheck is the probe the entry point runs against its targets.
type HealthCheck struct {
	Path            string
	IntervalSeconds int
}

// EdgeSpec is the public entry point. Its Target is a plan identifier, not a
// pointer: the relation to the compute group is advisory (plan-graph ordering
// and entry-point output resolution only) and must not create an ownership
// cycle between the two specs.
type EdgeSpec struct {
	SubnetTier   string
	BoundaryNode string
	ListenerPort int
	HealthCheck  HealthCheck
	Target       string
}

// ComposeEdge binds the entry point to the public subnet tier and the
// edge-tier boundary node, listening on port 80 with the fixed health-check
// policy. The compute argument is recorded by identifier only.
func ComposeEdge(placement NetworkPlacement, boundary SecurityBoundary, compute ComputeTierSpec) EdgeSpec {
	tier, _ := placement.Tier(VisibilityPublic)
	node, _ := boundary.Node(NodeEdgeTier)
	target := ""
	if compute.BoundaryNode != "" {
		target = ResourceCompute
	}
	return EdgeSpec{
		SubnetTier:   tier.Name,
		BoundaryNode: node.Name,
		ListenerPort: edgeListenerPort,
		HealthCheck: HealthCheck{
			Path:            healthCheckPath,
			IntervalSeconds: healthCheckIntervalSeconds,
		},
		Target: target,
	}
}
