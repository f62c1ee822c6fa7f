package topology

// Logical tier names, used as node identities in the security boundary graph.
const (
	NodeEdgeTier    = "edge-tier"
	NodeComputeTier = "compute-tier"
	NodeDataTier    = "data-tier"
)

const (
	// AnyAddress is the unrestricted source range. Exactly one inbound rule
	// in the boundary graph may use it.
	AnyAddress = "0.0.0.0/0"

	edgeListenerPort = 80
	dataEnginePort   = 5432

	protocolTCP = "tcp"
)

// IngressRule permits traffic from a raw address range to a boundary node.
type IngressRule struct {
	SourceCIDR string
	Port       int
	Protocol   string
}

// BoundaryNode is a named node in the security boundary graph. Nodes own no
// state beyond identity and their local inbound/outbound posture.
type BoundaryNode struct {
	Name string
	// PublicIngress, when set, permits traffic from any source address.
	// Only the edge tier carries one.
	PublicIngress *IngressRule
	// DenyAllOutbound forbids the node from initiating any traffic.
	// Set on the data tier as a deliberate hardening decision.
	DenyAllOutbound bool
}

// BoundaryEdge permits traffic from one boundary node to another on a single
// port/protocol pair. Edges are the only relationship between nodes.
type BoundaryEdge struct {
	From     string
	To       string
	Port     int
	Protocol string
}

// SecurityBoundary is the directed graph of access-control rules between the
// logical tiers. Built once by ComposeBoundary and read-only thereafter.
type SecurityBoundary struct {
	Nodes []BoundaryNode
	Edges []BoundaryEdge
}

// Node returns the named boundary node.
func (b SecurityBoundary) Node(name string) (BoundaryNode, bool) {
	for _, n := range b.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return BoundaryNode{}, false
}

// UnrestrictedInbound returns the nodes that accept traffic from any source
// address. A well-formed boundary has exactly one: the edge tier.
func (b SecurityBoundary) UnrestrictedInbound() []BoundaryNode {
	var open []BoundaryNode
	for _, n := range b.Nodes {
		if n.PublicIngress != nil {
			open = append(open, n)
		}
	}
	return open
}

// ComposeBoundary builds the three-node access-control graph:
//
//	anywhere → edge-tier    :80  (the single world-open rule)
//	edge-tier → compute-tier :80
//	compute-tier → data-tier :5432
//
// The data tier additionally denies all outbound traffic; inbound to it is
// restricted to the compute tier only.
func ComposeBoundary() SecurityBoundary {
	return SecurityBoundary{
		Nodes: []BoundaryNode{
			{
				Name: NodeEdgeTier,
				PublicIngress: &IngressRule{
					SourceCIDR: AnyAddress,
					Port:       edgeListenerPort,
					Protocol:   protocolTCP,
				},
			},
			{Name: NodeComputeTier},
			{Name: NodeDataTier, DenyAllOutbound: true},
		},
		Edges: []BoundaryEdge{
			{From: NodeEdgeTier, To: NodeComputeTier, Port: edgeListenerPort, Protocol: protocolTCP},
			{From: NodeComputeTier, To: NodeDataTier, Port: dataEnginePort, Protocol: protocolTCP},
		},
	}
}
