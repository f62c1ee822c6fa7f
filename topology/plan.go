package topology

import (
	"fmt"
	"sort"
)

// Logical resource names in the assembled plan. The external control plane
// maps each to exactly one resource creation call.
const (
	ResourceNetwork    = "Network"
	ResourceBoundary   = "SecurityBoundary"
	ResourceCredential = "DataCredential"
	ResourceCompute    = "ComputeGroup"
	ResourceEdge       = "EdgeEntryPoint"
	ResourceData       = "DatabaseInstance"
)

// Output names and the resource attributes they defer to.
const (
	OutputEntryPoint   = "ALB-DNS"
	OutputDataEndpoint = "RDS-Endpoint"

	AttrEntryPointDNS = "DNSName"
	AttrDataEndpoint  = "EndpointAddress"
)

// PlanOutput is a named deferred-value reference in the plan's output set.
// The value only becomes resolvable after the control plane materializes the
// referenced resource.
type PlanOutput struct {
	Name      string
	Resource  string
	Attribute string
}

// Plan is the complete, ordered, immutable set of resource specs and outputs,
// ready for external provisioning. Constructed once by Assemble and never
// mutated afterward.
type Plan struct {
	Parameters Parameters
	Network    NetworkPlacement
	Boundary   SecurityBoundary
	Compute    ComputeTierSpec
	Edge       EdgeSpec
	Data       DataTierSpec
	Credential CredentialDescriptor

	// Order lists resource names in the dependency order creations must
	// be applied in.
	Order []string
	// Outputs is the ordered output set: entry-point address first, then
	// the data-tier endpoint.
	Outputs []PlanOutput
}

// Dependencies returns the plan's resource dependency graph: for each
// resource, the resources that must be created before it.
func (p *Plan) Dependencies() map[string][]string {
	return planDependencies()
}

func planDependencies() map[string][]string {
	return map[string][]string{
		ResourceNetwork:    nil,
		ResourceBoundary:   nil,
		ResourceCredential: nil,
		ResourceCompute:    {ResourceNetwork, ResourceBoundary},
		ResourceEdge:       {ResourceNetwork, ResourceBoundary, ResourceCompute},
		ResourceData:       {ResourceNetwork, ResourceBoundary, ResourceCredential},
	}
}

// Assemble orders the composed specs into a single acyclic resource graph and
// extracts the output set. It fails with ErrDependencyCycle when a spec's
// cross-references do not resolve — the signature of a caller invoking
// composers out of the standard sequence — or when the graph cannot be
// topologically ordered. On success the plan holds exactly two outputs:
// "ALB-DNS" and "RDS-Endpoint".
func Assemble(
	params Parameters,
	network NetworkPlacement,
	boundary SecurityBoundary,
	compute ComputeTierSpec,
	edge EdgeSpec,
	data DataTierSpec,
	credential CredentialDescriptor,
) (*Plan, error) {
	if err := checkReferences(network, boundary, compute, edge, data); err != nil {
		return nil, err
	}

	order, err := topologicalOrder(planDependencies())
	if err != nil {
		return nil, err
	}

	return &Plan{
		Parameters: params,
		Network:    network,
		Boundary:   boundary,
		Compute:    compute,
		Edge:       edge,
		Data:       data,
		Credential: credential,
		Order:      order,
		Outputs: []PlanOutput{
			{Name: OutputEntryPoint, Resource: ResourceEdge, Attribute: AttrEntryPointDNS},
			{Name: OutputDataEndpoint, Resource: ResourceData, Attribute: AttrDataEndpoint},
		},
	}, nil
}

// checkReferences verifies every cross-reference between specs resolves to an
// entity composed earlier in the standard sequence. Defensive: none of these
// fire when the composers run in the documented order.
func checkReferences(network NetworkPlacement, boundary SecurityBoundary, compute ComputeTierSpec, edge EdgeSpec, data DataTierSpec) error {
	tierNames := make(map[string]bool, len(network.Tiers))
	for _, t := range network.Tiers {
		tierNames[t.Name] = true
	}
	nodeNames := make(map[string]bool, len(boundary.Nodes))
	for _, n := range boundary.Nodes {
		nodeNames[n.Name] = true
	}

	for _, ref := range []struct{ spec, tier, node string }{
		{ResourceCompute, compute.SubnetTier, compute.BoundaryNode},
		{ResourceEdge, edge.SubnetTier, edge.BoundaryNode},
		{ResourceData, data.SubnetTier, data.BoundaryNode},
	} {
		if !tierNames[ref.tier] {
			return fmt.Errorf("%w: %s references subnet tier %q before the network was composed", ErrDependencyCycle, ref.spec, ref.tier)
		}
		if !nodeNames[ref.node] {
			return fmt.Errorf("%w: %s references boundary node %q before the boundary was composed", ErrDependencyCycle, ref.spec, ref.node)
		}
	}

	if edge.Target != ResourceCompute {
		return fmt.Errorf("%w: edge targets %q before the compute tier was composed", ErrDependencyCycle, edge.Target)
	}

	return nil
}

// topologicalOrder sorts the dependency graph with Kahn's algorithm. Ties are
// broken alphabetically so the order is deterministic across runs.
func topologicalOrder(deps map[string][]string) ([]string, error) {
	successors := make(map[string][]string)
	inDegree := make(map[string]int)

	for name := range deps {
		successors[name] = nil
		inDegree[name] = 0
	}
	for name, reqs := range deps {
		for _, dep := range reqs {
			if _, exists := deps[dep]; !exists {
				return nil, fmt.Errorf("%w: %s depends on unknown resource %s", ErrDependencyCycle, name, dep)
			}
			successors[dep] = append(successors[dep], name)
			inDegree[name]++
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var result []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, next := range successors[node] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
				sort.Strings(queue)
			}
		}
	}

	if len(result) != len(deps) {
		return nil, cycleError(deps)
	}

	return result, nil
}

// cycleError names the resources participating in a dependency cycle.
func cycleError(deps map[string][]string) error {
	visited := make(map[string]bool)
	path := make(map[string]bool)

	var cycle []string
	var walk func(node string) bool
	walk = func(node string) bool {
		visited[node] = true
		path[node] = true

		for _, dep := range deps[node] {
			if !visited[dep] {
				if walk(dep) {
					cycle = append([]string{node}, cycle...)
					return true
				}
			} else if path[dep] {
				cycle = append([]string{dep, node}, cycle...)
				return true
			}
		}

		path[node] = false
		return false
	}

	for name := range deps {
		if !visited[name] {
			if walk(name) {
				break
			}
		}
	}

	if len(cycle) > 0 {
		return fmt.Errorf("%w: %v", ErrDependencyCycle, cycle)
	}
	return fmt.Errorf("%w: circular dependency detected", ErrDependencyCycle)
}

// Compose runs the full composition pipeline in the fixed dependency order:
// resolver → {network, boundary} → {compute, edge, credential, data} →
// assembler. Composition either yields a complete plan or fails before
// producing one; partial plans are never surfaced. Calling Compose twice with
// identical overrides produces structurally identical plans.
func Compose(o Overrides) (*Plan, error) {
	params, err := Resolve(o)
	if err != nil {
		return nil, err
	}

	network, err := ComposeNetwork(params.NetworkCIDR)
	if err != nil {
		return nil, err
	}
	boundary := ComposeBoundary()

	compute := ComposeCompute(params, network, boundary)
	edge := ComposeEdge(network, boundary, compute)
	credential := ProvisionCredential()
	data := ComposeData(params, network, boundary, credential)

	return Assemble(params, network, boundary, compute, edge, data, credential)
}
