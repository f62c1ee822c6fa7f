package render

import (
	"github.com/stackplan/stackplan-go/internal/serialize"
	"github.com/stackplan/stackplan-go/topology"
)

// properties serializes one spec to its resource property map.
func properties(name string, spec any) (map[string]any, error) {
	props, err := serialize.Properties(spec)
	if err != nil {
		return nil, err
	}

	// The serializer omits zero values, but the data tier's hardening
	// posture must be stated explicitly in the document: the control plane
	// treats absence as "provider default", and these are not defaults.
	if name == topology.ResourceData {
		data := spec.(topology.DataTierSpec)
		props["MultiAZ"] = data.MultiAZ
		props["DeletionProtection"] = data.DeletionProtection
	}

	// Same for the data tier's outbound denial on the boundary graph.
	if name == topology.ResourceBoundary {
		boundary := spec.(topology.SecurityBoundary)
		if nodes, ok := props["Nodes"].([]any); ok {
			for i, n := range boundary.Nodes {
				if node, ok := nodes[i].(map[string]any); ok {
					node["DenyAllOutbound"] = n.DenyAllOutbound
				}
			}
		}
	}

	return props, nil
}
