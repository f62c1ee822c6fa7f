// Package render turns an assembled topology plan into the plan document
// handed to the external control plane.
package render

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	stackplan "github.com/stackplan/stackplan-go"
	"github.com/stackplan/stackplan-go/topology"
)

const formatVersion = "2024-06-01"

// Control-plane resource types, one per plan entity.
var resourceTypes = map[string]string{
	topology.ResourceNetwork:    "Cloud::Network::Placement",
	topology.ResourceBoundary:   "Cloud::Network::BoundaryGraph",
	topology.ResourceCredential: "Cloud::Secret::GeneratedCredential",
	topology.ResourceCompute:    "Cloud::Compute::ScalingGroup",
	topology.ResourceEdge:       "Cloud::Edge::LoadBalancer",
	topology.ResourceData:       "Cloud::Data::ManagedDatabase",
}

// Document renders the plan: one resource entry per plan entity, DependsOn
// edges from the plan's dependency graph, and the output set as deferred
// references. The renderer applies creations in Document.Order.
func Document(p *topology.Plan) (*stackplan.PlanDocument, error) {
	specs := map[string]any{
		topology.ResourceNetwork:    p.Network,
		topology.ResourceBoundary:   p.Boundary,
		topology.ResourceCredential: p.Credential,
		topology.ResourceCompute:    p.Compute,
		topology.ResourceEdge:       p.Edge,
		topology.ResourceData:       p.Data,
	}

	deps := p.Dependencies()
	doc := &stackplan.PlanDocument{
		FormatVersion: formatVersion,
		Description:   "Web service topology: edge, auto-scaled compute, managed database",
		Resources:     make(map[string]stackplan.ResourceEntry, len(specs)),
		Order:         append([]string(nil), p.Order...),
	}

	for _, name := range p.Order {
		spec, ok := specs[name]
		if !ok {
			return nil, fmt.Errorf("plan orders unknown resource %q", name)
		}

		props, err := properties(name, spec)
		if err != nil {
			return nil, fmt.Errorf("serializing %s: %w", name, err)
		}

		dependsOn := append([]string(nil), deps[name]...)
		sort.Strings(dependsOn)

		doc.Resources[name] = stackplan.ResourceEntry{
			Type:       resourceTypes[name],
			Properties: props,
			DependsOn:  dependsOn,
		}
	}

	doc.Outputs = make(map[string]stackplan.Output, len(p.Outputs))
	for _, out := range p.Outputs {
		doc.Outputs[out.Name] = stackplan.Output{
			Description: outputDescription(out.Name),
			Value:       stackplan.Ref{Resource: out.Resource, Attribute: out.Attribute},
		}
	}

	return doc, nil
}

func outputDescription(name string) string {
	switch name {
	case topology.OutputEntryPoint:
		return "Public DNS name of the entry point"
	case topology.OutputDataEndpoint:
		return "Endpoint address of the managed database"
	default:
		return ""
	}
}

// ToJSON serializes the document to indented JSON.
func ToJSON(doc *stackplan.PlanDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// ToYAML serializes the document to YAML.
func ToYAML(doc *stackplan.PlanDocument) ([]byte, error) {
	return yaml.Marshal(doc)
}
