// Package stackplan provides the wire contracts for web-service topology plans.
//
// A topology is composed in-process by the topology package and handed to an
// external control plane as a PlanDocument:
//
//	plan, err := topology.Compose(topology.Overrides{})
//	doc := render.Document(plan)
//
// The control plane is responsible for materializing each resource entry and
// for resolving deferred references (Ref) to concrete values after creation.
package stackplan

import (
	"encoding/json"
)

// Ref is a deferred reference to an attribute of a planned resource.
// The value it names does not exist until the external control plane has
// materialized the resource; the plan carries the reference, never the value.
//
// When serialized, Ref becomes:
//
//	{"Fn::GetAtt": ["EdgeEntryPoint", "DNSName"]}
type Ref struct {
	// Resource is the logical name of the referenced resource entry
	Resource string
	// Attribute is the attribute name (e.g., "DNSName", "EndpointAddress")
	Attribute string
}

// MarshalJSON serializes Ref in deferred-attribute syntax.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]string{
		"Fn::GetAtt": {r.Resource, r.Attribute},
	})
}

// MarshalYAML serializes Ref the same way as JSON so both encodings agree.
func (r Ref) MarshalYAML() (any, error) {
	return map[string][]string{
		"Fn::GetAtt": {r.Resource, r.Attribute},
	}, nil
}

// IsZero returns true if the Ref has not been populated.
func (r Ref) IsZero() bool {
	return r.Resource == "" && r.Attribute == ""
}

// PlanDocument is the rendered provisioning plan consumed by the external
// control plane. Resources are keyed by logical name; Order lists them in
// the dependency order creations must be applied in.
type PlanDocument struct {
	FormatVersion string                   `json:"FormatVersion" yaml:"FormatVersion"`
	Description   string                   `json:"Description,omitempty" yaml:"Description,omitempty"`
	Resources     map[string]ResourceEntry `json:"Resources" yaml:"Resources"`
	Order         []string                 `json:"Order" yaml:"Order"`
	Outputs       map[string]Output        `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// ResourceEntry is a single resource creation call in the plan document.
type ResourceEntry struct {
	Type       string         `json:"Type" yaml:"Type"`
	Properties map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn  []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
}

// Output is a named post-deploy output of the plan.
type Output struct {
	Description string `json:"Description,omitempty" yaml:"Description,omitempty"`
	Value       any    `json:"Value" yaml:"Value"`
}

// ComposeResult is the JSON output from `stackplan compose`.
type ComposeResult struct {
	Success   bool         `json:"success"`
	Document  PlanDocument `json:"document,omitempty"`
	Resources []string     `json:"resources,omitempty"`
	Errors    []string     `json:"errors,omitempty"`
}

// ValidateResult is the JSON output from `stackplan validate`.
type ValidateResult struct {
	Success  bool     `json:"success"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
