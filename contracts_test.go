package stackplan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRef_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		ref      Ref
		expected string
	}{
		{
			name:     "entry point dns",
			ref:      Ref{Resource: "EdgeEntryPoint", Attribute: "DNSName"},
			expected: `{"Fn::GetAtt":["EdgeEntryPoint","DNSName"]}`,
		},
		{
			name:     "database endpoint",
			ref:      Ref{Resource: "DatabaseInstance", Attribute: "EndpointAddress"},
			expected: `{"Fn::GetAtt":["DatabaseInstance","EndpointAddress"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.ref)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestRef_MarshalYAML(t *testing.T) {
	data, err := yaml.Marshal(Ref{Resource: "EdgeEntryPoint", Attribute: "DNSName"})
	require.NoError(t, err)

	var decoded map[string][]string
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"EdgeEntryPoint", "DNSName"}, decoded["Fn::GetAtt"])
}

func TestRef_IsZero(t *testing.T) {
	assert.True(t, Ref{}.IsZero())
	assert.False(t, Ref{Resource: "EdgeEntryPoint"}.IsZero())
	assert.False(t, Ref{Attribute: "DNSName"}.IsZero())
}

func TestPlanDocument_JSONShape(t *testing.T) {
	doc := PlanDocument{
		FormatVersion: "2024-06-01",
		Resources: map[string]ResourceEntry{
			"Network": {Type: "Cloud::Network::Placement"},
		},
		Order: []string{"Network"},
		Outputs: map[string]Output{
			"ALB-DNS": {Value: Ref{Resource: "EdgeEntryPoint", Attribute: "DNSName"}},
		},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "FormatVersion")
	assert.Contains(t, decoded, "Resources")
	assert.Contains(t, decoded, "Order")
	assert.Contains(t, decoded, "Outputs")
}
