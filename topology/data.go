package topology

import "strings"

// Engine is a supported managed-database engine.
type Engine string

const (
	EnginePostgres Engine = "postgres"
	EngineMySQL    Engine = "mysql"
)

// Engine versions are pinned per engine; the topology does not track minors.
const (
	postgresEngineVersion = "15"
	mysqlEngineVersion    = "8.0.33"
)

// DataTierSpec is the managed relational database. MultiAZ and
// DeletionProtection are always false: a deliberate dev/test posture. Promote
// them to Parameters before reusing this topology as a production template.
type DataTierSpec struct {
	Engine        Engine
	EngineVersion string
	StorageGiB    int
	InstanceType  string
	SubnetTier    string
	BoundaryNode  string
	// Credential is the generation instruction for the admin credential;
	// the spec carries the instruction, never a secret value.
	Credential         CredentialDescriptor
	MultiAZ            bool
	DeletionProtection bool
}

// ComposeData binds the database to the private-with-egress subnet tier, the
// data-tier boundary node, and the credential descriptor. Engine selection is
// a binary branch: mysql (case-insensitive) pins 8.0.33, anything else pins
// postgres 15 — Resolve has already rejected engines outside the enum.
func ComposeData(params Parameters, placement NetworkPlacement, boundary SecurityBoundary, credential CredentialDescriptor) DataTierSpec {
	engine := EnginePostgres
	version := postgresEngineVersion
	if strings.EqualFold(params.DataEngine, string(EngineMySQL)) {
		engine = EngineMySQL
		version = mysqlEngineVersion
	}

	tier, _ := placement.Tier(VisibilityPrivateEgress)
	node, _ := boundary.Node(NodeDataTier)
	return DataTierSpec{
		Engine:             engine,
		EngineVersion:      version,
		StorageGiB:         params.DataStorageGiB,
		InstanceType:       params.DataInstanceType,
		SubnetTier:         tier.Name,
		BoundaryNode:       node.Name,
		Credential:         credential,
		MultiAZ:            false,
		DeletionProtection: false,
	}
}
