// Package topology composes a small web-service deployment topology — network,
// auto-scaled compute, public entry point, and a managed database with a
// generated credential — into a single provisioning plan.
//
// Composition is synchronous and strictly forward:
//
//	params, _ := topology.Resolve(overrides)
//	plan, _ := topology.Compose(overrides)
//
// Each composer is a pure function of its already-computed inputs; all specs
// are immutable value records once constructed, and the assembled Plan is
// handed whole to an external renderer.
package topology

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Defaults applied by Resolve for every absent override.
const (
	DefaultNetworkCIDR         = "10.20.0.0/16"
	DefaultComputeInstanceType = "t2.micro"
	DefaultDesiredCapacity     = 2
	DefaultMinCapacity         = 1
	DefaultMaxCapacity         = 4
	DefaultDataEngine          = "postgres"
	DefaultDataStorageGiB      = 20
	DefaultDataInstanceType    = "t3.micro"
)

// Parameters are the fully resolved topology inputs. Produced once by Resolve;
// no ambient defaults are consulted after that point.
type Parameters struct {
	NetworkCIDR         string `validate:"required,cidrv4"`
	ComputeInstanceType string `validate:"required"`
	DesiredCapacity     int    `validate:"gte=0,gtefield=MinCapacity,ltefield=MaxCapacity"`
	MinCapacity         int    `validate:"gte=0"`
	MaxCapacity         int    `validate:"gte=0"`
	DataEngine          string `validate:"required"`
	DataStorageGiB      int    `validate:"gt=0"`
	DataInstanceType    string `validate:"required"`
}

// Overrides is the sparse parameter mapping supplied by the caller.
// A nil field means "use the default".
type Overrides struct {
	NetworkCIDR         *string
	ComputeInstanceType *string
	DesiredCapacity     *int
	MinCapacity         *int
	MaxCapacity         *int
	DataEngine          *string
	DataStorageGiB      *int
	DataInstanceType    *string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Resolve applies defaults to the sparse overrides and validates the result.
// It fails with ErrInvalidParameter when the capacity bounds contradict each
// other (min ≤ desired ≤ max must hold), when the network CIDR is not a valid
// IPv4 block, or when the data engine is neither postgres nor mysql
// (case-insensitive). Resolve has no side effects.
func Resolve(o Overrides) (Parameters, error) {
	p := Parameters{
		NetworkCIDR:         DefaultNetworkCIDR,
		ComputeInstanceType: DefaultComputeInstanceType,
		DesiredCapacity:     DefaultDesiredCapacity,
		MinCapacity:         DefaultMinCapacity,
		MaxCapacity:         DefaultMaxCapacity,
		DataEngine:          DefaultDataEngine,
		DataStorageGiB:      DefaultDataStorageGiB,
		DataInstanceType:    DefaultDataInstanceType,
	}

	if o.NetworkCIDR != nil {
		p.NetworkCIDR = *o.NetworkCIDR
	}
	if o.ComputeInstanceType != nil {
		p.ComputeInstanceType = *o.ComputeInstanceType
	}
	if o.DesiredCapacity != nil {
		p.DesiredCapacity = *o.DesiredCapacity
	}
	if o.MinCapacity != nil {
		p.MinCapacity = *o.MinCapacity
	}
	if o.MaxCapacity != nil {
		p.MaxCapacity = *o.MaxCapacity
	}
	if o.DataEngine != nil {
		p.DataEngine = *o.DataEngine
	}
	if o.DataStorageGiB != nil {
		p.DataStorageGiB = *o.DataStorageGiB
	}
	if o.DataInstanceType != nil {
		p.DataInstanceType = *o.DataInstanceType
	}

	if err := validate.Struct(p); err != nil {
		return Parameters{}, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	// Engine membership is checked here, not in the data composer: an
	// unrecognized engine must fail fast instead of silently becoming
	// postgres downstream.
	if !strings.EqualFold(p.DataEngine, string(EnginePostgres)) &&
		!strings.EqualFold(p.DataEngine, string(EngineMySQL)) {
		return Parameters{}, fmt.Errorf("%w: unrecognized data engine %q", ErrInvalidParameter, p.DataEngine)
	}

	return p, nil
}
