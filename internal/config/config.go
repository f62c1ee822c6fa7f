// Package config loads the sparse topology overrides from a YAML file and
// STACKPLAN_* environment variables. An absent key means "use the default";
// defaulting itself is the parameter resolver's job, not this package's.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/stackplan/stackplan-go/topology"
)

const envPrefix = "STACKPLAN"

// Recognized override keys.
var overrideKeys = []string{
	"network_cidr",
	"compute_instance_type",
	"desired_capacity",
	"min_capacity",
	"max_capacity",
	"data_engine",
	"data_storage_gib",
	"data_instance_type",
}

// LoadOverrides reads overrides from path (optional) and the environment.
// A missing file at the default location yields empty overrides; an explicit
// path that does not exist is an error.
func LoadOverrides(path string) (topology.Overrides, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	for _, key := range overrideKeys {
		if err := v.BindEnv(key); err != nil {
			return topology.Overrides{}, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return topology.Overrides{}, fmt.Errorf("overrides file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("stackplan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return topology.Overrides{}, fmt.Errorf("reading overrides: %w", err)
		}
	}

	return overridesFrom(v), nil
}

// overridesFrom maps set keys to override fields, leaving absent keys nil.
func overridesFrom(v *viper.Viper) topology.Overrides {
	var o topology.Overrides

	setString := func(key string, dst **string) {
		if v.IsSet(key) {
			s := v.GetString(key)
			*dst = &s
		}
	}
	setInt := func(key string, dst **int) {
		if v.IsSet(key) {
			n := v.GetInt(key)
			*dst = &n
		}
	}

	setString("network_cidr", &o.NetworkCIDR)
	setString("compute_instance_type", &o.ComputeInstanceType)
	setInt("desired_capacity", &o.DesiredCapacity)
	setInt("min_capacity", &o.MinCapacity)
	setInt("max_capacity", &o.MaxCapacity)
	setString("data_engine", &o.DataEngine)
	setInt("data_storage_gib", &o.DataStorageGiB)
	setString("data_instance_type", &o.DataInstanceType)

	return o
}
