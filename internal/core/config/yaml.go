package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML renders the resolved configuration as YAML
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
