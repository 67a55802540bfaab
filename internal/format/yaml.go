package format

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeYAML serializes a config so a user's customized mapping can be saved
// and replayed later.
func EncodeYAML(c *Config) ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return out, nil
}

// DecodeYAML loads a saved config and validates it. A deserialized config
// behaves identically to the one it was saved from.
func DecodeYAML(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}
