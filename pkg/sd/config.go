package sd

import (
	"io"

	yaml "gopkg.in/yaml.v2"
)

// EndpointConfig allows the descriptor locations to be overridden, for
// instance when calls should go through a local gateway or a recorded
// test double instead of the hosted service.
type EndpointConfig struct {
	BaseURL   string   `yaml:"baseURL"`
	Endpoints []string `yaml:"endpoints"`
}

func LoadEndpointConfig(data io.Reader) (*EndpointConfig, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &EndpointConfig{}
	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, err
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if len(cfg.Endpoints) == 0 {
		cfg.Endpoints = DefaultEndpoints
	}

	return cfg, nil
}
