package config

import (
	"fmt"
	"os"

	"github.com/natesales/ansible-module-aarch64-vm/internal/aarch64"

	"gopkg.in/yaml.v2"
)

// Config contains aarch64ctl configuration
type Config struct {
	// Console API credentials
	APIKey string `yaml:"api_key"`

	// Server overrides the console API base URL (self-hosted consoles)
	Server string `yaml:"server"`
}

// Load loads configuration from path, falling back to the AARCH64_CONFIG
// environment variable and then ./aarch64.yaml. The config file is
// optional: AARCH64_API_KEY alone is enough.
func Load(path string) (*Config, error) {
	config := &Config{}

	explicit := path != ""
	configPath := path
	if configPath == "" {
		configPath = os.Getenv("AARCH64_CONFIG")
	}
	if configPath == "" {
		configPath = "aarch64.yaml"
	}

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %v", err)
		}
	} else if explicit {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	// Expand environment variables in string fields
	config.APIKey = os.ExpandEnv(config.APIKey)
	config.Server = os.ExpandEnv(config.Server)

	// Override with environment variables if set
	if key := os.Getenv("AARCH64_API_KEY"); key != "" {
		config.APIKey = key
	}

	if server := os.Getenv("AARCH64_SERVER"); server != "" {
		config.Server = server
	}

	if config.Server == "" {
		config.Server = aarch64.DefaultServer
	}

	// Validate required parameters
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required (set api_key in config file or AARCH64_API_KEY environment variable)")
	}

	return config, nil
}
