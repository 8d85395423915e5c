// Package config holds the client-side configuration used by the façades
// in pkg/client: named nodes pointing at the remote services produced from
// the generated stubs.
package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taskmesh/protokit/pkg/errors"
)

// ClientConfig is the top-level client configuration: a set of named nodes
// a consuming service can connect to.
type ClientConfig struct {
	Version string           `yaml:"version"`
	Nodes   map[string]*Node `yaml:"nodes"`
}

// Node represents a single remote server a façade connects to.
type Node struct {
	Address string `yaml:"address"`
	CA      string `yaml:"ca"` // Embedded PEM CA certificate; empty means an insecure channel

	// CallTimeout bounds each unary call when the caller's context carries
	// no deadline of its own. Zero means no façade-imposed deadline.
	CallTimeout time.Duration `yaml:"call_timeout"`

	// WaitForReady makes calls block while the connection is being
	// established instead of failing fast on a transient state.
	WaitForReady bool `yaml:"wait_for_ready"`
}

// TLSConfig builds a client TLS config from the node's embedded CA
// certificate. Returns nil when the node is configured for an insecure
// channel.
func (n *Node) TLSConfig() (*tls.Config, error) {
	if n.CA == "" {
		return nil, nil
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM([]byte(n.CA)) {
		return nil, errors.WrapConfigError("node", "ca", fmt.Errorf("failed to parse CA certificate"))
	}

	return &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}, nil
}

// LoadClientConfig loads the client configuration from the specified file.
//
// When configPath is empty, the following locations are searched in order:
//
//  1. Path from PROTOKIT_CONFIG environment variable
//
//  2. ./protokit-client.yml
//
//  3. ./config/protokit-client.yml
//
//  4. ~/.protokit/client.yml
//
//  5. /etc/protokit/client.yml
//
// Parses YAML configuration and validates that at least one node is
// configured.
func LoadClientConfig(configPath string) (*ClientConfig, error) {
	if configPath == "" {
		configPath = findClientConfig()
		if configPath == "" {
			return nil, errors.WrapConfigError("client", "",
				fmt.Errorf("configuration file not found; create protokit-client.yml or pass --config"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.WrapConfigError("client", "",
			fmt.Errorf("failed to read %s: %w", configPath, err))
	}

	var config ClientConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.WrapConfigError("client", "",
			fmt.Errorf("failed to parse %s: %w", configPath, err))
	}

	if len(config.Nodes) == 0 {
		return nil, errors.WrapConfigError("client", "nodes",
			fmt.Errorf("no nodes configured in %s", configPath))
	}

	return &config, nil
}

// GetNode retrieves the configuration for a named node. An empty name
// selects the "default" node.
func (c *ClientConfig) GetNode(nodeName string) (*Node, error) {
	if nodeName == "" {
		nodeName = "default"
	}

	node, exists := c.Nodes[nodeName]
	if !exists {
		return nil, errors.WrapConfigError("client", "nodes",
			fmt.Errorf("%w: %s", errors.ErrNodeNotFound, nodeName))
	}

	return node, nil
}

// ListNodes returns the names of all configured nodes.
func (c *ClientConfig) ListNodes() []string {
	var nodes []string
	for name := range c.Nodes {
		nodes = append(nodes, name)
	}
	return nodes
}

func findClientConfig() string {
	if envPath := os.Getenv("PROTOKIT_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	locations := []string{
		"./protokit-client.yml",
		"./config/protokit-client.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".protokit", "client.yml"))
	}
	locations = append(locations, "/etc/protokit/client.yml")

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}
