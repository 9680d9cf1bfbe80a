package config

import (
	"errors"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/mcp"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool"
)

func (cfg *Config) RegisterMCP(id string, s *mcp.Server) {
	if cfg.mcps == nil {
		cfg.mcps = make(map[string]*mcp.Server)
	}

	cfg.mcps[id] = s
}

func (cfg *Config) MCP(id string) (*mcp.Server, error) {
	if cfg.mcps != nil {
		if s, ok := cfg.mcps[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("mcp not found: " + id)
}

type mcpConfig struct {
	Name string `yaml:"name"`

	Tools []string `yaml:"tools"`
}

func (cfg *Config) registerMCP(f *configFile) error {
	var configs map[string]mcpConfig

	if err := f.MCPs.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.MCPs.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		var tools []tool.Provider

		for _, t := range config.Tools {
			tool, err := cfg.Tool(t)

			if err != nil {
				return err
			}

			tools = append(tools, tool)
		}

		name := config.Name

		if name == "" {
			name = id
		}

		server, err := mcp.New(name, tools)

		if err != nil {
			return err
		}

		cfg.RegisterMCP(id, server)
	}

	return nil
}
