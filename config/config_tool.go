package config

import (
	"errors"
	"strings"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/otel"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool/directory"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool/docqa"
)

func (cfg *Config) RegisterTool(id string, p tool.Provider) {
	if cfg.tools == nil {
		cfg.tools = make(map[string]tool.Provider)
	}

	cfg.tools[id] = p
}

func (cfg *Config) Tool(id string) (tool.Provider, error) {
	if cfg.tools != nil {
		if p, ok := cfg.tools[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("tool not found: " + id)
}

type toolConfig struct {
	Type string `yaml:"type"`

	Model   string `yaml:"model"`
	Storage string `yaml:"storage"`

	Path string `yaml:"path"`
}

func (cfg *Config) registerTools(f *configFile) error {
	var configs map[string]toolConfig

	if err := f.Tools.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Tools.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		tool, err := cfg.createTool(config)

		if err != nil {
			return err
		}

		cfg.RegisterTool(id, otel.NewTool(config.Type, tool))
	}

	return nil
}

func (cfg *Config) createTool(config toolConfig) (tool.Provider, error) {
	switch strings.ToLower(config.Type) {
	case "document_qa":
		storage, err := cfg.Storage(config.Storage)

		if err != nil {
			return nil, err
		}

		completer, err := cfg.Completer(config.Model)

		if err != nil {
			return nil, err
		}

		return docqa.New(storage, completer)

	case "directory":
		return directory.New(config.Path)

	default:
		return nil, errors.New("invalid tool type: " + config.Type)
	}
}
