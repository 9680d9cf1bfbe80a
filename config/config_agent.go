package config

import (
	"errors"
	"strings"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/agent"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool"
)

func (cfg *Config) RegisterAgent(id string, p provider.Completer) {
	if cfg.agents == nil {
		cfg.agents = make(map[string]provider.Completer)
	}

	cfg.agents[id] = p
}

func (cfg *Config) Agent(id string) (provider.Completer, error) {
	if cfg.agents != nil {
		if p, ok := cfg.agents[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("agent not found: " + id)
}

type agentConfig struct {
	Model string `yaml:"model"`

	Role      string `yaml:"role"`
	Goal      string `yaml:"goal"`
	Backstory string `yaml:"backstory"`

	Tools []string `yaml:"tools"`

	Temperature *float32 `yaml:"temperature"`
}

func (cfg *Config) registerAgents(f *configFile) error {
	var configs map[string]agentConfig

	if err := f.Agents.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Agents.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		completer, err := cfg.Completer(config.Model)

		if err != nil {
			return err
		}

		var tools []tool.Provider

		for _, t := range config.Tools {
			tool, err := cfg.Tool(t)

			if err != nil {
				return err
			}

			tools = append(tools, tool)
		}

		options := []agent.Option{
			agent.WithCompleter(completer),
			agent.WithTools(tools...),
		}

		if prompt := agentPrompt(config); prompt != "" {
			options = append(options, agent.WithMessages(provider.SystemMessage(prompt)))
		}

		if config.Temperature != nil {
			options = append(options, agent.WithTemperature(*config.Temperature))
		}

		a, err := agent.New(config.Model, options...)

		if err != nil {
			return err
		}

		cfg.RegisterAgent(id, a)
	}

	return nil
}

func agentPrompt(config agentConfig) string {
	var parts []string

	if config.Role != "" {
		parts = append(parts, "You are "+strings.TrimSpace(config.Role)+".")
	}

	if config.Backstory != "" {
		parts = append(parts, strings.TrimSpace(config.Backstory))
	}

	if config.Goal != "" {
		parts = append(parts, "Your personal goal is: "+strings.TrimSpace(config.Goal))
	}

	return strings.Join(parts, "\n")
}
