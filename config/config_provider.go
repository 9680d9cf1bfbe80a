package config

import (
	"errors"
	"strings"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/limiter"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/otel"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider/anthropic"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider/mistral"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider/openai"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool/docqa"
)

func (cfg *Config) RegisterModel(id string) {
	if cfg.models == nil {
		cfg.models = make(map[string]provider.Model)
	}

	cfg.models[id] = provider.Model{ID: id}
}

func (cfg *Config) Models() []provider.Model {
	var models []provider.Model

	for _, m := range cfg.models {
		models = append(models, m)
	}

	return models
}

func (cfg *Config) RegisterCompleter(id string, p provider.Completer) {
	cfg.RegisterModel(id)

	if cfg.completer == nil {
		cfg.completer = make(map[string]provider.Completer)
	}

	cfg.completer[id] = p
}

func (cfg *Config) Completer(id string) (provider.Completer, error) {
	if cfg.completer != nil {
		if p, ok := cfg.completer[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("completer not found: " + id)
}

func (cfg *Config) RegisterStorage(id string, s docqa.Storage) {
	if cfg.storages == nil {
		cfg.storages = make(map[string]docqa.Storage)
	}

	cfg.storages[id] = s
}

func (cfg *Config) Storage(id string) (docqa.Storage, error) {
	if cfg.storages != nil {
		if s, ok := cfg.storages[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("storage not found: " + id)
}

type providerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Limit *int `yaml:"limit"`

	Models map[string]modelConfig `yaml:"models"`
}

type modelConfig struct {
	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerProviders(f *configFile) error {
	for _, p := range f.Providers {
		if err := cfg.registerProvider(p); err != nil {
			return err
		}
	}

	return nil
}

func (cfg *Config) registerProvider(p providerConfig) error {
	name := strings.ToLower(p.Type)

	switch name {
	case "openai":
		for id, m := range p.Models {
			completer, err := openai.NewCompleter(p.URL, id, openai.WithToken(p.Token))

			if err != nil {
				return err
			}

			cfg.RegisterCompleter(id, wrapCompleter(name, id, completer, limit(p, m)))
		}

	case "anthropic":
		for id, m := range p.Models {
			completer, err := anthropic.NewCompleter(p.URL, id, anthropic.WithToken(p.Token))

			if err != nil {
				return err
			}

			cfg.RegisterCompleter(id, wrapCompleter(name, id, completer, limit(p, m)))
		}

	case "mistral":
		options := []mistral.Option{
			mistral.WithToken(p.Token),
		}

		if p.URL != "" {
			options = append(options, mistral.WithURL(p.URL))
		}

		client, err := mistral.New(options...)

		if err != nil {
			return err
		}

		cfg.RegisterStorage(name, client)

		for id, m := range p.Models {
			completer, err := mistral.NewCompleter(id, options...)

			if err != nil {
				return err
			}

			cfg.RegisterCompleter(id, wrapCompleter(name, id, completer, limit(p, m)))
		}

	default:
		return errors.New("invalid provider type: " + p.Type)
	}

	return nil
}

func limit(p providerConfig, m modelConfig) *int {
	if m.Limit != nil {
		return m.Limit
	}

	return p.Limit
}

func wrapCompleter(name, model string, p provider.Completer, l *int) provider.Completer {
	if l != nil {
		p = limiter.NewCompleter(createLimiter(l), p)
	}

	return otel.NewCompleter(name, model, p)
}
