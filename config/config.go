package config

import (
	"bytes"
	"os"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/auth"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/mcp"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/pipeline"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool/docqa"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Authorizers []auth.Provider

	models map[string]provider.Model

	completer map[string]provider.Completer
	storages  map[string]docqa.Storage

	tools  map[string]tool.Provider
	agents map[string]provider.Completer

	pipeline *pipeline.Pipeline

	mcps map[string]*mcp.Server
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerAuthorizers(file); err != nil {
		return nil, err
	}

	if err := c.registerProviders(file); err != nil {
		return nil, err
	}

	if err := c.registerTools(file); err != nil {
		return nil, err
	}

	if err := c.registerAgents(file); err != nil {
		return nil, err
	}

	if err := c.registerPipeline(file); err != nil {
		return nil, err
	}

	if err := c.registerMCP(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Authorizers []authorizerConfig `yaml:"authorizers"`

	Providers []providerConfig `yaml:"providers"`

	Tools  yaml.Node `yaml:"tools"`
	Agents yaml.Node `yaml:"agents"`

	Pipeline pipelineConfig `yaml:"pipeline"`

	MCPs yaml.Node `yaml:"mcps"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
