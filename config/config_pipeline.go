package config

import (
	"errors"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/pipeline"
)

func (cfg *Config) Pipeline() (*pipeline.Pipeline, error) {
	if cfg.pipeline == nil {
		return nil, errors.New("pipeline not configured")
	}

	return cfg.pipeline, nil
}

type pipelineConfig struct {
	Validate taskConfig `yaml:"validate_documents"`
	Process  taskConfig `yaml:"process_documents"`
	Assess   taskConfig `yaml:"assess_creditworthiness"`
}

type taskConfig struct {
	Agent string `yaml:"agent"`

	Description    string `yaml:"description"`
	ExpectedOutput string `yaml:"expected_output"`
}

func (cfg *Config) registerPipeline(f *configFile) error {
	if f.Pipeline == (pipelineConfig{}) {
		return nil
	}

	validate, err := cfg.createTask(f.Pipeline.Validate)

	if err != nil {
		return err
	}

	process, err := cfg.createTask(f.Pipeline.Process)

	if err != nil {
		return err
	}

	assess, err := cfg.createTask(f.Pipeline.Assess)

	if err != nil {
		return err
	}

	p, err := pipeline.New(
		pipeline.WithValidateTask(validate),
		pipeline.WithProcessTask(process),
		pipeline.WithAssessTask(assess),
	)

	if err != nil {
		return err
	}

	cfg.pipeline = p

	return nil
}

func (cfg *Config) createTask(config taskConfig) (pipeline.Task, error) {
	agent, err := cfg.Agent(config.Agent)

	if err != nil {
		return pipeline.Task{}, err
	}

	return pipeline.Task{
		Completer: agent,

		Description:    config.Description,
		ExpectedOutput: config.ExpectedOutput,
	}, nil
}
