package config

import (
	"errors"
	"strings"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/auth"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/auth/oidc"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/auth/static"
)

type authorizerConfig struct {
	Type string `yaml:"type"`

	Token string `yaml:"token"`

	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

func (cfg *Config) registerAuthorizers(f *configFile) error {
	for _, a := range f.Authorizers {
		authorizer, err := createAuthorizer(a)

		if err != nil {
			return err
		}

		cfg.Authorizers = append(cfg.Authorizers, authorizer)
	}

	return nil
}

func createAuthorizer(config authorizerConfig) (auth.Provider, error) {
	switch strings.ToLower(config.Type) {
	case "static":
		return static.New(config.Token)

	case "oidc":
		return oidc.New(config.Issuer, config.Audience)

	default:
		return nil, errors.New("invalid authorizer type: " + config.Type)
	}
}
