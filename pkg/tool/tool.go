package tool

import (
	"context"
	"errors"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"
)

type Tool = provider.Tool

var (
	ErrInvalidTool = errors.New("invalid tool")
)

type Provider interface {
	Tools(ctx context.Context) ([]Tool, error)
	Execute(ctx context.Context, name string, parameters map[string]any) (any, error)
}

// NormalizeSchema fills in the structural fields JSON schema consumers require
// but tool declarations often omit: a type inferred from the present keys, an
// empty properties map for objects, string items for arrays.
func NormalizeSchema(schema map[string]any) map[string]any {
	if len(schema) == 0 {
		return map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		}
	}

	if schema["type"] == nil {
		switch {
		case schema["properties"] != nil:
			schema["type"] = "object"

		case schema["items"] != nil:
			schema["type"] = "array"

		default:
			schema["type"] = "object"
		}
	}

	switch schema["type"] {
	case "object":
		if schema["properties"] == nil {
			schema["properties"] = map[string]any{}
		}

	case "array":
		if schema["items"] == nil {
			schema["items"] = map[string]any{"type": "string"}
		}
	}

	return schema
}
