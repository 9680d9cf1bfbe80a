package agent

import (
	"context"
	"encoding/json"
	"errors"
	"maps"
	"slices"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool"
)

var _ provider.Completer = (*Agent)(nil)

// Agent wraps a completer with a set of tool providers and system messages. It
// loops completion and tool execution until the model stops calling tools, then
// returns the final completion.
type Agent struct {
	model string

	completer provider.Completer

	tools    []tool.Provider
	messages []provider.Message

	temperature *float32
}

type Option func(*Agent)

func New(model string, options ...Option) (*Agent, error) {
	a := &Agent{
		model: model,
	}

	for _, option := range options {
		option(a)
	}

	if a.completer == nil {
		return nil, errors.New("missing completer provider")
	}

	return a, nil
}

func WithCompleter(completer provider.Completer) Option {
	return func(a *Agent) {
		a.completer = completer
	}
}

func WithMessages(messages ...provider.Message) Option {
	return func(a *Agent) {
		a.messages = messages
	}
}

func WithTools(tool ...tool.Provider) Option {
	return func(a *Agent) {
		a.tools = tool
	}
}

func WithTemperature(temperature float32) Option {
	return func(a *Agent) {
		a.temperature = &temperature
	}
}

func (a *Agent) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	if options.Temperature == nil {
		options.Temperature = a.temperature
	}

	input := slices.Concat(a.messages, messages)

	agentTools := make(map[string]tool.Provider)
	inputTools := make(map[string]provider.Tool)

	for _, p := range a.tools {
		tools, err := p.Tools(ctx)

		if err != nil {
			return nil, err
		}

		for _, tool := range tools {
			agentTools[tool.Name] = p
			inputTools[tool.Name] = tool
		}
	}

	for _, t := range options.Tools {
		inputTools[t.Name] = t
	}

	inputOptions := &provider.CompleteOptions{
		Stop:  options.Stop,
		Tools: slices.Collect(maps.Values(inputTools)),

		MaxTokens:   options.MaxTokens,
		Temperature: options.Temperature,

		Format: options.Format,
		Schema: options.Schema,
	}

	for {
		completion, err := a.completer.Complete(ctx, input, inputOptions)

		if err != nil {
			return nil, err
		}

		completion.Model = a.model

		if completion.Message == nil {
			return completion, nil
		}

		var loop bool

		input = append(input, *completion.Message)

		for _, c := range completion.Message.Content {
			if c.ToolCall == nil {
				continue
			}

			t, found := agentTools[c.ToolCall.Name]

			if !found {
				continue
			}

			var params map[string]any

			if err := json.Unmarshal([]byte(c.ToolCall.Arguments), &params); err != nil {
				return nil, err
			}

			result, err := t.Execute(ctx, c.ToolCall.Name, params)

			if err != nil {
				return nil, err
			}

			data, err := json.Marshal(result)

			if err != nil {
				return nil, err
			}

			input = append(input, provider.Message{
				Role: provider.MessageRoleUser,

				Content: []provider.Content{
					provider.ToolResultContent(provider.ToolResult{
						ID:   c.ToolCall.ID,
						Data: string(data),
					}),
				},
			})

			loop = true
		}

		if !loop {
			return completion, nil
		}
	}
}
