package agent_test

import (
	"context"
	"testing"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/agent"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool"

	"github.com/stretchr/testify/require"
)

type scriptedCompleter struct {
	calls []scriptedCall

	completions []provider.Completion
}

type scriptedCall struct {
	messages []provider.Message
	options  *provider.CompleteOptions
}

func (c *scriptedCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	c.calls = append(c.calls, scriptedCall{messages: messages, options: options})

	completion := c.completions[0]
	c.completions = c.completions[1:]

	return &completion, nil
}

type echoTool struct {
	executions []string
}

func (t *echoTool) Tools(ctx context.Context) ([]tool.Tool, error) {
	return []tool.Tool{
		{
			Name:        "list_documents",
			Description: "list available documents",
		},
	}, nil
}

func (t *echoTool) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	t.executions = append(t.executions, name)

	return []string{"passport.pdf", "payslip.pdf"}, nil
}

func toolCallMessage(id, name, arguments string) provider.Message {
	return provider.Message{
		Role: provider.MessageRoleAssistant,

		Content: []provider.Content{
			provider.ToolCallContent(provider.ToolCall{
				ID: id,

				Name:      name,
				Arguments: arguments,
			}),
		},
	}
}

func TestNewRequiresCompleter(t *testing.T) {
	_, err := agent.New("gpt-4o-mini")
	require.Error(t, err)
}

func TestCompletePlain(t *testing.T) {
	final := provider.AssistantMessage("done")

	completer := &scriptedCompleter{
		completions: []provider.Completion{
			{Message: &final},
		},
	}

	a, err := agent.New("gpt-4o-mini", agent.WithCompleter(completer))
	require.NoError(t, err)

	completion, err := a.Complete(context.Background(), []provider.Message{
		provider.UserMessage("hello"),
	}, nil)

	require.NoError(t, err)
	require.Equal(t, "done", completion.Message.Text())
	require.Equal(t, "gpt-4o-mini", completion.Model)

	require.Len(t, completer.calls, 1)
}

func TestCompleteToolLoop(t *testing.T) {
	call := toolCallMessage("call-1", "list_documents", `{}`)
	final := provider.AssistantMessage("two documents found")

	completer := &scriptedCompleter{
		completions: []provider.Completion{
			{Message: &call},
			{Message: &final},
		},
	}

	documents := &echoTool{}

	a, err := agent.New("gpt-4o-mini",
		agent.WithCompleter(completer),
		agent.WithTools(documents),
	)

	require.NoError(t, err)

	completion, err := a.Complete(context.Background(), []provider.Message{
		provider.UserMessage("which documents were submitted?"),
	}, nil)

	require.NoError(t, err)
	require.Equal(t, "two documents found", completion.Message.Text())

	require.Equal(t, []string{"list_documents"}, documents.executions)
	require.Len(t, completer.calls, 2)

	// the second round carries the assistant tool call and its result
	second := completer.calls[1].messages
	require.Len(t, second, 3)

	id, data, ok := second[2].ToolResult()
	require.True(t, ok)
	require.Equal(t, "call-1", id)
	require.Contains(t, data, "passport.pdf")

	// tools are advertised to the model
	require.Len(t, completer.calls[0].options.Tools, 1)
	require.Equal(t, "list_documents", completer.calls[0].options.Tools[0].Name)
}

func TestCompleteSystemMessages(t *testing.T) {
	final := provider.AssistantMessage("ok")

	completer := &scriptedCompleter{
		completions: []provider.Completion{
			{Message: &final},
		},
	}

	a, err := agent.New("gpt-4o-mini",
		agent.WithCompleter(completer),
		agent.WithMessages(provider.SystemMessage("You are a mortgage underwriter.")),
		agent.WithTemperature(0.1),
	)

	require.NoError(t, err)

	_, err = a.Complete(context.Background(), []provider.Message{
		provider.UserMessage("assess the application"),
	}, nil)

	require.NoError(t, err)

	messages := completer.calls[0].messages
	require.Len(t, messages, 2)
	require.Equal(t, provider.MessageRoleSystem, messages[0].Role)

	require.NotNil(t, completer.calls[0].options.Temperature)
	require.Equal(t, float32(0.1), *completer.calls[0].options.Temperature)
}
