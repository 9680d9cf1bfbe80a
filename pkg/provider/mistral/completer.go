package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Client

	model string
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	client, err := New(options...)

	if err != nil {
		return nil, err
	}

	return &Completer{
		Client: client,

		model: model,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req, err := c.convertChatRequest(messages, options)

	if err != nil {
		return nil, err
	}

	data, _ := json.Marshal(req)

	r, _ := http.NewRequestWithContext(ctx, "POST", c.url+"/chat/completions", bytes.NewReader(data))
	r.Header.Set("Content-Type", "application/json")

	resp, err := c.do(r)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var response ChatResponse

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	if len(response.Choices) == 0 {
		return nil, errors.New("completion returned no choices")
	}

	choice := response.Choices[0]

	result := &provider.Completion{
		ID:    response.ID,
		Model: response.Model,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: []provider.Content{
				provider.TextContent(choice.Message.Content),
			},
		},
	}

	if response.Usage != nil {
		result.Usage = &provider.Usage{
			InputTokens:  response.Usage.PromptTokens,
			OutputTokens: response.Usage.CompletionTokens,
		}
	}

	return result, nil
}

func (c *Completer) convertChatRequest(input []provider.Message, options *provider.CompleteOptions) (*ChatRequest, error) {
	req := &ChatRequest{
		Model: c.model,

		Stop: options.Stop,

		MaxTokens:   options.MaxTokens,
		Temperature: options.Temperature,
	}

	if options.Format == provider.CompletionFormatJSON {
		req.ResponseFormat = &ResponseFormat{Type: "json_object"}
	}

	for _, m := range input {
		switch m.Role {
		case provider.MessageRoleSystem:
			req.Messages = append(req.Messages, ChatMessage{
				Role:    "system",
				Content: m.Text(),
			})

		case provider.MessageRoleUser:
			chunks := []ContentChunk{}

			for _, c := range m.Content {
				if c.Text != "" {
					chunks = append(chunks, ContentChunk{Type: "text", Text: c.Text})
				}

				if c.DocumentURL != "" {
					chunks = append(chunks, ContentChunk{Type: "document_url", DocumentURL: c.DocumentURL})
				}

				if c.ImageURL != "" {
					chunks = append(chunks, ContentChunk{Type: "image_url", ImageURL: c.ImageURL})
				}

				if c.File != nil {
					return nil, errors.New("inline files are not supported, upload and reference a signed url instead")
				}
			}

			req.Messages = append(req.Messages, ChatMessage{
				Role:    "user",
				Content: chunks,
			})

		case provider.MessageRoleAssistant:
			req.Messages = append(req.Messages, ChatMessage{
				Role:    "assistant",
				Content: m.Text(),
			})
		}
	}

	return req, nil
}
