package docqa

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool"
)

var _ tool.Provider = (*Client)(nil)

const toolName = "document_qa"

const uploadPurpose = "ocr"

// Storage makes local files remotely addressable: an upload yields an opaque
// file id, a signed url grants the model time-limited read access to it.
type Storage interface {
	Upload(ctx context.Context, file provider.File, purpose string) (string, error)
	SignedURL(ctx context.Context, fileID string) (string, error)
}

type Client struct {
	storage Storage

	completer provider.Completer
}

type Option func(*Client)

func New(storage Storage, completer provider.Completer, options ...Option) (*Client, error) {
	c := &Client{
		storage: storage,

		completer: completer,
	}

	for _, option := range options {
		option(c)
	}

	if c.storage == nil {
		return nil, errors.New("missing storage provider")
	}

	if c.completer == nil {
		return nil, errors.New("missing completer provider")
	}

	return c, nil
}

// Answer resolves 1-10 document references and answers the question across all
// of them in a single completion call, so the model can reason cross-document.
// Remote urls are passed through verbatim, local files are uploaded and
// referenced by signed url. Any failure aborts the whole batch.
func (c *Client) Answer(ctx context.Context, paths []string, question string) (string, error) {
	refs, err := ParseBatch(paths)

	if err != nil {
		return "", err
	}

	content := []provider.Content{
		provider.TextContent(question),
	}

	for _, ref := range refs {
		location := ref.Raw

		if ref.Origin == OriginLocal {
			data, err := os.ReadFile(ref.Raw)

			if err != nil {
				return "", fmt.Errorf("read %q: %w", ref.Raw, err)
			}

			file := provider.File{
				Name: filepath.Base(ref.Raw),

				Content:     data,
				ContentType: mime.TypeByExtension(ref.Ext),
			}

			id, err := c.storage.Upload(ctx, file, uploadPurpose)

			if err != nil {
				return "", &UploadError{Path: ref.Raw, Err: err}
			}

			location, err = c.storage.SignedURL(ctx, id)

			if err != nil {
				return "", &UploadError{Path: ref.Raw, Err: err}
			}
		}

		switch ref.Kind {
		case KindPDF:
			content = append(content, provider.DocumentURLContent(location))

		default:
			content = append(content, provider.ImageURLContent(location))
		}
	}

	messages := []provider.Message{
		{
			Role:    provider.MessageRoleUser,
			Content: content,
		},
	}

	// Pinned for reproducibility on identical inputs.
	temperature := float32(0)

	options := &provider.CompleteOptions{
		Temperature: &temperature,
	}

	completion, err := c.completer.Complete(ctx, messages, options)

	if err != nil {
		return "", &InferenceError{Err: err}
	}

	if completion.Message == nil {
		return "", &InferenceError{Err: errors.New("completion contained no message")}
	}

	return completion.Message.Text(), nil
}

func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	return []tool.Tool{
		{
			Name:        toolName,
			Description: "answer a question across up to 10 scanned PDF or image documents (PDF, JPG, JPEG, PNG), given as local paths or public urls, in one go",

			Parameters: map[string]any{
				"type": "object",

				"properties": map[string]any{
					"paths": map[string]any{
						"type":        "array",
						"description": "local filesystem paths or public urls of the documents to read",

						"items": map[string]any{
							"type": "string",
						},

						"minItems": MinBatchSize,
						"maxItems": MaxBatchSize,
					},

					"question": map[string]any{
						"type":        "string",
						"description": "the question to answer using the provided documents",
					},
				},

				"required": []string{"paths", "question"},
			},
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	if name != toolName {
		return nil, tool.ErrInvalidTool
	}

	var paths []string

	if vals, ok := parameters["paths"].([]any); ok {
		for _, v := range vals {
			if s, ok := v.(string); ok {
				paths = append(paths, s)
			}
		}
	}

	if vals, ok := parameters["paths"].([]string); ok {
		paths = vals
	}

	question, ok := parameters["question"].(string)

	if !ok {
		return nil, errors.New("missing question parameter")
	}

	return c.Answer(ctx, paths, question)
}
