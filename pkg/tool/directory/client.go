package directory

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool"
)

var _ tool.Provider = (*Client)(nil)

const toolName = "list_documents"

type Client struct {
	root string
}

type Option func(*Client)

func New(root string, options ...Option) (*Client, error) {
	c := &Client{
		root: root,
	}

	for _, option := range options {
		option(c)
	}

	if c.root == "" {
		return nil, errors.New("missing directory root")
	}

	return c, nil
}

type Entry struct {
	Path string `json:"path"`

	Size int64 `json:"size"`
}

func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	return []tool.Tool{
		{
			Name:        toolName,
			Description: "list the files available in the application's document folder",

			Parameters: map[string]any{
				"type": "object",

				"properties": map[string]any{},
			},
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	if name != toolName {
		return nil, tool.ErrInvalidTool
	}

	entries := []Entry{}

	err := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		info, err := d.Info()

		if err != nil {
			return err
		}

		entries = append(entries, Entry{
			Path: path,

			Size: info.Size(),
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entries, nil
}
