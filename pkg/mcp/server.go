package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server exposes a set of tool providers over streamable HTTP MCP, so an
// external orchestrator can call them with the same declared input schemas the
// agents see.
type Server struct {
	http.Handler

	server *mcp.Server
}

func New(name string, tools []tool.Provider) (*Server, error) {
	impl := &mcp.Implementation{
		Name: name,
	}

	opts := &mcp.ServerOptions{
		KeepAlive: time.Second * 30,
	}

	server := mcp.NewServer(impl, opts)

	if err := registerTools(server, tools); err != nil {
		return nil, err
	}

	handlerOpts := &mcp.StreamableHTTPOptions{
		Stateless: true,
	}

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, handlerOpts)

	return &Server{
		Handler: handler,

		server: server,
	}, nil
}

func registerTools(server *mcp.Server, providers []tool.Provider) error {
	ctx := context.Background()

	for _, p := range providers {
		tools, err := p.Tools(ctx)

		if err != nil {
			return err
		}

		for _, t := range tools {
			data, _ := json.Marshal(tool.NormalizeSchema(t.Parameters))

			schema := new(jsonschema.Schema)

			if err := schema.UnmarshalJSON(data); err != nil {
				return err
			}

			handler := func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args, err := convertArguments(req.Params.Arguments)

				if err != nil {
					return nil, err
				}

				result, err := p.Execute(ctx, t.Name, args)

				if err != nil {
					return nil, err
				}

				switch v := result.(type) {
				case string:
					return &mcp.CallToolResult{
						Content: []mcp.Content{
							&mcp.TextContent{
								Text: v,
							},
						},
					}, nil

				default:
					data, _ := json.Marshal(v)

					return &mcp.CallToolResult{
						Content: []mcp.Content{
							&mcp.TextContent{
								Text: string(data),
							},
						},
					}, nil
				}
			}

			server.AddTool(&mcp.Tool{
				Name:        t.Name,
				Description: t.Description,

				InputSchema: schema,
			}, handler)
		}
	}

	return nil
}

func convertArguments(input any) (map[string]any, error) {
	switch v := input.(type) {
	case nil:
		return nil, nil

	case json.RawMessage:
		if len(v) == 0 {
			return nil, nil
		}

		var args map[string]any

		if err := json.Unmarshal(v, &args); err != nil {
			return nil, fmt.Errorf("invalid tool arguments: %w", err)
		}

		return args, nil

	case map[string]any:
		return v, nil

	default:
		return nil, errors.New("invalid tool arguments")
	}
}
