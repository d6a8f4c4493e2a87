// Package mcp serves tools over the Model Context Protocol.
package mcp

import (
	"context"
	"log"
	"sort"

	"github.com/antgroup/rawseg/tool"
	"github.com/antgroup/rawseg/utils/json"
	"github.com/antgroup/rawseg/utils/ratelimit"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const _rateLimited = "rate limit exceeded, please retry later"

// Server exposes tools to MCP clients. Every call takes a token from a
// shared bucket.
type Server struct {
	srv     *server.MCPServer
	limiter *ratelimit.TokenBucket
	tools   map[string]tool.Tool
}

func NewServer(tools []tool.Tool, opts ...Option) *Server {
	options := DefaultOptions()
	for _, o := range opts {
		o(&options)
	}
	s := &Server{
		srv:     server.NewMCPServer(options.Name, options.Version, server.WithToolCapabilities(false)),
		limiter: ratelimit.NewTokenBucket(options.Rate, options.Burst),
		tools:   make(map[string]tool.Tool, len(tools)),
	}
	for _, t := range tools {
		s.tools[t.Name()] = t
		s.srv.AddTool(convertTool2MCPTool(t), s.Handle)
	}
	return s
}

func convertTool2MCPTool(t tool.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description())}
	ps := t.Schema()
	if ps == nil {
		return mcp.NewTool(t.Name(), opts...)
	}
	required := make(map[string]bool, len(ps.Required))
	for _, name := range ps.Required {
		required[name] = true
	}
	names := make([]string, 0, len(ps.Properties))
	for name := range ps.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := ps.Properties[name]
		props := []mcp.PropertyOption{mcp.Description(p.Description)}
		if required[name] {
			props = append(props, mcp.Required())
		}
		if len(p.Enum) > 0 {
			props = append(props, mcp.Enum(p.Enum...))
		}
		switch p.Type {
		case tool.TypeArr:
			opts = append(opts, mcp.WithArray(name, props...))
		case tool.TypeInt:
			opts = append(opts, mcp.WithNumber(name, props...))
		case tool.TypeJson:
			opts = append(opts, mcp.WithObject(name, props...))
		default:
			opts = append(opts, mcp.WithString(name, props...))
		}
	}
	return mcp.NewTool(t.Name(), opts...)
}

// Handle calls the requested tool with the request arguments. Failures are
// returned as error results so the client sees them.
func (s *Server) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, ok := s.tools[request.Params.Name]
	if !ok {
		return mcp.NewToolResultError("unknown tool: " + request.Params.Name), nil
	}
	if !s.limiter.Allow() {
		return mcp.NewToolResultError(_rateLimited), nil
	}
	input, err := json.Marshal(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError("invalid arguments: " + err.Error()), nil
	}
	ret, err := t.Call(ctx, string(input))
	if err != nil {
		log.Printf("tool %s failed: %v", t.Name(), err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(ret), nil
}

// Tools returns the names of the served tools.
func (s *Server) Tools() []string {
	names := make([]string, 0, len(s.tools))
	for name := range s.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Server) MCPServer() *server.MCPServer {
	return s.srv
}

// ServeStdio serves on stdin and stdout until the input is closed.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.srv)
}
