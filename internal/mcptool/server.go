// Package mcptool serves balancing as Model Context Protocol tools over stdio.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/stoich/internal/render"
	"github.com/katalvlaran/stoich/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names.
const (
	ToolBalance = "balance_reaction"
	ToolExplain = "explain_reaction"
)

// Server wraps an MCP server bound to a balancing service.
type Server struct {
	svc       *service.Service
	mcpServer *server.MCPServer
}

// New registers the tools on a fresh MCP server.
func New(svc *service.Service, version string) *Server {
	s := &Server{
		svc:       svc,
		mcpServer: server.NewMCPServer("stoich", version),
	}

	s.mcpServer.AddTool(mcp.NewTool(ToolBalance,
		mcp.WithDescription("Balance a chemical equation of flat formulas, e.g. \"H2 + O2 -> H2O\". "+
			"Returns the smallest positive integer coefficients as JSON."),
		mcp.WithString("reaction", mcp.Required(), mcp.Description("Reactants and products separated by \"->\", terms by \"+\"")),
	), s.HandleBalance)

	s.mcpServer.AddTool(mcp.NewTool(ToolExplain,
		mcp.WithDescription("Explain how a chemical equation is balanced: element universe, conservation matrix, "+
			"reduced row echelon form, null space and result, as markdown."),
		mcp.WithString("reaction", mcp.Required(), mcp.Description("Reactants and products separated by \"->\", terms by \"+\"")),
	), s.HandleExplain)

	return s
}

// ServeStdio blocks serving the tools on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// HandleBalance implements balance_reaction. Balancing failures are tool
// errors (IsError), not protocol errors.
func (s *Server) HandleBalance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reaction, err := request.RequireString("reaction")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.svc.Balance(ctx, service.SurfaceMCP, reaction)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s", res.Kind, res.Error)), nil
	}
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err = enc.Encode(res); err != nil {
		return nil, fmt.Errorf("mcptool: encode result: %w", err)
	}

	return mcp.NewToolResultText(strings.TrimSuffix(buf.String(), "\n")), nil
}

// HandleExplain implements explain_reaction. The report is returned even
// when balancing fails, since it shows where the pipeline stopped.
func (s *Server) HandleExplain(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reaction, err := request.RequireString("reaction")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	input := service.Normalize(reaction)
	a, b, balErr := s.svc.Explain(input)

	return mcp.NewToolResultText(render.Explain(input, a, b, balErr)), nil
}
