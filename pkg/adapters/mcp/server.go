package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/blotterhq/blotter"
	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// TrailResponse is the structured result shared by the journal tools.
type TrailResponse struct {
	Len          int              `json:"len" jsonschema_description:"Number of actions in the audit trail"`
	Descriptions []string         `json:"descriptions" jsonschema_description:"Human-readable trail, in application order"`
	Cash         float64          `json:"cash" jsonschema_description:"Current portfolio cash balance"`
	Positions    map[string]int64 `json:"positions" jsonschema_description:"Current non-zero positions"`
	Changed      bool             `json:"changed" jsonschema_description:"Whether the operation changed anything"`
}

// Server exposes a desk/portfolio pair as an MCP server. It serializes all
// journal operations behind one mutex, which is the external serialization
// the core requires.
type Server struct {
	desk      *blotter.Desk
	portfolio *domain.Portfolio
	mcpServer *server.MCPServer
	mu        sync.Mutex
}

// NewServer creates a new MCP Server instance.
func NewServer(desk *blotter.Desk, portfolio *domain.Portfolio) *Server {
	s := &Server{
		desk:      desk,
		portfolio: portfolio,
		mcpServer: server.NewMCPServer("blotter-mcp", strings.TrimSpace(blotter.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	executeTool := mcp.NewTool("execute_action",
		mcp.WithDescription("Execute a trade action (buy or sell) against the portfolio and record it in the journal."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Action kind: buy or sell")),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Ticker symbol")),
		mcp.WithNumber("quantity", mcp.Required(), mcp.Description("Share quantity (positive integer)")),
		mcp.WithNumber("price", mcp.Required(), mcp.Description("Price per share")),
		mcp.WithOutputSchema[TrailResponse](),
	)
	s.mcpServer.AddTool(executeTool, mcp.NewStructuredToolHandler(s.handleExecute))

	undoTool := mcp.NewTool("undo",
		mcp.WithDescription("Reverse the most recent action. Reports changed=false when the trail is empty."),
		mcp.WithOutputSchema[TrailResponse](),
	)
	s.mcpServer.AddTool(undoTool, mcp.NewStructuredToolHandler(s.handleUndo))

	redoTool := mcp.NewTool("redo",
		mcp.WithDescription("Re-apply the most recently undone action. Reports changed=false when there is nothing to redo."),
		mcp.WithOutputSchema[TrailResponse](),
	)
	s.mcpServer.AddTool(redoTool, mcp.NewStructuredToolHandler(s.handleRedo))

	trailTool := mcp.NewTool("get_trail",
		mcp.WithDescription("Get the audit trail and current portfolio state."),
		mcp.WithOutputSchema[TrailResponse](),
	)
	s.mcpServer.AddTool(trailTool, mcp.NewStructuredToolHandler(s.handleTrail))

	archiveTool := mcp.NewTool("archive_trail",
		mcp.WithDescription("Snapshot the journal and persist the frozen trail under a name."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Archive name")),
	)
	s.mcpServer.AddTool(archiveTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		s.mu.Lock()
		err = s.desk.Archive(ctx, name)
		s.mu.Unlock()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("archive failed: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("trail archived as %q", name)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleExecute(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TrailResponse, error) {
	var params struct {
		Kind     string  `mapstructure:"kind"`
		Symbol   string  `mapstructure:"symbol"`
		Quantity int64   `mapstructure:"quantity"`
		Price    float64 `mapstructure:"price"`
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &params,
		WeaklyTypedInput: true, // JSON numbers arrive as float64
	})
	if err != nil {
		return TrailResponse{}, err
	}
	if err := decoder.Decode(args); err != nil {
		return TrailResponse{}, fmt.Errorf("bad action arguments: %w", err)
	}

	action := domain.TradeAction{
		Kind:     domain.ActionKind(params.Kind),
		Symbol:   params.Symbol,
		Quantity: params.Quantity,
		Price:    params.Price,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.desk.Execute(ctx, action, s.portfolio); err != nil {
		return TrailResponse{}, err
	}
	return s.response(true), nil
}

func (s *Server) handleUndo(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TrailResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.desk.Undo(ctx, s.portfolio)
	if err != nil {
		return TrailResponse{}, err
	}
	return s.response(ok), nil
}

func (s *Server) handleRedo(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TrailResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.desk.Redo(ctx, s.portfolio)
	if err != nil {
		return TrailResponse{}, err
	}
	return s.response(ok), nil
}

func (s *Server) handleTrail(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TrailResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response(false), nil
}

// response builds a TrailResponse from current state. Callers hold s.mu.
func (s *Server) response(changed bool) TrailResponse {
	trail := s.desk.Trail()
	descriptions := make([]string, len(trail))
	for i, a := range trail {
		descriptions[i] = a.String()
	}
	return TrailResponse{
		Len:          len(trail),
		Descriptions: descriptions,
		Cash:         s.portfolio.Cash(),
		Positions:    s.portfolio.Positions(),
		Changed:      changed,
	}
}
