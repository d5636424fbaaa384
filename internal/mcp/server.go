package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docketlab/docket/internal/config"
	"github.com/docketlab/docket/internal/store"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"case_list": {
		def:     caseListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCaseList },
	},
	"event_list": {
		def:     eventListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleEventList },
	},
	"hearing_add": {
		def:     hearingAddToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleHearingAdd },
	},
	"hearing_update": {
		def:     hearingUpdateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleHearingUpdate },
	},
	"hearing_delete": {
		def:     hearingDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleHearingDelete },
	},
	"tag_add": {
		def:     tagAddToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleTagAdd },
	},
	"tag_remove": {
		def:     tagRemoveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleTagRemove },
	},
	"docket_week": {
		def:     weekToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleWeek },
	},
	"docket_query": {
		def:     queryToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleQuery },
	},
	"docket_export": {
		def:     exportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleExport },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with docket tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(st *store.Store, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"docket",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(st, cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	// Register tools (skip disabled)
	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(st *store.Store, cfg *config.Config, version string) error {
	s := NewServer(st, cfg, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
