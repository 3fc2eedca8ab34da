package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/reposcout/mcp-scout-server/internal/repotools"
)

// ServerConfig contains configuration for creating an MCP server
type ServerConfig struct {
	Name    string
	Version string
	Service *repotools.Service
}

// CreateServer creates the MCP server and registers the repository tools
func CreateServer(cfg ServerConfig) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)

	if cfg.Service != nil {
		repotools.RegisterFileContentsTool(s, cfg.Service)
		repotools.RegisterSearchFilesTool(s, cfg.Service)
		repotools.RegisterSearchIssuesTool(s, cfg.Service)
		repotools.RegisterCommitHistoryTool(s, cfg.Service)
		repotools.RegisterDiagnoseTool(s, cfg.Service)
	}

	return s
}
