package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/reposcout/mcp-scout-server/internal/config"
	"github.com/reposcout/mcp-scout-server/internal/githubapi"
	mcputil "github.com/reposcout/mcp-scout-server/internal/mcp"
	"github.com/reposcout/mcp-scout-server/internal/repotools"
	"github.com/spf13/pflag"
)

// RunParams contains dependencies for the run function
type RunParams struct {
	LoadSettings      func(*pflag.FlagSet) (*config.Settings, error)
	ValidSettings     func(*config.Settings) error
	StartSSEServer    func(*mcp.Server, *config.Settings) error
	CreateServer      func(*config.Settings) (*mcp.Server, error)
	CustomIOTransport mcp.Transport // Optional: for testing with custom IO
}

// DefaultRunParams returns production dependencies
func DefaultRunParams() RunParams {
	return RunParams{
		LoadSettings:   config.LoadSettingsWithFlags,
		ValidSettings:  config.ValidateSettings,
		StartSSEServer: StartSSEServer,
		CreateServer:   CreateMCPServer,
	}
}

// RunWithDeps executes the server with the provided dependencies. A
// settings validation failure returns before any tool is registered.
func RunWithDeps(ctx context.Context, params RunParams, flags *pflag.FlagSet, version string) error {
	settings, err := params.LoadSettings(flags)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := params.ValidSettings(settings); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Always log to stderr; the stdio transport owns stdout
	handler := slog.NewTextHandler(os.Stderr, nil)
	slog.SetDefault(slog.New(handler))

	slog.Info("Starting Repo Scout MCP server", "version", version)
	config.Log(settings)

	mcpServer, err := params.CreateServer(settings)
	if err != nil {
		return err
	}

	if settings.Transport == "stdio" {
		// Use custom transport if provided (for testing), otherwise use stdio
		transport := params.CustomIOTransport
		if transport == nil {
			transport = &mcp.StdioTransport{}
		}
		return mcpServer.Run(ctx, transport)
	}

	slog.Info("Starting SSE server", "host", settings.Host, "port", settings.Port)
	return params.StartSSEServer(mcpServer, settings)
}

// CreateMCPServer creates the MCP server with the GitHub-backed tools
func CreateMCPServer(settings *config.Settings) (*mcp.Server, error) {
	client := githubapi.NewClient(settings.GitHub.Token, settings.GitHub.Owner, settings.GitHub.Repo)

	service, err := repotools.NewService(&settings.GitHub, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create repository service: %w", err)
	}

	server := mcputil.CreateServer(mcputil.ServerConfig{
		Name:    "scout-mcp",
		Version: "1.0.0",
		Service: service,
	})

	return server, nil
}
