package repotools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DiagnoseArgument is empty; the tool takes no parameters.
type DiagnoseArgument struct{}

// DiagnoseHandler handles the diagnose_search MCP tool.
type DiagnoseHandler struct {
	service *Service
}

// NewDiagnoseHandler creates a new diagnostics handler.
func NewDiagnoseHandler(service *Service) *DiagnoseHandler {
	return &DiagnoseHandler{
		service: service,
	}
}

// Handle runs the repository and baseline probes unconditionally and
// reports them as a standalone health check. Probe failures become report
// content, never tool errors.
func (h *DiagnoseHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args DiagnoseArgument) (*mcp.CallToolResult, any, error) {
	id := h.service.Identity()
	report := RunDiagnostics(ctx, h.service.API(), id, h.service.ProbeExtension())
	probeQuery := baselineProbeQuery(h.service.ProbeExtension(), id)
	return textResult(RenderHealthReport(report, id, probeQuery)), nil, nil
}

// GetToolDefinition returns the MCP tool definition.
func (h *DiagnoseHandler) GetToolDefinition() *mcp.Tool {
	return &mcp.Tool{
		Name:        "diagnose_search",
		Description: "Check whether code search can serve the configured repository",
	}
}

// RegisterDiagnoseTool registers the diagnose_search tool with an MCP server.
func RegisterDiagnoseTool(server *mcp.Server, service *Service) {
	handler := NewDiagnoseHandler(service)
	mcp.AddTool(server, handler.GetToolDefinition(), handler.Handle)
}
