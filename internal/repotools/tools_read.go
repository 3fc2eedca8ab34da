package repotools

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FileContentsArgument defines file-read parameters.
type FileContentsArgument struct {
	Path string `json:"path" jsonschema_description:"File path relative to the repository root"`
}

// FileContentsHandler handles the get_file_contents MCP tool.
type FileContentsHandler struct {
	service *Service
}

// NewFileContentsHandler creates a new file-contents handler.
func NewFileContentsHandler(service *Service) *FileContentsHandler {
	return &FileContentsHandler{
		service: service,
	}
}

// Handle fetches a file's raw text and returns it in a fenced block with
// a language hint.
func (h *FileContentsHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args FileContentsArgument) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.Path) == "" {
		return errorResult("Path cannot be empty"), nil, nil
	}

	if err := validatePath(args.Path); err != nil {
		return errorResult(fmt.Sprintf("Invalid path: %s", err)), nil, nil
	}

	content, err := h.service.API().GetFileContents(ctx, args.Path)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	lang := extensionToLanguage(fileExtension(args.Path))
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**File**: `%s`\n", args.Path))
	sb.WriteString(fmt.Sprintf("**Repository**: %s\n", h.service.Identity().Slug()))
	sb.WriteString(fmt.Sprintf("**Size**: %d bytes\n\n", len(content)))
	sb.WriteString(fmt.Sprintf("```%s\n%s\n```", lang, content))

	return textResult(sb.String()), nil, nil
}

// validatePath performs security validation on the path.
func validatePath(path string) error {
	cleaned := filepath.Clean(path)

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("absolute paths are not allowed")
	}

	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, "/..") {
		return fmt.Errorf("path traversal is not allowed")
	}

	return nil
}

// fileExtension returns the extension without the leading dot.
func fileExtension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// extensionToLanguage maps file extension to language hint for code blocks.
func extensionToLanguage(ext string) string {
	langMap := map[string]string{
		"go":    "go",
		"py":    "python",
		"js":    "javascript",
		"ts":    "typescript",
		"jsx":   "jsx",
		"tsx":   "tsx",
		"java":  "java",
		"kt":    "kotlin",
		"rs":    "rust",
		"c":     "c",
		"cpp":   "cpp",
		"cc":    "cpp",
		"h":     "c",
		"hpp":   "cpp",
		"cs":    "csharp",
		"rb":    "ruby",
		"php":   "php",
		"swift": "swift",
		"sh":    "bash",
		"bash":  "bash",
		"sql":   "sql",
		"html":  "html",
		"css":   "css",
		"json":  "json",
		"yaml":  "yaml",
		"yml":   "yaml",
		"toml":  "toml",
		"xml":   "xml",
		"md":    "markdown",
		"txt":   "text",
		"proto": "protobuf",
		"tf":    "terraform",
	}

	if lang, ok := langMap[strings.ToLower(ext)]; ok {
		return lang
	}
	return ext
}

// GetToolDefinition returns the MCP tool definition.
func (h *FileContentsHandler) GetToolDefinition() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_file_contents",
		Description: "Read a file from the configured repository",
	}
}

// RegisterFileContentsTool registers the get_file_contents tool with an MCP server.
func RegisterFileContentsTool(server *mcp.Server, service *Service) {
	handler := NewFileContentsHandler(service)
	mcp.AddTool(server, handler.GetToolDefinition(), handler.Handle)
}
