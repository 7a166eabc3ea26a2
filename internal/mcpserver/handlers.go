package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools registers the planning workflow tools with the MCP server.
func (s *Server) registerTools() error {
	s.mcpServer.AddTool(
		mcp.NewTool("generate-plan",
			mcp.WithDescription("Generate a Markdown implementation plan for a requirement. Replaces any current plan and resets approval."),
			mcp.WithString("requirement", mcp.Required(),
				mcp.Description("The coding requirement to plan for"),
			),
		),
		s.handleGeneratePlan,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("approve-plan",
			mcp.WithDescription("Approve the current plan, unlocking implementation. Fails when no plan exists."),
		),
		s.handleApprovePlan,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("reject-plan",
			mcp.WithDescription("Reject and discard the current plan. Always succeeds."),
		),
		s.handleRejectPlan,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("implement-plan",
			mcp.WithDescription("Synthesize file specs from the approved plan without writing anything to disk."),
			mcp.WithString("output_dir",
				mcp.Description("Output directory prefix for the file paths (default: the server's configured directory)"),
			),
		),
		s.handleImplementPlan,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("write-files",
			mcp.WithDescription("Synthesize file specs from the approved plan and write them to disk."),
			mcp.WithString("output_dir",
				mcp.Description("Output directory (default: the server's configured directory)"),
			),
			mcp.WithBoolean("overwrite",
				mcp.Description("Overwrite existing files (default: false)"),
			),
		),
		s.handleWriteFiles,
	)

	return nil
}

// fileSummary is the JSON shape returned for each synthesized file.
type fileSummary struct {
	Path        string `json:"path"`
	Description string `json:"description"`
	Content     string `json:"content,omitempty"`
}

func (s *Server) handleGeneratePlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("no arguments provided"), nil
	}

	requirement, ok := args["requirement"].(string)
	if !ok || requirement == "" {
		return mcp.NewToolResultError("missing or empty 'requirement' parameter"), nil
	}

	s.mu.Lock()
	plan, err := s.agent.GeneratePlan(requirement)
	s.mu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("plan generation failed: %v", err)), nil
	}

	return mcp.NewToolResultText(plan), nil
}

func (s *Server) handleApprovePlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	err := s.agent.ApprovePlan()
	s.mu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText("Plan approved"), nil
}

func (s *Server) handleRejectPlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	s.agent.RejectPlan()
	s.mu.Unlock()

	return mcp.NewToolResultText("Plan rejected"), nil
}

func (s *Server) handleImplementPlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outputDir := s.outputDir
	if args := request.GetArguments(); args != nil {
		if dir, ok := args["output_dir"].(string); ok && dir != "" {
			outputDir = dir
		}
	}

	s.mu.Lock()
	files, err := s.agent.ImplementPlan(outputDir)
	s.mu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summaries := make([]fileSummary, 0, len(files))
	for _, f := range files {
		summaries = append(summaries, fileSummary{Path: f.Path, Description: f.Description, Content: f.Content})
	}

	payload, err := json.Marshal(summaries)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal file specs: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) handleWriteFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outputDir := s.outputDir
	overwrite := false
	if args := request.GetArguments(); args != nil {
		if dir, ok := args["output_dir"].(string); ok && dir != "" {
			outputDir = dir
		}
		if ow, ok := args["overwrite"].(bool); ok {
			overwrite = ow
		}
	}

	// The agent does not cache synthesized specs, so writing re-synthesizes
	// from the approved plan in the same call.
	s.mu.Lock()
	files, err := s.agent.ImplementPlan(outputDir)
	if err == nil {
		err = s.agent.WriteFiles(files, overwrite)
	}
	s.mu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Wrote %d file(s) to %s", len(files), outputDir)), nil
}
