package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/models"
)

// buildMCPServer creates the MCP server and registers the dataset tools.
func (a *App) buildMCPServer() *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		"compass",
		common.GetVersion(),
		mcpserver.WithToolCapabilities(true),
	)

	s.AddTool(createGetInterviewQuestionsTool(), a.handleGetInterviewQuestions)

	return s
}

// createGetInterviewQuestionsTool returns the get_interview_questions tool definition
func createGetInterviewQuestionsTool() mcp.Tool {
	return mcp.NewTool("get_interview_questions",
		mcp.WithDescription("Fetch the interview question dataset for a job role. The role label is free-form; it is normalized to the dataset key server-side."),
		mcp.WithString("role",
			mcp.Required(),
			mcp.Description("Role label (e.g., 'Backend Developer', 'Data Scientist')"),
		),
	)
}

// handleGetInterviewQuestions implements the get_interview_questions tool
func (a *App) handleGetInterviewQuestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	role, err := request.RequireString("role")
	if err != nil || role == "" {
		return mcp.NewToolResultError("Error: role parameter is required"), nil
	}

	ds, err := a.Datasets.Resolve(ctx, role)
	if err != nil {
		var nf *models.DatasetNotFoundError
		if errors.As(err, &nf) {
			return mcp.NewToolResultError(fmt.Sprintf("Dataset not found for role: %s", role)), nil
		}
		a.Logger.Error().Err(err).Str("role", role).Msg("Dataset load failed")
		return mcp.NewToolResultError(fmt.Sprintf("Error loading dataset: %v", err)), nil
	}

	return mcp.NewToolResultText(string(ds.Questions)), nil
}
