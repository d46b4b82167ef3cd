package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/compass/internal/clients/gap"
	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/storage/datasetfs"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	logger := common.NewSilentLogger()
	cfg := common.NewDefaultConfig()
	cfg.Datasets.Path = t.TempDir()

	store, err := datasetfs.NewStore(logger, cfg.Datasets.Path)
	require.NoError(t, err)

	a := &App{
		Config:    cfg,
		Logger:    logger,
		Datasets:  store,
		GapClient: gap.NewClient(logger, cfg.Gap),
	}
	a.MCPServer = a.buildMCPServer()
	return a
}

func TestHandleGetInterviewQuestions(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, os.WriteFile(filepath.Join(a.Datasets.Dir(), "data-engineer.json"),
		[]byte(`{"questions":[{"q":"explain a star schema"}]}`), 0644))

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{
		"role": "Data Engineer",
	}

	result, err := a.handleGetInterviewQuestions(context.Background(), request)
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := result.Content[0].(mcp.TextContent).Text
	assert.JSONEq(t, `[{"q":"explain a star schema"}]`, text)
}

func TestHandleGetInterviewQuestions_MissingRole(t *testing.T) {
	a := newTestApp(t)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{}

	result, err := a.handleGetInterviewQuestions(context.Background(), request)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleGetInterviewQuestions_UnknownRole(t *testing.T) {
	a := newTestApp(t)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{
		"role": "Quantum Chef",
	}

	result, err := a.handleGetInterviewQuestions(context.Background(), request)
	require.NoError(t, err)
	require.True(t, result.IsError)

	text := result.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, "Dataset not found for role: Quantum Chef")
}
