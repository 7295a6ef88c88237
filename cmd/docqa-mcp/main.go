package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/akolanti/DocVQA/internal/adapter"
	"github.com/akolanti/DocVQA/internal/adapter/utils"
	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/data/store"
	"github.com/akolanti/DocVQA/internal/docqa"
	"github.com/akolanti/DocVQA/internal/domain/activityModel"
	"github.com/akolanti/DocVQA/internal/domain/docModel"
	"github.com/akolanti/DocVQA/internal/domain/qaErrors"
	"github.com/akolanti/DocVQA/internal/domain/taskModel"
	"github.com/akolanti/DocVQA/internal/history"
	"github.com/akolanti/DocVQA/internal/history/embedding/googleEmbedding"
	"github.com/akolanti/DocVQA/internal/history/vectorDB/qdrantDB"
	"github.com/akolanti/DocVQA/internal/inference"
	"github.com/akolanti/DocVQA/internal/vqa"
	"github.com/akolanti/DocVQA/internal/vqa/gemini"
	"github.com/akolanti/DocVQA/internal/vqa/openaiVQA"
	"github.com/akolanti/DocVQA/internal/worker"
	"github.com/akolanti/DocVQA/pkg/logger_i"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

//the same ask pipeline as the HTTP API, exposed to MCP clients over stdio.
//Logs go to stderr through slog so stdout stays clean for the protocol.

var (
	askService    docqa.Service
	activityStore activityModel.ActivityStore
)

type askDocumentArgs struct {
	Path      string `json:"path" jsonschema:"path to the PDF or image file on this machine"`
	Questions string `json:"questions" jsonschema:"one question per line"`
	Page      int    `json:"page,omitempty" jsonschema:"PDF page to look at, counted from 1"`
}

type recentActivityArgs struct {
	Limit int `json:"limit,omitempty" jsonschema:"max entries to return"`
}

func askDocument(ctx context.Context, req *mcp.CallToolRequest, args askDocumentArgs) (*mcp.CallToolResult, any, error) {
	var ref *docModel.DocumentRef
	if args.Path != "" {
		ref = &docModel.DocumentRef{
			Path:        args.Path,
			DisplayName: filepath.Base(args.Path),
			Ext:         docqa.NormalizeExt(args.Path),
		}
	}
	page := args.Page
	if page == 0 {
		page = config.DefaultPageNumber
	}
	result, err := askService.Ask(ctx, docqa.AskRequest{
		Document:     ref,
		RawQuestions: args.Questions,
		Page:         page,
		TraceId:      utils.GetNewUUID(),
	})
	if err != nil {
		var qaErr *qaErrors.QAError
		if errors.As(err, &qaErr) {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: qaErr.UserMessage}},
				IsError: true,
			}, nil, nil
		}
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: result.Rendered}},
	}, nil, nil
}

func recentActivity(ctx context.Context, req *mcp.CallToolRequest, args recentActivityArgs) (*mcp.CallToolResult, any, error) {
	limit := args.Limit
	if limit <= 0 {
		limit = config.ActivityLogMaxEntries
	}
	entries, err := activityStore.Recent(ctx, limit)
	if err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "No activity yet."}},
		}, nil, nil
	}
	lines := ""
	for i, entry := range entries {
		if i > 0 {
			lines += "\n"
		}
		lines += adapter.RenderActivityLine(entry)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: lines}},
	}, nil, nil
}

func main() {
	logger_i.Init()
	logger := logger_i.NewLogger("MCP Main")

	taskChannel := make(chan taskModel.InferenceTask, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel := make(chan bool, 1)
	workerWaitGroup := &sync.WaitGroup{}

	serviceContext, closeExternalServices := context.WithCancel(context.Background())

	infService := inference.InitInferenceService(inference.ServiceConfig{
		TaskChannel:       taskChannel,
		DispatcherChannel: dispatcherChannel,
	})

	//stdio runs per client on one machine, the in memory feed is enough
	activityStore = store.InitInMemoryActivityStore()

	var provider vqa.Provider
	switch config.VQAProvider {
	case "openai":
		provider = openaiVQA.GetOpenAIClient(config.OpenAIModelName, config.OpenAIAPIKey)
	default:
		provider = gemini.GetGeminiClient(serviceContext, config.GeminiModelName, config.GoogleAPIKey)
	}
	if provider == nil {
		logger.Error("Model client could not be created, check the API key")
		closeExternalServices()
		os.Exit(1)
	}

	//history search is optional here too
	vectorDB := qdrantDB.GetQuadrantClient(serviceContext)
	embeddingService := googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, config.GoogleAPIKey)

	var historyService history.Service
	if vectorDB != nil && embeddingService != nil {
		historyService = history.NewService(vectorDB, embeddingService)
	} else {
		logger.Info("History index disabled")
	}

	askService = docqa.NewService(infService, activityStore, historyService)

	worker.InitServices(infService, provider)
	worker.InitWorkerPool(stopWorkerChannel, workerWaitGroup)

	server := mcp.NewServer(&mcp.Implementation{Name: "docvqa", Version: "1.0.0"}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask_document",
		Description: "Answer questions about one page of a PDF or image file. Pass one question per line.",
	}, askDocument)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent_activity",
		Description: "List the most recent ask requests handled by this server.",
	}, recentActivity)

	logger.Info("MCP server listening on stdio")
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server stopped", "error", err)
	}

	close(stopWorkerChannel)
	workerWaitGroup.Wait()
	closeExternalServices()
}
