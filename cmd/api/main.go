// @title           Document VQA API
// @version         1.0
// @description     This API answers questions about uploaded PDF pages and images
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/data/store"
	"github.com/akolanti/DocVQA/internal/docqa"
	"github.com/akolanti/DocVQA/internal/domain/activityModel"
	"github.com/akolanti/DocVQA/internal/domain/taskModel"
	"github.com/akolanti/DocVQA/internal/handlers"
	"github.com/akolanti/DocVQA/internal/history"
	"github.com/akolanti/DocVQA/internal/history/embedding/googleEmbedding"
	"github.com/akolanti/DocVQA/internal/history/vectorDB/qdrantDB"
	"github.com/akolanti/DocVQA/internal/inference"
	"github.com/akolanti/DocVQA/internal/server"
	"github.com/akolanti/DocVQA/internal/vqa"
	"github.com/akolanti/DocVQA/internal/vqa/gemini"
	"github.com/akolanti/DocVQA/internal/vqa/openaiVQA"
	"github.com/akolanti/DocVQA/internal/worker"
	"github.com/akolanti/DocVQA/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered task channel
	taskChannel := make(chan taskModel.InferenceTask, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init inference service
	serviceConfig := inference.ServiceConfig{
		TaskChannel:       taskChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	}
	logger.Info("Starting inference service")
	infService := inference.InitInferenceService(serviceConfig)

	//activity feed, redis preferred, memory when redis is offline
	var activityStore activityModel.ActivityStore
	if redisActivity := store.GetRedisActivityStore(serviceContext); redisActivity != nil {
		activityStore = redisActivity
	} else {
		logger.Error("Redis store is offline")
		activityStore = store.InitInMemoryActivityStore()
	}

	//the model handle is built once here and injected everywhere
	var provider vqa.Provider
	switch config.VQAProvider {
	case "openai":
		provider = openaiVQA.GetOpenAIClient(config.OpenAIModelName, config.OpenAIAPIKey)
	default:
		provider = gemini.GetGeminiClient(serviceContext, config.GeminiModelName, config.GoogleAPIKey)
	}
	if provider == nil {
		logger.Error("The model provider failed to initialize. Shutting down.")
		return
	}

	//history search is optional, answering works without it
	vectorDB := qdrantDB.GetQuadrantClient(serviceContext)
	embeddingService := googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, config.GoogleAPIKey)

	var historyService history.Service
	if vectorDB != nil && embeddingService != nil {
		historyService = history.NewService(vectorDB, embeddingService)
	} else {
		logger.Error("History index disabled", "VectorDB", vectorDB != nil, "EmbeddingService", embeddingService != nil)
	}

	askService := docqa.NewService(infService, activityStore, historyService)

	handlers.InitHandlers(askService, activityStore, historyService)

	//init worker pool
	worker.InitServices(infService, provider)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
