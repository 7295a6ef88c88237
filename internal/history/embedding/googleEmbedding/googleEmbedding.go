package googleEmbedding

import (
	"context"
	"sync"
	"time"

	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/history/embedding"
	"github.com/akolanti/DocVQA/pkg/logger_i"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var logger *logger_i.Logger
var once sync.Once
var embeddingClient *client
var dimension int32 = config.EmbeddingOutputDimensionality

type client struct {
	genAi *genai.Client
	model string
}

func GetGoogleEmbeddingClient(ctx context.Context, modelName string, apikey string) embedding.Embedder {
	once.Do(func() {
		logger = logger_i.NewLogger("google_embedding")
		newGoogleEmbedder(ctx, modelName, apikey)
	})

	//if init still fails
	if embeddingClient == nil {
		return nil
	}
	return &client{genAi: embeddingClient.genAi, model: embeddingClient.model}
}

func newGoogleEmbedder(ctx context.Context, modelName string, apikey string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Google Embedding client:", "error", err)
	}
	if c != nil {
		embeddingClient = &client{
			genAi: c,
			model: modelName,
		}
		logger.Debug("Google Embedding model name: " + modelName)
		logger.Info("Google Embedding client created")
		go closeClient(ctx, embeddingClient)
	}
}

func closeClient(ctx context.Context, embeddingClient *client) {
	<-ctx.Done()
	logger.Info("Closing Google Embedding client")
	embeddingClient.genAi = nil
	embeddingClient.model = ""
}

func (c *client) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	result, err := c.doCall(ctx, genai.Text(query))
	if err != nil {
		if doRetry(err, log) {
			time.Sleep(5 * time.Second)
			result, err = c.doCall(ctx, genai.Text(query))
		}
		if err != nil {
			log.Error("Error getting Embedding from Google", "error", err.Error())
			return nil, err
		}
	}
	return result.Embeddings[0].Values, nil
}

func (c *client) BatchEmbedding(ctx context.Context, texts []string) ([][]float32, error) {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "count", len(texts))

	result, err := c.doCall(ctx, getContent(texts))
	if err != nil || result == nil {
		if doRetry(err, log) {
			log.Debug("Retrying in 5 seconds")
			time.Sleep(5 * time.Second)
			result, err = c.doCall(ctx, getContent(texts))
		}
		if err != nil || result == nil {
			log.Error("Error getting Embeddings from Google", "error", err)
			return nil, err
		}
	}

	var embeddingResults [][]float32
	for _, r := range result.Embeddings {
		embeddingResults = append(embeddingResults, r.Values)
	}
	return embeddingResults, nil
}

func (c *client) doCall(ctx context.Context, content []*genai.Content) (*genai.EmbedContentResponse, error) {
	result, err := c.genAi.Models.EmbedContent(ctx, c.model, content, &genai.EmbedContentConfig{OutputDimensionality: &dimension, TaskType: "RETRIEVAL_DOCUMENT"})
	return result, err
}

func getContent(texts []string) []*genai.Content {
	contentsToSend := make([]*genai.Content, 0, len(texts))

	for _, text := range texts {
		contentsToSend = append(contentsToSend, &genai.Content{
			Parts: []*genai.Part{{Text: text}},
		})
	}
	return contentsToSend
}

func doRetry(err error, log *logger_i.Logger) bool {
	if s, ok := status.FromError(err); ok {
		if s.Code() == codes.ResourceExhausted {
			log.Error("Rate limit hit! ", "error", err)
			return true
		}
	}
	return false
}
