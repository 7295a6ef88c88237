package gemini

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/domain/docModel"
	"github.com/akolanti/DocVQA/internal/metrics"
	"github.com/akolanti/DocVQA/internal/vqa"
	"github.com/akolanti/DocVQA/pkg/logger_i"
	"google.golang.org/genai"
)

type vqaClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiClient *vqaClient
var once sync.Once

// GetGeminiClient builds the client exactly once for the whole
// process. Later calls get the same handle back. A nil return means
// the client could not be created and the caller has to deal with it.
func GetGeminiClient(ctx context.Context, modelName string, apikey string) vqa.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("vqa_gemini")
		newGeminiClient(ctx, modelName, apikey)
	})

	if geminiClient == nil {
		return nil
	}
	return geminiClient
}

func newGeminiClient(ctx context.Context, modelName string, apikey string) {

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
	}
	if c != nil {
		geminiClient = &vqaClient{client: c, modelName: modelName}
		logger.Info("Gemini client created", "model", modelName)
		go closeClient(ctx, geminiClient)
	}

}

func (c *vqaClient) AnswerQuestion(ctx context.Context, page docModel.PageImage, question string) (string, error) {
	start := time.Now()
	defer func() {
		metrics.CaptureExecutionMetrics("vqa_inference", time.Since(start))
	}()

	contents := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: page.MIME, Data: page.Data}},
				{Text: question},
			},
		},
	}

	contentConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: config.MaxAnswerTokens,
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		contents,
		contentConfig,
	)
	if err != nil {
		return "", err
	}

	//Text() concatenates the text parts and leaves control tokens out,
	//whitespace padding is all that is left to strip
	return strings.TrimSpace(result.Text()), nil
}

func closeClient(ctx context.Context, v *vqaClient) {
	<-ctx.Done()
	logger.Info("Closing Gemini client")
	v.client = nil
	v.modelName = ""
}
