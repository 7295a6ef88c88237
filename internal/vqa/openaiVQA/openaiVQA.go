package openaiVQA

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/customHttpClient"
	"github.com/akolanti/DocVQA/internal/domain/docModel"
	"github.com/akolanti/DocVQA/internal/metrics"
	"github.com/akolanti/DocVQA/internal/vqa"
	"github.com/akolanti/DocVQA/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type vqaClient struct {
	client    openai.Client
	modelName string
}

var logger *logger_i.Logger
var openaiClient *vqaClient
var once sync.Once

// GetOpenAIClient is the once-per-process factory for the OpenAI
// backed provider. Nil comes back when no API key is set.
func GetOpenAIClient(modelName string, apikey string) vqa.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("vqa_openai")
		if apikey == "" {
			logger.Error("OpenAI API key is missing")
			return
		}
		c := openai.NewClient(
			option.WithAPIKey(apikey),
			option.WithHTTPClient(customHttpClient.GetPooledClient()),
		)
		openaiClient = &vqaClient{client: c, modelName: modelName}
		logger.Info("OpenAI client created", "model", modelName)
	})

	if openaiClient == nil {
		return nil
	}
	return openaiClient
}

func (c *vqaClient) AnswerQuestion(ctx context.Context, page docModel.PageImage, question string) (string, error) {
	start := time.Now()
	defer func() {
		metrics.CaptureExecutionMetrics("vqa_inference", time.Since(start))
	}()

	//the chat endpoint wants images inline as data URLs
	dataURL := fmt.Sprintf("data:%s;base64,%s", page.MIME, base64.StdEncoding.EncodeToString(page.Data))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               c.modelName,
		MaxCompletionTokens: openai.Int(int64(config.MaxAnswerTokens)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(question),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: dataURL,
				}),
			}),
		},
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion came back with no choices")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
