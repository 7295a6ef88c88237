package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//vqa model
	//the provider decides which client answers questions: "gemini" or "openai"
	VQAProvider     = "gemini"
	GeminiModelName = "gemini-2.5-flash-lite-preview-09-2025"
	OpenAIModelName = "gpt-4o-mini"

	//decoding cap per answer, applied on every generation call
	MaxAnswerTokens int32 = 1028

	//document rendering
	DefaultPageNumber = 1

	//question history (supporting feature, never part of the answer path)
	EmbeddingOutputDimensionality int32 = 1536
	GoogleEmbeddingModel                = "gemini-embedding-001"
	QuestionHistoryDBName               = "question-history"
	HistorySearchLimit                  = 5

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute
	//IdleWorkerTimeout = 1 * time.Second //fo tests

	//serverTimeouts
	ReadTimeout = 5 * time.Second
	//inference runs inside the request, so writes need room to finish
	WriteTimeout = 120 * time.Second
	IdleTimeout  = 120 * time.Second
	//shutdown has to outlast the slowest in-flight ask
	ShutdownContextTimeout = 150 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//inference task buffer limit
	BufferLimit = 100

	//vectorDB
	QdrantConnectionTimeout = 30 * time.Second
	QdrantHost              = ""
	QdrantPort              = 6333 //http
	QdrantGrpcPort          = 6334
	QdrantUseTLS            = false //set for https
	QdrantPoolSize          = 1     //2-5 is preferred for prod according to documentation
	QdrantKeepAliveTimeout  = 30 * time.Second //5 * time.Minute for prod maybe- fine tune for performance

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisActivityStore = 0

	//redis timeouts
	RedisActivityStoreTTL = 24 * time.Hour

	//activity log keeps only the latest entries
	ActivityLogMaxEntries = 200
)

// secrets stay out of the const block - they come from the environment
var (
	GoogleAPIKey  string
	OpenAIAPIKey  string
	AuthToken     string
	NoAuthBypass  bool
	RedisPassword string
)

// assignment happens in init so a local .env is already loaded when the
// values are read
func init() {
	_ = godotenv.Load()

	GoogleAPIKey = os.Getenv("GEMINI_API_KEY")
	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	AuthToken = os.Getenv("API_AUTH_TOKEN")
	NoAuthBypass = AuthToken == ""
	RedisPassword = os.Getenv("REDIS_PASSWORD")
}
