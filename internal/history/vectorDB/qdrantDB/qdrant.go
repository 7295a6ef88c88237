package qdrantDB

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/akolanti/DocVQA/internal/adapter/utils"
	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/domain/docModel"
	"github.com/akolanti/DocVQA/internal/metrics"
	"github.com/akolanti/DocVQA/pkg/logger_i"
	"github.com/qdrant/go-client/qdrant"
)

var logger *logger_i.Logger
var quadrantInstance *qdrant.Client
var once sync.Once
var dimension = uint64(config.EmbeddingOutputDimensionality)
var collectionName = config.QuestionHistoryDBName

type ClientHolder struct {
	QObj *qdrant.Client
}

func GetQuadrantClient(ctx context.Context) *ClientHolder {

	once.Do(func() {
		logger = logger_i.NewLogger("Qdrant")
		res := newClient()
		if res != nil {
			quadrantInstance = res
			go closeQdrant(ctx, quadrantInstance)
		}
	})

	if quadrantInstance == nil {
		return nil
	}
	return &ClientHolder{
		QObj: quadrantInstance,
	}
}

func newClient() *qdrant.Client {

	host := os.Getenv("QDRANT_HOST")
	port, er := strconv.Atoi(os.Getenv("QDRANT_PORT"))

	if host == "" || er != nil {
		host = config.QdrantHost
		port = config.QdrantGrpcPort
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate: ", "error:", err)
		return nil
	}

	err = createCollection(context.Background(), client, collectionName)
	if err != nil {
		logger.Error("could not create collection: ", "collectionName", collectionName, "error:", err)
		return nil
	}

	return client
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	err := qi.Close()
	if err != nil {
		logger.Error("could not close Qdrant: ", "error:", err)
	}
	logger.Info("Closed Qdrant")
}

func (db *ClientHolder) SearchQuestions(ctx context.Context, queryVector []float32, limit int) ([]docModel.HistoryMatch, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("qdrant_search", time.Since(start)) }()

	if limit < 1 {
		limit = config.HistorySearchLimit
	}

	result, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collectionName,
		Query:          qdrant.NewQuery(queryVector...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		loggr.Error("Error querying Qdrant: ", "error:", err)
		return nil, err
	}

	var matches []docModel.HistoryMatch
	for _, hit := range result {
		matches = append(matches, docModel.HistoryMatch{
			Question:   hit.Payload["question"].GetStringValue(),
			Answer:     hit.Payload["answer"].GetStringValue(),
			Document:   hit.Payload["doc_name"].GetStringValue(),
			Page:       int(hit.Payload["page"].GetIntegerValue()),
			Score:      hit.Score,
			AnsweredAt: hit.Payload["answered_at"].GetStringValue(),
		})
	}

	loggr.Debug("Found matches", "count", len(matches))
	return matches, nil
}

func (db *ClientHolder) UpsertQuestions(ctx context.Context, pairs []docModel.QA, vectors [][]float32, docName string, page int) error {
	if len(pairs) != len(vectors) {
		return fmt.Errorf("mismatch: got %d pairs but %d vectors", len(pairs), len(vectors))
	}

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("qdrant_upsert", time.Since(start)) }()

	answeredAt := time.Now().UTC().Format(time.RFC3339)
	points := make([]*qdrant.PointStruct, len(pairs))

	for i, pair := range pairs {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(utils.GetNewUUID()),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				"question":    pair.Question,
				"answer":      pair.Answer,
				"doc_name":    docName,
				"page":        int64(page),
				"answered_at": answeredAt,
			}),
		}
	}

	_, err := db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Points:         points,
		Wait:           qdrant.PtrOf(true),
	})

	if err != nil {
		return fmt.Errorf("qdrant upsert failed: %w", err)
	}

	return nil

}

func createCollection(ctx context.Context, client *qdrant.Client, collectionName string) error {
	if collectionName == "" {
		return errors.New("empty collection name")
	}

	exists, err := client.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {

		return nil
	}

	err = client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	return err
}
