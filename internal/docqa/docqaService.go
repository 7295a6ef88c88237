package docqa

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/akolanti/DocVQA/internal/adapter/utils"
	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/domain/activityModel"
	"github.com/akolanti/DocVQA/internal/domain/docModel"
	"github.com/akolanti/DocVQA/internal/domain/qaErrors"
	"github.com/akolanti/DocVQA/internal/domain/taskModel"
	"github.com/akolanti/DocVQA/internal/history"
	"github.com/akolanti/DocVQA/internal/inference"
	"github.com/akolanti/DocVQA/internal/metrics"
	"github.com/akolanti/DocVQA/internal/raster"
	"github.com/akolanti/DocVQA/pkg/logger_i"
)

// AskRequest carries one upload with its questions. Document is nil
// when no file arrived. Page counts from 1, entrypoints fill in the
// default before calling Ask.
type AskRequest struct {
	Document     *docModel.DocumentRef
	RawQuestions string
	Page         int
	TraceId      string
}

type AskResult struct {
	Pairs     []docModel.QA
	Rendered  string
	Document  string
	Page      int
	PageCount int
	ElapsedMs int64
}

// Service answers questions about one page of one document. Both the
// HTTP handlers and the MCP tool call through this, neither knows
// about workers or the provider.
type Service interface {
	Ask(ctx context.Context, req AskRequest) (AskResult, error)
}

type service struct {
	infService *inference.Service
	activity   activityModel.ActivityStore
	history    history.Service
	logger     *logger_i.Logger
}

// NewService constructor. historyService may be nil, indexing is then
// skipped, answering is not affected.
func NewService(infService *inference.Service, activity activityModel.ActivityStore, historyService history.Service) Service {
	return &service{
		infService: infService,
		activity:   activity,
		history:    historyService,
		logger:     logger_i.NewLogger("DocQA Service :"),
	}
}

func (s *service) Ask(ctx context.Context, req AskRequest) (AskResult, error) {
	start := time.Now()
	log := s.logger.With("traceId", req.TraceId)

	questions, err := ValidateRequest(req.Document, req.RawQuestions)
	if err != nil {
		return s.finishAsk(ctx, req, AskResult{}, 0, err, start, log)
	}
	metrics.CaptureQuestionCount(len(questions))

	pageCount := 1
	if req.Document.Ext == ".pdf" {
		pageCount, err = raster.InspectPDF(req.Document.Path)
		if err == nil && (req.Page < 1 || req.Page > pageCount) {
			err = qaErrors.PageOutOfRange(req.Page, pageCount)
		}
		if err != nil {
			return s.finishAsk(ctx, req, AskResult{}, len(questions), err, start, log)
		}
	}

	pageImage, err := raster.RenderPage(*req.Document, req.Page)
	if err != nil {
		return s.finishAsk(ctx, req, AskResult{}, len(questions), err, start, log)
	}
	log.Debug("Rendered page", "page", req.Page, "width", pageImage.Width, "height", pageImage.Height)

	answers, err := s.runInference(ctx, req, pageImage, questions)
	if err != nil {
		return s.finishAsk(ctx, req, AskResult{}, len(questions), err, start, log)
	}

	pairs := make([]docModel.QA, len(questions))
	for i, question := range questions {
		pairs[i] = docModel.QA{Question: question, Answer: answers[i]}
	}

	result := AskResult{
		Pairs:     pairs,
		Rendered:  RenderAnswerLines(pairs),
		Document:  req.Document.DisplayName,
		Page:      req.Page,
		PageCount: pageCount,
	}
	return s.finishAsk(ctx, req, result, len(questions), nil, start, log)
}

// runInference fans the questions out to the worker pool and collects
// the answers back into submission order. One failed question fails
// the whole request, no partial answers and no retries. The cancel
// stops the questions still in flight once the request is lost.
func (s *service) runInference(ctx context.Context, req AskRequest, page docModel.PageImage, questions []string) ([]string, error) {
	taskCtx, cancelTasks := context.WithCancel(ctx)
	defer cancelTasks()

	resultChannel := make(chan taskModel.TaskResult, len(questions))

	for i, question := range questions {
		s.pushToTaskChannel(taskModel.InferenceTask{
			Ctx:      taskCtx,
			Page:     page,
			Question: question,
			Index:    i,
			TraceId:  req.TraceId,
			Result:   resultChannel,
		})
	}

	answers := make([]string, len(questions))
	var firstErr error
	for range questions {
		result := <-resultChannel
		if result.Err != nil && firstErr == nil {
			firstErr = result.Err
			cancelTasks()
		}
		answers[result.Index] = result.Answer
	}

	if firstErr != nil {
		return nil, qaErrors.Inference(firstErr)
	}
	return answers, nil
}

func (s *service) pushToTaskChannel(task taskModel.InferenceTask) {
	//metrics
	metrics.IncrementTasksInQueue()

	s.infService.TaskChannel <- task //this is a blocking send to prevent the system from being overwhelmed

	accurateCount := atomic.AddInt64(&s.infService.RequestCount, 1) //after sending a task increment counter
	if accurateCount%config.RequestsPerNewWorkerCount == 0 {
		metrics.StartDispatcherSignalCount() //metrics
		s.infService.DispatcherChannel <- true
	}
}

// finishAsk is the single exit point of Ask: stamps the elapsed time,
// records the activity entry and kicks off background indexing when
// the request succeeded.
func (s *service) finishAsk(ctx context.Context, req AskRequest, result AskResult, questionCount int, err error, start time.Time, log *logger_i.Logger) (AskResult, error) {
	elapsed := time.Since(start)
	result.ElapsedMs = elapsed.Milliseconds()

	status := activityModel.StatusAnswered
	if err != nil {
		status = statusForError(err)
		log.Error("Ask failed", "status", status, "error", err)
	}
	metrics.CaptureAskMetrics(status, elapsed)
	s.recordActivity(ctx, req, questionCount, status, elapsed)

	if err == nil && s.history != nil {
		go s.indexAnswers(req, result)
	}

	return result, err
}

func (s *service) recordActivity(ctx context.Context, req AskRequest, questionCount int, status string, elapsed time.Duration) {
	docName := ""
	if req.Document != nil {
		docName = req.Document.DisplayName
	}

	entry := activityModel.ActivityEntry{
		Id:            utils.GetNewUUID(),
		TraceId:       req.TraceId,
		Document:      docName,
		Page:          req.Page,
		QuestionCount: questionCount,
		Status:        status,
		ElapsedMs:     elapsed.Milliseconds(),
		CreatedTime:   time.Now(),
	}
	if err := s.activity.Append(ctx, entry); err != nil {
		s.logger.Error("Failed to append activity entry", "error", err)
	}
}

// indexAnswers runs after the response went out, on its own context.
// A failure here is logged and dropped, the user already has their
// answers.
func (s *service) indexAnswers(req AskRequest, result AskResult) {
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, req.TraceId)
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.history.IndexAnswers(ctx, result.Document, result.Page, result.Pairs); err != nil {
		s.logger.Error("Failed to index answered questions", "error", err)
	}
}
