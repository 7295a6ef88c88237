package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/domain/taskModel"
	"github.com/akolanti/DocVQA/internal/metrics"
)

// executeTask runs one question through the provider and hands the
// result back on the task's own channel. The channel is buffered, a
// send never blocks the worker.
func executeTask(task taskModel.InferenceTask) {
	ctx := task.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	ctxTrace := context.WithValue(ctx, config.TRACE_ID_KEY, task.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, 60*time.Second)
	defer cancel()

	logger.Debug("Processing task:", "index", task.Index, "traceId", task.TraceId)

	answer, err := _provider.AnswerQuestion(ctx, task.Page, task.Question)
	if err != nil {
		logger.Error("Provider call failed", "index", task.Index, "err", err)
	}

	task.Result <- taskModel.TaskResult{Index: task.Index, Answer: answer, Err: err}
}

func removeWorker(reason string) {

	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()

}
