package taskModel

import (
	"context"

	"github.com/akolanti/DocVQA/internal/domain/docModel"
)

// InferenceTask is one question paired with the page it is asked
// about. Every question of a request becomes its own task so the
// model sees them independently.
type InferenceTask struct {
	Ctx      context.Context
	Page     docModel.PageImage
	Question string
	Index    int
	TraceId  string
	//buffered for every task of the request so a worker send
	//never blocks on a caller that already gave up
	Result chan TaskResult
}

// TaskResult travels back to the caller that submitted the task.
// Index lets the caller slot answers back into submission order.
type TaskResult struct {
	Index  int
	Answer string
	Err    error
}
