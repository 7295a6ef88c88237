package inference

import (
	"github.com/akolanti/DocVQA/internal/domain/taskModel"
)

// Service owns the channels the worker pool feeds from. RequestCount
// is bumped atomically per submitted task and drives dispatcher
// signalling.
type Service struct {
	TaskChannel       chan taskModel.InferenceTask
	RequestCount      int64
	DispatcherChannel chan bool
}

type ServiceConfig struct {
	TaskChannel       chan taskModel.InferenceTask
	RequestCount      int64
	DispatcherChannel chan bool
}

func InitInferenceService(cfg ServiceConfig) *Service {
	return &Service{
		TaskChannel:       cfg.TaskChannel,
		RequestCount:      cfg.RequestCount,
		DispatcherChannel: cfg.DispatcherChannel,
	}
}
