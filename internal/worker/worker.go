package worker

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/inference"
	"github.com/akolanti/DocVQA/internal/metrics"
	"github.com/akolanti/DocVQA/internal/vqa"
	"github.com/akolanti/DocVQA/pkg/logger_i"
)

var (
	_inferenceService  *inference.Service
	stopWorkerChannel  chan bool
	workerWaitGroup    *sync.WaitGroup
	dispatcherChannel  chan bool
	currentWorkerCount int64
	logger             *logger_i.Logger
	_provider          vqa.Provider
	minWorkerCount     = config.MinWorkerCount
)

func InitServices(inferenceService *inference.Service, provider vqa.Provider) {
	_inferenceService = inferenceService
	_provider = provider
	dispatcherChannel = inferenceService.DispatcherChannel
}

func InitWorkerPool(stopWorkerChan chan bool, waitGroup *sync.WaitGroup) {
	stopWorkerChannel = stopWorkerChan
	workerWaitGroup = waitGroup
	logger = logger_i.NewLogger("WorkerPool")
	logger.Info("Initializing worker pool")
	go dispatcher()
}

func dispatcher() {
	createWorker()
	logger.Info("Dispatcher started")
	for range dispatcherChannel {
		if atomic.LoadInt64(&currentWorkerCount) < config.MaxWorkerCount {
			logger.Info("Creating new worker", "WorkerCount :", currentWorkerCount)
			createWorker()
		}
	}
}

func createWorker() {
	workerWaitGroup.Add(1)
	go worker()
	atomic.AddInt64(&currentWorkerCount, 1)
	metrics.IncrementActiveWorkerCount()
	logger.Info("Created new worker")
}

func worker() {
	for {
		select {
		case task := <-_inferenceService.TaskChannel:
			executeTask(task)
			metrics.DecrementTasksInQueue()

		case <-stopWorkerChannel:
			removeWorker("Stop worker signal received")

			return

		case <-time.After(config.IdleWorkerTimeout):
			// Worker was idle for too long, retire unless we are at the floor
			if atomic.LoadInt64(&currentWorkerCount) > minWorkerCount {
				removeWorker("Idle worker timeout - Removed worker")
				return
			}
		}
	}
}
