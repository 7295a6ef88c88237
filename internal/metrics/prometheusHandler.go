package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var countTasksInQueue = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "count_inference_tasks_in_queue",
	Help: "Number of inference tasks waiting for a worker",
})

var dispatcherSignalCount = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "dispatcher_signal_count",
	Help: "How often the dispatcher has signaled to start worker",
})

var activeWorkerCount = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "active_worker_count",
	Help: "Number of active workers",
})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

// WriteHeader shadows the embedded writer so the final status sticks
// around for the request counter.
func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func IncrementTasksInQueue() {
	countTasksInQueue.Inc()
}

func DecrementTasksInQueue() {
	countTasksInQueue.Dec()
}

func StartDispatcherSignalCount() {
	dispatcherSignalCount.Inc()
}

func IncrementActiveWorkerCount() {
	activeWorkerCount.Inc()
}
func DecrementActiveWorkerCount() {
	activeWorkerCount.Dec()
}

var askDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "ask_request_duration_seconds",
	Help:    "Total time spent answering one upload, all questions included.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60},
}, []string{"status"})

var questionsPerRequest = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "questions_per_request",
	Help:    "How many questions arrive with a single document.",
	Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureAskMetrics(status string, timeElapsed time.Duration) {
	askDuration.WithLabelValues(status).Observe(timeElapsed.Seconds())
}

func CaptureQuestionCount(count int) {
	questionsPerRequest.Observe(float64(count))
}
