package activityModel

import (
	"context"
	"time"
)

const (
	StatusAnswered = "answered"
	StatusRejected = "rejected"
	StatusFailed   = "failed"
)

// ActivityEntry is one line of the recent-requests feed.
type ActivityEntry struct {
	Id            string    `json:"id"`
	TraceId       string    `json:"traceId"`
	Document      string    `json:"document"`
	Page          int       `json:"page"`
	QuestionCount int       `json:"questionCount"`
	Status        string    `json:"status"`
	ElapsedMs     int64     `json:"elapsedMs"`
	CreatedTime   time.Time `json:"createdTime"`
}

// ActivityStore keeps the newest entries first, trimmed to a cap.
type ActivityStore interface {
	Append(ctx context.Context, entry ActivityEntry) error
	Recent(ctx context.Context, limit int) ([]ActivityEntry, error)
}
