package api

import "time"

// AskResponse is the envelope every /docqa endpoint reply uses.
// Error is only set on failures, the rest only on success.
type AskResponse struct {
	Document  string            `json:"document,omitempty" example:"invoice.pdf"`
	Page      int               `json:"page,omitempty" example:"1"`
	PageCount int               `json:"page_count,omitempty" example:"3"`
	Answers   []AnswerPair      `json:"answers,omitempty"`
	Rendered  string            `json:"rendered,omitempty"`
	ElapsedMs int64             `json:"elapsed_ms,omitempty" example:"1842"`
	Error     *AskOutgoingError `json:"error,omitempty"`
}

type AnswerPair struct {
	Question string `json:"question" example:"What is the invoice total?"`
	Answer   string `json:"answer" example:"$12,430.00"`
}

type AskOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Please upload a file first."`
}

type ActivityItem struct {
	Id            string    `json:"id"`
	Document      string    `json:"document"`
	Page          int       `json:"page"`
	QuestionCount int       `json:"question_count"`
	Status        string    `json:"status" example:"answered"`
	ElapsedMs     int64     `json:"elapsed_ms"`
	Timestamp     time.Time `json:"timestamp"`
}

type ActivityResponse struct {
	Items    []ActivityItem `json:"items"`
	Rendered []string       `json:"rendered"`
}

type HistoryMatchItem struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Document   string  `json:"document"`
	Page       int     `json:"page"`
	Score      float32 `json:"score" example:"0.87"`
	AnsweredAt string  `json:"answered_at"`
}

type SimilarResponse struct {
	Question string             `json:"question"`
	Matches  []HistoryMatchItem `json:"matches"`
}
