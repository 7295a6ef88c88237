package adapter

import (
	"fmt"

	"github.com/akolanti/DocVQA/internal/api"
	"github.com/akolanti/DocVQA/internal/docqa"
	"github.com/akolanti/DocVQA/internal/domain/activityModel"
	"github.com/akolanti/DocVQA/internal/domain/docModel"
)

func ToAskResponse(result docqa.AskResult) api.AskResponse {
	answers := make([]api.AnswerPair, 0, len(result.Pairs))
	for _, pair := range result.Pairs {
		answers = append(answers, api.AnswerPair{
			Question: pair.Question,
			Answer:   pair.Answer,
		})
	}

	return api.AskResponse{
		Document:  result.Document,
		Page:      result.Page,
		PageCount: result.PageCount,
		Answers:   answers,
		Rendered:  result.Rendered,
		ElapsedMs: result.ElapsedMs,
	}
}

func BadRequest(message string, code int) api.AskResponse {
	return api.AskResponse{
		Error: &api.AskOutgoingError{
			Code:    code,
			Message: message,
		},
	}
}

func ToActivityResponse(entries []activityModel.ActivityEntry) api.ActivityResponse {
	items := make([]api.ActivityItem, 0, len(entries))
	rendered := make([]string, 0, len(entries))

	for _, entry := range entries {
		items = append(items, api.ActivityItem{
			Id:            entry.Id,
			Document:      entry.Document,
			Page:          entry.Page,
			QuestionCount: entry.QuestionCount,
			Status:        entry.Status,
			ElapsedMs:     entry.ElapsedMs,
			Timestamp:     entry.CreatedTime,
		})
		rendered = append(rendered, RenderActivityLine(entry))
	}

	return api.ActivityResponse{Items: items, Rendered: rendered}
}

// RenderActivityLine formats one feed line, for example
// "[14:03:59] invoice.pdf p1 3 questions answered in 1842ms".
func RenderActivityLine(entry activityModel.ActivityEntry) string {
	doc := entry.Document
	if doc == "" {
		doc = "(no file)"
	}
	return fmt.Sprintf("[%s] %s p%d %d questions %s in %dms",
		entry.CreatedTime.Format("15:04:05"), doc, entry.Page, entry.QuestionCount, entry.Status, entry.ElapsedMs)
}

func ToSimilarResponse(question string, matches []docModel.HistoryMatch) api.SimilarResponse {
	items := make([]api.HistoryMatchItem, 0, len(matches))
	for _, match := range matches {
		items = append(items, api.HistoryMatchItem{
			Question:   match.Question,
			Answer:     match.Answer,
			Document:   match.Document,
			Page:       match.Page,
			Score:      match.Score,
			AnsweredAt: match.AnsweredAt,
		})
	}
	return api.SimilarResponse{Question: question, Matches: items}
}
