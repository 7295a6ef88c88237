package adapter

import (
	"testing"
	"time"

	"github.com/akolanti/DocVQA/internal/docqa"
	"github.com/akolanti/DocVQA/internal/domain/activityModel"
	"github.com/akolanti/DocVQA/internal/domain/docModel"
)

func TestToAskResponse(t *testing.T) {
	result := docqa.AskResult{
		Pairs: []docModel.QA{
			{Question: "What is the total?", Answer: "$12,430.00"},
			{Question: "Who signed it?", Answer: "J. Doe"},
		},
		Rendered:  "What is the total?: $12,430.00\nWho signed it?: J. Doe",
		Document:  "invoice.pdf",
		Page:      1,
		PageCount: 3,
		ElapsedMs: 1842,
	}

	resp := ToAskResponse(result)
	if len(resp.Answers) != 2 {
		t.Fatalf("Expected 2 answers, got %d", len(resp.Answers))
	}
	if resp.Answers[0].Question != "What is the total?" || resp.Answers[1].Answer != "J. Doe" {
		t.Error("Answers lost their pairing on the way out")
	}
	if resp.Document != "invoice.pdf" || resp.PageCount != 3 || resp.ElapsedMs != 1842 {
		t.Errorf("Metadata wrong: %+v", resp)
	}
	if resp.Error != nil {
		t.Error("Successful responses carry no error")
	}
}

func TestRenderActivityLine(t *testing.T) {
	stamp := time.Date(2026, 3, 14, 14, 3, 59, 0, time.UTC)

	tests := []struct {
		name     string
		entry    activityModel.ActivityEntry
		expected string
	}{
		{
			name: "Answered request",
			entry: activityModel.ActivityEntry{
				Document:      "invoice.pdf",
				Page:          1,
				QuestionCount: 3,
				Status:        activityModel.StatusAnswered,
				ElapsedMs:     1842,
				CreatedTime:   stamp,
			},
			expected: "[14:03:59] invoice.pdf p1 3 questions answered in 1842ms",
		},
		{
			name: "Rejected request without a file",
			entry: activityModel.ActivityEntry{
				Page:        1,
				Status:      activityModel.StatusRejected,
				ElapsedMs:   2,
				CreatedTime: stamp,
			},
			expected: "[14:03:59] (no file) p1 0 questions rejected in 2ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderActivityLine(tt.entry); got != tt.expected {
				t.Errorf("Got  %q\nwant %q", got, tt.expected)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	resp := BadRequest("Please upload a file first.", 400)
	if resp.Error == nil {
		t.Fatal("Expected an error envelope")
	}
	if resp.Error.Code != 400 || resp.Error.Message != "Please upload a file first." {
		t.Errorf("Envelope wrong: %+v", resp.Error)
	}
	if len(resp.Answers) != 0 {
		t.Error("Error responses carry no answers")
	}
}
