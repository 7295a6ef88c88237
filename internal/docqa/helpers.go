package docqa

import (
	"errors"
	"strings"

	"github.com/akolanti/DocVQA/internal/domain/activityModel"
	"github.com/akolanti/DocVQA/internal/domain/docModel"
	"github.com/akolanti/DocVQA/internal/domain/qaErrors"
)

// RenderAnswerLines formats one "<question>: <answer>" line per pair,
// newline joined, in submission order.
func RenderAnswerLines(pairs []docModel.QA) string {
	lines := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		lines = append(lines, pair.Question+": "+pair.Answer)
	}
	return strings.Join(lines, "\n")
}

// statusForError maps bad user input to rejected, anything that broke
// while answering to failed.
func statusForError(err error) string {
	var qaErr *qaErrors.QAError
	if errors.As(err, &qaErr) && qaErr.Kind == qaErrors.KindValidation {
		return activityModel.StatusRejected
	}
	return activityModel.StatusFailed
}
