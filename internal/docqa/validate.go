package docqa

import (
	"path/filepath"
	"strings"

	"github.com/akolanti/DocVQA/internal/domain/docModel"
	"github.com/akolanti/DocVQA/internal/domain/qaErrors"
)

// ValidateRequest checks an ask request in a fixed order: the file has
// to be there, its type has to be allowed, at least one question has
// to survive parsing. The first failure wins. No I/O happens here.
func ValidateRequest(ref *docModel.DocumentRef, rawQuestions string) ([]string, error) {
	if ref == nil {
		return nil, qaErrors.MissingFile()
	}

	if !ExtensionAllowed(ref.Ext) {
		return nil, qaErrors.UnsupportedFileType()
	}

	questions := ParseQuestions(rawQuestions)
	if len(questions) == 0 {
		return nil, qaErrors.EmptyQuestionSet()
	}

	return questions, nil
}

// ParseQuestions splits raw text into one question per line. Lines are
// trimmed, blank ones dropped, the order stays as typed.
func ParseQuestions(raw string) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		question := strings.TrimSpace(line)
		if question == "" {
			continue
		}
		questions = append(questions, question)
	}
	return questions
}

// ExtensionAllowed reports whether ext, dot included and any case,
// names a type we accept.
func ExtensionAllowed(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range docModel.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// NormalizeExt pulls the lowercased extension out of a file name.
func NormalizeExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
