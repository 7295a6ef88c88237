package qaErrors

import "fmt"

// Kind separates what the caller should do with the failure:
// validation is the user's input, decode is the uploaded document,
// inference is the model call.
type Kind int

const (
	KindValidation Kind = iota
	KindDecode
	KindInference
)

// QAError carries a message safe to show the user next to the
// underlying cause for logs.
type QAError struct {
	Kind        Kind
	UserMessage string
	Err         error
}

func (e *QAError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *QAError) Unwrap() error {
	return e.Err
}

func MissingFile() *QAError {
	return &QAError{
		Kind:        KindValidation,
		UserMessage: "Please upload a file first.",
	}
}

func UnsupportedFileType() *QAError {
	return &QAError{
		Kind:        KindValidation,
		UserMessage: "Invalid file type. Please upload one of: .pdf, .png, .jpg, .jpeg",
	}
}

func EmptyQuestionSet() *QAError {
	return &QAError{
		Kind:        KindValidation,
		UserMessage: "Please enter at least one question.",
	}
}

func PageOutOfRange(page int, total int) *QAError {
	return &QAError{
		Kind:        KindDecode,
		UserMessage: fmt.Sprintf("Page %d does not exist. The document has %d page(s).", page, total),
	}
}

func ImageDecode(err error) *QAError {
	return &QAError{
		Kind:        KindDecode,
		UserMessage: "Could not read the document. Please upload a valid PDF or image file.",
		Err:         err,
	}
}

func Inference(err error) *QAError {
	return &QAError{
		Kind:        KindInference,
		UserMessage: "Answering failed. Please try again later.",
		Err:         err,
	}
}
