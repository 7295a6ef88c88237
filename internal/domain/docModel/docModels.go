package docModel

// AllowedExtensions lists the upload types we can turn into a page image.
// Extensions are stored lowercased with the leading dot.
var AllowedExtensions = []string{".pdf", ".png", ".jpg", ".jpeg"}

// DocumentRef points at an uploaded document saved on local disk.
// DisplayName keeps the name the user uploaded, Path is where the
// bytes actually live for this request.
type DocumentRef struct {
	Path        string
	DisplayName string
	Ext         string
}

// PageImage is a single rendered page, ready to send to the model.
type PageImage struct {
	Data   []byte
	MIME   string
	Width  int
	Height int
}

// QA pairs one question with the model's answer. Order follows the
// order the questions were submitted in.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// HistoryMatch is a previously answered question scored against a
// new one by the history index.
type HistoryMatch struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Document   string  `json:"document"`
	Page       int     `json:"page"`
	Score      float32 `json:"score"`
	AnsweredAt string  `json:"answeredAt"`
}
