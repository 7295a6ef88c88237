package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/akolanti/DocVQA/internal/adapter"
	"github.com/akolanti/DocVQA/internal/config"
	"github.com/akolanti/DocVQA/internal/docqa"
	"github.com/akolanti/DocVQA/internal/domain/activityModel"
	"github.com/akolanti/DocVQA/internal/domain/docModel"
	"github.com/akolanti/DocVQA/internal/domain/qaErrors"
	"github.com/akolanti/DocVQA/internal/history"
	"github.com/akolanti/DocVQA/pkg/logger_i"
)

var (
	handlerInstance *AskHandler //private singleton
	once            sync.Once
	logAH           *logger_i.Logger
)

type AskHandler struct {
	askService     docqa.Service
	activityStore  activityModel.ActivityStore
	historyService history.Service
}

func InitHandlers(askService docqa.Service, activityStore activityModel.ActivityStore, historyService history.Service) {
	once.Do(func() {
		handlerInstance = &AskHandler{
			askService:     askService,
			activityStore:  activityStore,
			historyService: historyService,
		}

		logAH = logger_i.NewLogger("AskHandler")
		logAH.Info("Starting ask handler")
	})

}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	return
}

// AskDocumentHandler godoc
// @Summary      Ask questions about a document page
// @Description  Accepts a PDF or image plus newline separated questions and answers all of them in one synchronous response.
// @Tags         DocQA
// @Accept       multipart/form-data
// @Produce      json
// @Param        document   formData  file    false  "The PDF, PNG or JPEG to ask about"
// @Param        questions  formData  string  false  "One question per line"
// @Param        page       formData  int     false  "PDF page to look at, counted from 1"
// @Success      200  {object}  api.AskResponse "Answers in question order"
// @Failure      400  {object}  api.AskResponse "Request validation failed"
// @Failure      422  {object}  api.AskResponse "Document could not be decoded"
// @Failure      502  {object}  api.AskResponse "Model call failed"
// @Router       /api/v1/docqa/ask [post]
func AskDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logAH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	const maxUploadSize = 32 << 20 //32mb
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "File too large or bad request")
		return
	}

	page := config.DefaultPageNumber
	if pageField := r.FormValue("page"); pageField != "" {
		parsed, err := strconv.Atoi(pageField)
		if err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, "page must be a number")
			return
		}
		page = parsed
	}

	//no file part is a valid request shape, the service answers it
	//with the missing file message
	var ref *docModel.DocumentRef
	fileReader, fileMetadata, err := r.FormFile("document")
	if err == nil {
		defer fileReader.Close()

		tempFilePath, errString := saveUpload(fileReader, fileMetadata.Filename)
		if errString != "" {
			WriteErrorResponse(w, http.StatusInternalServerError, errString)
			return
		}
		defer os.Remove(tempFilePath)

		ref = &docModel.DocumentRef{
			Path:        tempFilePath,
			DisplayName: fileMetadata.Filename,
			Ext:         docqa.NormalizeExt(fileMetadata.Filename),
		}
	}

	req := docqa.AskRequest{
		Document:     ref,
		RawQuestions: r.FormValue("questions"),
		Page:         page,
		TraceId:      traceIdFromContext(r.Context()),
	}

	result, err := handlerInstance.askService.Ask(r.Context(), req)
	if err != nil {
		code, message := statusForAskError(err)
		WriteErrorResponse(w, code, message)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToAskResponse(result))
}

// saveUpload writes the upload under temporary_data with a nanosecond
// prefix so concurrent requests never clash on the same name. The
// caller removes the file when the request is done.
func saveUpload(fileReader io.Reader, originalName string) (string, string) {
	targetDir, errString := getTargetDirectory()
	if errString != "" {
		logAH.Error("Couldn't get target directory :", "err", errString)
		return "", errString
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(originalName))
	tempFilePath := filepath.Join(targetDir, filename)
	destinationFileWriter, err := os.Create(tempFilePath)
	if err != nil {
		return "", "Storage error"
	}
	defer destinationFileWriter.Close()

	if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
		return "", "Write error"
	}
	return tempFilePath, ""
}

func statusForAskError(err error) (int, string) {
	var qaErr *qaErrors.QAError
	if errors.As(err, &qaErr) {
		switch qaErr.Kind {
		case qaErrors.KindValidation:
			return http.StatusBadRequest, qaErr.UserMessage
		case qaErrors.KindDecode:
			return http.StatusUnprocessableEntity, qaErr.UserMessage
		case qaErrors.KindInference:
			return http.StatusBadGateway, qaErr.UserMessage
		}
	}
	return http.StatusInternalServerError, "Internal Server Error"
}
