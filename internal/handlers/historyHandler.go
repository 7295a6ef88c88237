package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/akolanti/DocVQA/internal/adapter"
	"github.com/akolanti/DocVQA/internal/config"
)

// SimilarQuestionsHandler godoc
// @Summary      Similar past questions
// @Description  Finds previously answered questions that read like the given one, scored by vector similarity.
// @Tags         History
// @Produce      json
// @Param        question  query  string  true   "Question to search for"
// @Param        limit     query  int     false  "Max matches to return"
// @Success      200  {object}  api.SimilarResponse
// @Failure      400  {object}  api.AskResponse "Missing question"
// @Failure      503  {object}  api.AskResponse "History index not configured"
// @Router       /api/v1/history/similar [get]
func SimilarQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logAH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	question := strings.TrimSpace(r.URL.Query().Get("question"))
	if question == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	if handlerInstance.historyService == nil {
		WriteErrorResponse(w, http.StatusServiceUnavailable, "History search is not configured")
		return
	}

	limit := config.HistorySearchLimit
	if limitField := r.URL.Query().Get("limit"); limitField != "" {
		parsed, err := strconv.Atoi(limitField)
		if err != nil || parsed < 1 {
			WriteErrorResponse(w, http.StatusBadRequest, "limit must be a positive number")
			return
		}
		limit = parsed
	}

	matches, err := handlerInstance.historyService.SimilarQuestions(r.Context(), question, limit)
	if err != nil {
		logAH.Error("History search failed", "error", err)
		WriteErrorResponse(w, http.StatusBadGateway, "History search failed")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToSimilarResponse(question, matches))
}
