package handlers

import (
	"net/http"
	"strconv"

	"github.com/akolanti/DocVQA/internal/adapter"
)

// RecentActivityHandler godoc
// @Summary      Recent ask activity
// @Description  Returns the newest ask requests first, both as structured items and as rendered feed lines.
// @Tags         Activity
// @Produce      json
// @Param        limit  query  int  false  "Max entries to return"
// @Success      200  {object}  api.ActivityResponse
// @Failure      400  {object}  api.AskResponse "Bad limit value"
// @Router       /api/v1/activity [get]
func RecentActivityHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logAH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	limit := 0
	if limitField := r.URL.Query().Get("limit"); limitField != "" {
		parsed, err := strconv.Atoi(limitField)
		if err != nil || parsed < 0 {
			WriteErrorResponse(w, http.StatusBadRequest, "limit must be a non-negative number")
			return
		}
		limit = parsed
	}

	entries, err := handlerInstance.activityStore.Recent(r.Context(), limit)
	if err != nil {
		logAH.Error("Could not read activity", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Could not read activity")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToActivityResponse(entries))
}
