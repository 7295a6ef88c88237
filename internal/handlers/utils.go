package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/akolanti/DocVQA/internal/adapter"
	"github.com/akolanti/DocVQA/internal/config"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logAH.Error("Error encoding response: %v", err)
	}
}

func validateContext(ctx context.Context) bool {
	logAH.With("traceId:", ctx.Value(config.TRACE_ID_KEY))
	if ctx.Err() != nil {
		logAH.Warn("context error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logAH.Warn("context cancelled")
		return false
	default:
		return true

	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, message string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(message, httpCode))
}

func traceIdFromContext(ctx context.Context) string {
	if traceId, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		return traceId
	}
	return ""
}

func getTargetDirectory() (string, string) {
	root, err := os.Getwd()
	if err != nil {
		return "", "Storage Error"
	}

	targetDir := filepath.Join(root, "temporary_data")
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return "", "Storage Error"
	}
	return targetDir, ""
}
