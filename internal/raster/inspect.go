package raster

import (
	"time"

	"github.com/akolanti/DocVQA/internal/domain/qaErrors"
	"github.com/akolanti/DocVQA/internal/metrics"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// InspectPDF checks the file is structurally sound and reports its
// page count, without rendering anything.
func InspectPDF(path string) (int, error) {
	start := time.Now()
	defer func() {
		metrics.CaptureExecutionMetrics("pdf_inspect", time.Since(start))
	}()

	//strict mode rejects files most viewers open fine
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(path, cfg); err != nil {
		return 0, qaErrors.ImageDecode(err)
	}

	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return 0, qaErrors.ImageDecode(err)
	}

	return pageCount, nil
}
