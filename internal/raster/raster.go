package raster

import (
	"bytes"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"time"

	"github.com/akolanti/DocVQA/internal/domain/docModel"
	"github.com/akolanti/DocVQA/internal/domain/qaErrors"
	"github.com/akolanti/DocVQA/internal/metrics"
	"github.com/gen2brain/go-fitz"
)

// RenderPage turns one page of the referenced document into an image
// the model can look at. For PDFs pageNo selects the page, counted
// from 1. Plain images are the page, whatever pageNo says.
func RenderPage(ref docModel.DocumentRef, pageNo int) (docModel.PageImage, error) {
	start := time.Now()
	defer func() {
		metrics.CaptureExecutionMetrics("rasterize", time.Since(start))
	}()

	if ref.Ext == ".pdf" {
		return renderPdfPage(ref.Path, pageNo)
	}
	return loadImageFile(ref.Path)
}

func renderPdfPage(path string, pageNo int) (docModel.PageImage, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return docModel.PageImage{}, qaErrors.ImageDecode(err)
	}
	defer doc.Close()

	total := doc.NumPage()
	if pageNo < 1 || pageNo > total {
		return docModel.PageImage{}, qaErrors.PageOutOfRange(pageNo, total)
	}

	//go-fitz counts pages from zero
	img, err := doc.Image(pageNo - 1)
	if err != nil {
		return docModel.PageImage{}, qaErrors.ImageDecode(err)
	}

	var buffer bytes.Buffer
	if err := png.Encode(&buffer, img); err != nil {
		return docModel.PageImage{}, qaErrors.ImageDecode(err)
	}

	bounds := img.Bounds()
	return docModel.PageImage{
		Data:   buffer.Bytes(),
		MIME:   "image/png",
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// loadImageFile decodes the whole image up front so corrupt uploads
// fail here and not somewhere inside the provider call. The original
// bytes go to the model untouched.
func loadImageFile(path string) (docModel.PageImage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return docModel.PageImage{}, qaErrors.ImageDecode(err)
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return docModel.PageImage{}, qaErrors.ImageDecode(err)
	}

	bounds := img.Bounds()
	return docModel.PageImage{
		Data:   raw,
		MIME:   "image/" + format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
