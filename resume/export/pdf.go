package export

import (
	"context"
	"errors"
	"sync/atomic"

	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

var (
	// ErrNoPreview is returned when PDF export is attempted before the
	// preview has been rendered. The capture stage needs concrete rendered
	// pixels, not a data structure.
	ErrNoPreview = errors.New("please preview your resume first before exporting to PDF")

	// ErrExportInFlight is returned when an export is attempted while a
	// previous one is still running. Overlapping exports are rejected, not
	// queued.
	ErrExportInFlight = errors.New("a PDF export is already in progress")
)

// PageSize is a physical page in millimeters.
type PageSize struct {
	WidthMM  float64
	HeightMM float64
}

// A4 is the fixed page size used for PDF export.
var A4 = PageSize{WidthMM: 210, HeightMM: 297}

// RasterImage is a pixel-accurate capture of the rendered preview.
type RasterImage struct {
	PNG    []byte
	Width  int
	Height int
}

// Capturer produces a raster capture of rendered preview HTML.
// Implementations render at 2x scale on an opaque white background.
type Capturer interface {
	Capture(ctx context.Context, previewHTML string) (RasterImage, error)
}

// Assembler lays a raster image onto a fixed-size page and emits the
// document bytes.
type Assembler interface {
	Assemble(ctx context.Context, img RasterImage, page PageSize, placement Placement) ([]byte, error)
}

// Placement positions a scaled image on a page, in millimeters.
type Placement struct {
	WidthMM   float64
	HeightMM  float64
	XOffsetMM float64
	YOffsetMM float64
}

// FitToPage scales pixel dimensions to fit within the page while preserving
// aspect ratio, and centers the result.
func FitToPage(imgWidth, imgHeight int, page PageSize) Placement {
	if imgWidth <= 0 || imgHeight <= 0 {
		return Placement{WidthMM: page.WidthMM, HeightMM: page.HeightMM}
	}

	imgRatio := float64(imgWidth) / float64(imgHeight)
	pageRatio := page.WidthMM / page.HeightMM

	width := page.WidthMM
	height := page.HeightMM
	if imgRatio > pageRatio {
		height = page.WidthMM / imgRatio
	} else {
		width = page.HeightMM * imgRatio
	}

	return Placement{
		WidthMM:   width,
		HeightMM:  height,
		XOffsetMM: (page.WidthMM - width) / 2,
		YOffsetMM: (page.HeightMM - height) / 2,
	}
}

// PDFExporter drives the two-stage capture and assembly pipeline.
type PDFExporter struct {
	Capturer  Capturer
	Assembler Assembler

	inFlight atomic.Bool
}

// ExportPDF captures the given rendered preview and assembles it into an A4
// PDF. It returns the document bytes and the download filename.
//
// previewHTML must be the already-rendered preview; an empty preview fails
// fast with ErrNoPreview. A second call while one is running returns
// ErrExportInFlight.
func (e *PDFExporter) ExportPDF(ctx context.Context, r model.Resume, previewHTML string) ([]byte, string, error) {
	if previewHTML == "" {
		return nil, "", ErrNoPreview
	}
	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, "", ErrExportInFlight
	}
	defer e.inFlight.Store(false)

	img, err := e.Capturer.Capture(ctx, previewHTML)
	if err != nil {
		return nil, "", err
	}

	placement := FitToPage(img.Width, img.Height, A4)
	pdf, err := e.Assembler.Assemble(ctx, img, A4, placement)
	if err != nil {
		return nil, "", err
	}

	return pdf, PDFFilename(r), nil
}

// RenderPreview renders the resume with its selected template and returns
// the preview HTML used as the capture source.
func RenderPreview(r model.Resume) (string, error) {
	doc := render.Render(r, r.TemplateStyle)
	return render.HTML(doc)
}
