package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	// captureScale upscales the capture for print quality.
	captureScale = 2.0

	defaultCaptureTimeout = 60 * time.Second
)

// ChromeCapturer captures rendered preview HTML as a PNG raster using a
// headless browser. Requires Chrome or Chromium on the host.
type ChromeCapturer struct {
	Timeout time.Duration
}

// Capture renders the HTML and takes a full-page screenshot at 2x scale on
// an opaque white background.
func (c *ChromeCapturer) Capture(ctx context.Context, previewHTML string) (RasterImage, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultCaptureTimeout
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, headlessOptions()...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(0, 0, chromedp.EmulateScale(captureScale)),
		chromedp.Navigate("about:blank"),
		setDocumentContent(previewHTML),
		chromedp.WaitReady("#resume-preview", chromedp.ByID),
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return RasterImage{}, fmt.Errorf("capture preview: %w", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(buf))
	if err != nil {
		return RasterImage{}, fmt.Errorf("decode capture: %w", err)
	}

	return RasterImage{PNG: buf, Width: cfg.Width, Height: cfg.Height}, nil
}

// ChromeAssembler lays the captured raster onto a fixed-size page and prints
// it to PDF through the browser's print pipeline.
type ChromeAssembler struct {
	Timeout time.Duration
}

// Assemble embeds the raster at the given placement and prints an A4 page.
func (a *ChromeAssembler) Assemble(ctx context.Context, img RasterImage, pageSize PageSize, placement Placement) ([]byte, error) {
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = defaultCaptureTimeout
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, headlessOptions()...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	html := assemblyPage(img, placement)

	printParams := page.PrintToPDF().
		WithPrintBackground(true).
		WithPaperWidth(pageSize.WidthMM / 25.4).
		WithPaperHeight(pageSize.HeightMM / 25.4).
		WithMarginTop(0).
		WithMarginBottom(0).
		WithMarginLeft(0).
		WithMarginRight(0)

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		setDocumentContent(html),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = printParams.Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}

	return pdf, nil
}

func headlessOptions() []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
}

func setDocumentContent(html string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		frameTree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
	}
}

// assemblyPage positions the captured image on an otherwise blank white page
// at the computed placement.
func assemblyPage(img RasterImage, placement Placement) string {
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(img.PNG)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><style>
  html, body { margin: 0; padding: 0; background: #ffffff; }
  img { position: absolute; left: %.3fmm; top: %.3fmm; width: %.3fmm; height: %.3fmm; }
</style></head>
<body><img src="%s"></body>
</html>`,
		placement.XOffsetMM, placement.YOffsetMM,
		placement.WidthMM, placement.HeightMM,
		encoded,
	)
}
