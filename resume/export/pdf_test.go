package export

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/model"
)

type fakeCapturer struct {
	img     RasterImage
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeCapturer) Capture(ctx context.Context, previewHTML string) (RasterImage, error) {
	if f.started != nil {
		close(f.started)
		f.started = nil
	}
	if f.release != nil {
		<-f.release
	}
	return f.img, f.err
}

type fakeAssembler struct {
	out []byte
	err error

	gotPage      PageSize
	gotPlacement Placement
}

func (f *fakeAssembler) Assemble(ctx context.Context, img RasterImage, page PageSize, placement Placement) ([]byte, error) {
	f.gotPage = page
	f.gotPlacement = placement
	return f.out, f.err
}

func TestFitToPage(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		want Placement
	}{
		{
			// Taller than A4: height pinned, width scaled down and centered.
			name: "tall_portrait",
			w:    1000, h: 2000,
			want: Placement{WidthMM: 148.5, HeightMM: 297, XOffsetMM: 30.75, YOffsetMM: 0},
		},
		{
			// Wider than A4: width pinned, height scaled down and centered.
			name: "wide_landscape",
			w:    2000, h: 1000,
			want: Placement{WidthMM: 210, HeightMM: 105, XOffsetMM: 0, YOffsetMM: 96},
		},
		{
			name: "exact_a4_ratio",
			w:    2100, h: 2970,
			want: Placement{WidthMM: 210, HeightMM: 297},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FitToPage(tc.w, tc.h, A4)
			assert.InDelta(t, tc.want.WidthMM, got.WidthMM, 0.01)
			assert.InDelta(t, tc.want.HeightMM, got.HeightMM, 0.01)
			assert.InDelta(t, tc.want.XOffsetMM, got.XOffsetMM, 0.01)
			assert.InDelta(t, tc.want.YOffsetMM, got.YOffsetMM, 0.01)
		})
	}
}

func TestFitToPageNeverExceedsPageAndPreservesRatio(t *testing.T) {
	dims := []struct{ w, h int }{{100, 100}, {3000, 500}, {500, 3000}, {1653, 2339}}
	for _, d := range dims {
		got := FitToPage(d.w, d.h, A4)
		require.LessOrEqual(t, got.WidthMM, A4.WidthMM+0.001)
		require.LessOrEqual(t, got.HeightMM, A4.HeightMM+0.001)

		wantRatio := float64(d.w) / float64(d.h)
		gotRatio := got.WidthMM / got.HeightMM
		require.InDelta(t, wantRatio, gotRatio, 0.001)

		require.InDelta(t, (A4.WidthMM-got.WidthMM)/2, got.XOffsetMM, 0.001)
		require.InDelta(t, (A4.HeightMM-got.HeightMM)/2, got.YOffsetMM, 0.001)
	}
}

func TestExportPDFRequiresPreview(t *testing.T) {
	e := &PDFExporter{Capturer: &fakeCapturer{}, Assembler: &fakeAssembler{}}

	_, _, err := e.ExportPDF(context.Background(), model.Demo(), "")
	require.ErrorIs(t, err, ErrNoPreview)
}

func TestExportPDFHappyPath(t *testing.T) {
	capturer := &fakeCapturer{img: RasterImage{PNG: []byte("png"), Width: 1000, Height: 2000}}
	assembler := &fakeAssembler{out: []byte("%PDF-fake")}
	e := &PDFExporter{Capturer: capturer, Assembler: assembler}

	pdf, filename, err := e.ExportPDF(context.Background(), model.Demo(), "<html>preview</html>")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "Avery_Johnson.pdf", filename)
	assert.Equal(t, A4, assembler.gotPage)
	assert.True(t, math.Abs(assembler.gotPlacement.HeightMM-297) < 0.01)
}

func TestExportPDFRejectsOverlappingCalls(t *testing.T) {
	capturer := &fakeCapturer{
		img:     RasterImage{PNG: []byte("png"), Width: 100, Height: 100},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	e := &PDFExporter{Capturer: capturer, Assembler: &fakeAssembler{out: []byte("pdf")}}

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _, firstErr = e.ExportPDF(context.Background(), model.Demo(), "<html>preview</html>")
	}()

	<-capturer.started
	_, _, err := e.ExportPDF(context.Background(), model.Demo(), "<html>preview</html>")
	require.ErrorIs(t, err, ErrExportInFlight)

	close(capturer.release)
	wg.Wait()
	require.NoError(t, firstErr)

	// After the first export finishes the guard is released.
	_, _, err = e.ExportPDF(context.Background(), model.Demo(), "<html>preview</html>")
	require.NoError(t, err)
}

func TestExportPDFCaptureFailurePropagates(t *testing.T) {
	wantErr := errors.New("browser crashed")
	e := &PDFExporter{
		Capturer:  &fakeCapturer{err: wantErr},
		Assembler: &fakeAssembler{},
	}

	_, _, err := e.ExportPDF(context.Background(), model.Demo(), "<html>preview</html>")
	require.ErrorIs(t, err, wantErr)

	// A failed export must release the in-flight guard.
	e.Capturer = &fakeCapturer{img: RasterImage{Width: 10, Height: 10}}
	_, _, err = e.ExportPDF(context.Background(), model.Demo(), "<html>preview</html>")
	require.NoError(t, err)
}
