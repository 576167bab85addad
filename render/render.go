// Package render turns a camera and a world into a canvas.
//
// ToCanvas is the plain sequential loop.  Render splits the image into row
// chunks and renders them concurrently; its output is identical to
// ToCanvas for the same inputs.
package render

import (
	"context"
	"runtime"
	"sync"
	"time"

	"frog/camera"
	"frog/canvas"
	"frog/world"

	"github.com/golang/glog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/xerrors"
)

// ProgressFunc is told how many rows are finished out of the total.  Calls
// are serialized.
type ProgressFunc func(done, total int)

type Options struct {
	// Number of chunks rendered at once.  Defaults to runtime.NumCPU().
	Workers int

	// Rows per chunk.  Defaults to 1.
	ChunkRows int

	Progress ProgressFunc
}

// ToCanvas renders every pixel row-major, top to bottom.
func ToCanvas(cam *camera.Camera, w *world.World) (*canvas.Canvas, error) {
	out := canvas.New(cam.Width, cam.Height)
	if err := renderRows(context.Background(), cam, w, out, 0); err != nil {
		return nil, err
	}
	return out, nil
}

// renderRows fills dst, whose row 0 is image row y0.
func renderRows(ctx context.Context, cam *camera.Camera, w *world.World, dst *canvas.Canvas, y0 int) error {
	for y := 0; y < dst.Height; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < dst.Width; x++ {
			r, err := cam.RayAtPixel(x, y0+y)
			if err != nil {
				return xerrors.Errorf("while casting ray for pixel (%d, %d): %w", x, y0+y, err)
			}
			col, err := w.ColorAt(r)
			if err != nil {
				return xerrors.Errorf("while coloring pixel (%d, %d): %w", x, y0+y, err)
			}
			if err := dst.Set(x, y, col); err != nil {
				return xerrors.Errorf("while storing pixel (%d, %d): %w", x, y0+y, err)
			}
		}
	}
	return nil
}

// Render crushes the world and the camera, then renders row chunks
// concurrently.  Neither may be mutated until Render returns.
func Render(ctx context.Context, cam *camera.Camera, w *world.World, opts Options) (*canvas.Canvas, error) {
	tracer := otel.Tracer("frog/render")
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Render")
	defer span.End()

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	chunkRows := opts.ChunkRows
	if chunkRows <= 0 {
		chunkRows = 1
	}

	span.SetAttributes(
		attribute.Int64("width", int64(cam.Width)),
		attribute.Int64("height", int64(cam.Height)),
		attribute.Int64("workers", int64(workers)),
		attribute.Int64("objects", int64(len(w.Objects))),
	)

	fail := func(err error) (*canvas.Canvas, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if err := w.Crush(); err != nil {
		return fail(xerrors.Errorf("while crushing world: %w", err))
	}
	if err := cam.Crush(); err != nil {
		return fail(xerrors.Errorf("while crushing camera: %w", err))
	}

	start := time.Now()
	out := canvas.New(cam.Width, cam.Height)

	var progressMu sync.Mutex
	done := 0
	report := func(rows int) {
		if opts.Progress == nil {
			return
		}
		progressMu.Lock()
		defer progressMu.Unlock()
		done += rows
		opts.Progress(done, cam.Height)
	}

	// Use errgroup and semaphore to limit concurrency.
	eg, egCtx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(workers))

	for y0 := 0; y0 < cam.Height; y0 += chunkRows {
		y0 := y0 // per-iteration copy (Go 1.22 loopvar semantics)
		y1 := y0 + chunkRows
		if y1 > cam.Height {
			y1 = cam.Height
		}

		if err := sem.Acquire(egCtx, 1); err != nil {
			// Either a chunk failed or ctx is done; both are reported below.
			break
		}

		eg.Go(func() error {
			defer sem.Release(1)

			chunkCtx, chunkSpan := tracer.Start(egCtx, "Render.chunk")
			defer chunkSpan.End()
			chunkSpan.SetAttributes(attribute.Int64("y0", int64(y0)), attribute.Int64("y1", int64(y1)))

			view, err := out.Rows(y0, y1)
			if err != nil {
				return xerrors.Errorf("while slicing rows [%d, %d): %w", y0, y1, err)
			}
			if err := renderRows(chunkCtx, cam, w, view, y0); err != nil {
				chunkSpan.SetStatus(codes.Error, err.Error())
				return xerrors.Errorf("while rendering rows [%d, %d): %w", y0, y1, err)
			}

			report(y1 - y0)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return fail(xerrors.Errorf("while waiting for completion of errgroup: %w", err))
	}
	if err := ctx.Err(); err != nil {
		return fail(xerrors.Errorf("while rendering: %w", err))
	}

	glog.V(1).Infof("Rendered %dx%d with %d workers in %v", cam.Width, cam.Height, workers, time.Since(start))
	span.SetStatus(codes.Ok, "")
	return out, nil
}
