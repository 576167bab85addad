// renderer draws the three-sphere demo scene and writes it as a PPM.
package main

import (
	"context"
	"flag"
	"math"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"frog/camera"
	"frog/color"
	"frog/geometry"
	"frog/light"
	"frog/ppm"
	"frog/render"
	"frog/transform"
	"frog/vmath/tuple"
	"frog/world"

	"github.com/golang/glog"
	"golang.org/x/time/rate"
	"golang.org/x/xerrors"
)

var (
	width      = flag.Int("width", 1000, "Output image width in pixels")
	height     = flag.Int("height", 1000, "Output image height in pixels")
	fov        = flag.Float64("fov", math.Pi/2, "Camera field of view, in radians")
	outputFile = flag.String("output", "out.ppm", "Output PPM file")
	antialias  = flag.Int("antialias", 2, "Box filter radius applied after rendering; values below 2 disable it")
	workers    = flag.Int("workers", 0, "Concurrent row chunks; 0 means one per CPU")
	chunkRows  = flag.Int("chunk-rows", 8, "Rows per work chunk")
	progressHz = flag.Float64("progress-rate", 1.0, "Maximum progress log lines per second")
	cpuprofile = flag.String("cpu-profile", "", "write cpu profile to `file`")
)

func main() {
	flag.Parse()

	glog.Infof("flags:")
	glog.Infof("width: %d", *width)
	glog.Infof("height: %d", *height)
	glog.Infof("fov: %v", *fov)
	glog.Infof("output: %q", *outputFile)
	glog.Infof("antialias: %d", *antialias)
	glog.Infof("workers: %d", *workers)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			glog.Exitf("Could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Exitf("Could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := do(ctx); err != nil {
		pprof.StopCPUProfile()
		glog.Exitf("Error: %v", err)
	}

	glog.Flush()
}

func do(ctx context.Context) error {
	cam, w, err := demoScene(*height, *width, *fov)
	if err != nil {
		return xerrors.Errorf("while building scene: %w", err)
	}

	opts := render.Options{
		Workers:   *workers,
		ChunkRows: *chunkRows,
		Progress:  progressLogger(rate.NewLimiter(rate.Limit(*progressHz), 1)),
	}

	start := time.Now()
	out, err := render.Render(ctx, cam, w, opts)
	if err != nil {
		return xerrors.Errorf("while rendering: %w", err)
	}
	glog.Infof("Rendered %dx%d in %v", out.Width, out.Height, time.Since(start))

	if *antialias > 1 {
		out = out.Antialiased(*antialias)
	}

	if err := ppm.WriteFile(*outputFile, out); err != nil {
		return xerrors.Errorf("while writing output: %w", err)
	}
	glog.Infof("Wrote %s", *outputFile)

	return nil
}

// progressLogger logs render progress, dropping lines that come faster than
// limiter allows.  The final line is always logged.
func progressLogger(limiter *rate.Limiter) render.ProgressFunc {
	return func(done, total int) {
		if done != total && !limiter.Allow() {
			return
		}
		glog.Infof("Progress: %d/%d rows (%d%%)", done, total, 100*done/total)
	}
}

// demoScene builds three overlapping spheres lit from the lower left and
// seen from +z.
func demoScene(height, width int, fov float64) (*camera.Camera, *world.World, error) {
	spheres := []struct {
		radius   float64
		center   tuple.T
		color    color.Color
		specular float64
	}{
		{600, tuple.Point(0, 0, -200), color.New(0.5, 0.2, 0.7), 0.9},
		{180, tuple.Point(100, 100, 350), color.New(0.2, 0.3, 0.8), 0.2},
		{100, tuple.Point(-60, -60, 700), color.New(0.2, 0.8, 0.3), 0.0},
	}

	w := world.New()
	for i, s := range spheres {
		sphere, err := geometry.NewSphere(s.radius, s.center)
		if err != nil {
			return nil, nil, xerrors.Errorf("while creating sphere %d: %w", i, err)
		}
		sphere.TheMaterial.Color = s.color
		sphere.TheMaterial.Specular = s.specular
		w.Add(sphere)
	}

	l, err := light.New(color.White, tuple.Point(-400, -400, 1000))
	if err != nil {
		return nil, nil, xerrors.Errorf("while creating light: %w", err)
	}
	w.Light = l

	cam := camera.New(height, width, fov)
	view, err := transform.View(tuple.Point(0, 0, 1000), tuple.Point(0, 0, 0), tuple.Vec3(0, -1, 0))
	if err != nil {
		return nil, nil, xerrors.Errorf("while building view transform: %w", err)
	}
	cam.Transform = view

	return cam, w, nil
}
