// Command provebilde shows the test card in a window, or renders a single
// frame to a PNG file with -png.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/provebilde"
	"github.com/gogpu/provebilde/canvas"
	"github.com/gogpu/provebilde/fx/soft"
	"github.com/gogpu/provebilde/layout"
)

func init() {
	// GLFW and GL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		width       = flag.Int("width", layout.FrameWidth, "window or image width")
		height      = flag.Int("height", layout.FrameHeight, "window or image height")
		header      = flag.String("header", "jasMIN", "header label")
		footer      = flag.String("footer", "Retro TV", "footer label")
		date        = flag.String("date", "", "start the clock at `YYYY-MM-DDTHH:MM:SS` instead of now")
		noDate      = flag.Bool("no-date", false, "hide the date")
		noTime      = flag.Bool("no-time", false, "hide the time")
		noFX        = flag.Bool("no-fx", false, "disable the shader passes")
		noBlur      = flag.Bool("no-blur", false, "draw hard edges")
		noSmoothing = flag.Bool("no-smoothing", false, "disable image smoothing")
		pngOut      = flag.String("png", "", "render one frame to this PNG file and exit")
		verbose     = flag.Bool("v", false, "verbose logging")
		stats       = flag.Bool("statsview", false, "serve runtime statistics over HTTP")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	provebilde.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if *stats {
		launchStats()
	}

	opts := provebilde.DefaultOptions()
	opts.HeaderText = *header
	opts.FooterText = *footer
	opts.ShowDate = !*noDate
	opts.ShowTime = !*noTime
	opts.BlurredEdgesDisabled = *noBlur
	opts.ImageSmoothingDisabled = *noSmoothing
	if *noFX {
		opts.FX = nil
	}
	if *date != "" {
		t, err := time.ParseInLocation("2006-01-02T15:04:05", *date, time.Local)
		if err != nil {
			log.Fatalf("Invalid -date: %v", err)
		}
		opts.Date = t
	}

	if *pngOut != "" {
		if err := snapshot(opts, *width, *height, *pngOut); err != nil {
			log.Fatal(err)
		}
		log.Printf("Test card saved to %s (%dx%d)\n", *pngOut, *width, *height)
		return
	}

	if err := runWindow(opts, *width, *height); err != nil {
		log.Fatal(err)
	}
}

// snapshot renders one frame on the software device at the logical
// resolution and scales it to width x height.
func snapshot(opts *provebilde.Options, width, height int, path string) error {
	dc := canvas.NewContext(layout.FrameWidth, layout.FrameHeight)
	card := provebilde.New(dc, opts,
		provebilde.WithDevice(soft.New(layout.FrameWidth, layout.FrameHeight)))
	defer card.Close()
	if err := card.Start(); err != nil {
		return err
	}

	var scaler xdraw.Scaler = xdraw.ApproxBiLinear
	if opts.ImageSmoothingDisabled {
		scaler = xdraw.NearestNeighbor
	}
	src := card.Output()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
