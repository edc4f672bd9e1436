// Package provebilde renders the Norwegian television test card
// ("prøvebilde") with a live clock, editable labels and an optional CRT
// style shader pipeline.
//
// # Overview
//
// The card is drawn at a logical resolution of 768x576 onto a
// [canvas.Context]. Scale the context to fit any surface:
//
//	dc := canvas.NewContext(w, h, canvas.WithTransform(canvas.Scale(s, s)))
//	card := provebilde.New(dc, provebilde.DefaultOptions(),
//	    provebilde.WithDevice(dev),
//	    provebilde.WithScheduler(lp))
//	if err := card.Start(); err != nil {
//	    return err
//	}
//
// While running, the card redraws itself every frame interval from the
// scheduler's goroutine. [TestCard.Output] returns the latest picture.
//
// # Filters
//
// [Options.FX] selects up to three shader passes: brightness, saturation
// and contrast; a bulge/pinch lens warp; and a vignette. They run on an
// [fx.Device], either the OpenGL device in fx/opengl or the software
// device in fx/soft. Without a device the card renders unfiltered.
//
// # Controls
//
// [Controls] implement the keyboard contract: arrows tune the picture and
// the clock, typed characters edit the header and footer labels.
//
// # Logging
//
// Nothing is logged by default. [SetLogger] enables log/slog output for
// this package, canvas and fx.
package provebilde
