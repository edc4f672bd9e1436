package main

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/provebilde"
	"github.com/gogpu/provebilde/canvas"
	"github.com/gogpu/provebilde/fx"
	"github.com/gogpu/provebilde/fx/opengl"
	"github.com/gogpu/provebilde/internal/loop"
	"github.com/gogpu/provebilde/layout"
)

// resizeQuiet is how long the window must keep its size before the card is
// rebuilt for it.
const resizeQuiet = 100 * time.Millisecond

type app struct {
	win  *glfw.Window
	dev  *opengl.Device
	lp   *loop.Loop
	opts *provebilde.Options

	card     *provebilde.TestCard
	controls *provebilde.Controls
	focus    provebilde.TextField
	blit     *fx.Renderer
	present  loop.Timer
	restart  *loop.Debouncer

	windowed [4]int // x, y, width, height before going fullscreen
}

func runWindow(opts *provebilde.Options, width, height int) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	win, err := glfw.CreateWindow(width, height, "Prøvebilde", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	fbW, fbH := win.GetFramebufferSize()
	dev, err := opengl.New(fbW, fbH)
	if err != nil {
		return err
	}
	provebilde.Logger().Info("provebilde: OpenGL ready", "version", dev.Version())

	a := &app{win: win, dev: dev, lp: loop.New(nil), opts: opts}
	a.restart = loop.Debounce(a.lp, resizeQuiet, func() {
		if err := a.start(); err != nil {
			provebilde.Logger().Error("provebilde: restart failed", "err", err)
			win.SetShouldClose(true)
		}
	})
	a.bind()
	if err := a.start(); err != nil {
		return err
	}
	defer a.close()

	for !win.ShouldClose() {
		a.lp.RunDue()
		timeout := resizeQuiet.Seconds()
		if d, ok := a.lp.NextDeadline(); ok {
			timeout = math.Max(time.Until(d).Seconds(), 0)
		}
		glfw.WaitEventsTimeout(timeout)
	}
	return nil
}

// start sizes the picture to the framebuffer, keeping the 4:3 aspect, and
// starts a new card.
func (a *app) start() error {
	a.close()

	fbW, fbH := a.win.GetFramebufferSize()
	scale := math.Min(float64(fbW)/layout.FrameWidth, float64(fbH)/layout.FrameHeight)
	w := max(int(layout.FrameWidth*scale), 1)
	h := max(int(layout.FrameHeight*scale), 1)
	a.dev.SetDrawingBuffer((fbW-w)/2, (fbH-h)/2, w, h)
	a.dev.ClearFramebuffer(0, 0, 0, 1)

	dc := canvas.NewContext(w, h, canvas.WithTransform(canvas.Scale(scale, scale)))
	a.card = provebilde.New(dc, a.opts,
		provebilde.WithDevice(a.dev),
		provebilde.WithScheduler(a.lp))
	a.controls = provebilde.NewControls(a.card, a.lp)
	if a.focus != a.controls.Focus() {
		a.controls.FocusNext()
	}
	if err := a.card.Start(); err != nil {
		return err
	}

	if !a.card.Filtered() {
		blit, err := fx.NewRenderer(a.dev)
		if err != nil {
			return err
		}
		if err := blit.Prepare(); err != nil {
			blit.Close()
			return err
		}
		a.blit = blit
	}
	a.show()
	a.present = a.lp.Every(provebilde.DefaultFrameInterval, a.show)
	provebilde.Logger().Debug("provebilde: window started", "width", w, "height", h, "scale", scale)
	return nil
}

// show puts the latest frame on screen. Filtered frames are already in the
// framebuffer after the last pass.
func (a *app) show() {
	if a.blit != nil {
		if err := a.blit.RenderImage(a.card.Output()); err != nil {
			provebilde.Logger().Warn("provebilde: present failed", "err", err)
			return
		}
	}
	a.win.SwapBuffers()
}

func (a *app) close() {
	if a.present != nil {
		a.present.Stop()
		a.present = nil
	}
	if a.blit != nil {
		a.blit.Close()
		a.blit = nil
	}
	if a.card != nil {
		a.focus = a.controls.Focus()
		a.card.Close()
		a.card = nil
	}
}

func (a *app) bind() {
	a.win.SetFramebufferSizeCallback(func(_ *glfw.Window, _, _ int) {
		a.restart.Call()
	})
	a.win.SetRefreshCallback(func(_ *glfw.Window) {
		if a.card != nil {
			a.show()
		}
	})
	a.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if a.card == nil {
			return
		}
		if !focused {
			a.card.Stop()
			return
		}
		if err := a.card.Start(); err != nil {
			provebilde.Logger().Error("provebilde: resume failed", "err", err)
		}
	})
	a.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft && action == glfw.Press {
			a.toggleFullscreen()
		}
	})
	a.win.SetCharCallback(func(_ *glfw.Window, r rune) {
		if a.controls != nil {
			a.controls.Type(r)
		}
	})
	a.win.SetKeyCallback(a.onKey)
}

func (a *app) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release || a.controls == nil {
		return
	}
	c := a.controls
	ctrl := mods&glfw.ModControl != 0
	shift := mods&glfw.ModShift != 0
	switch key {
	case glfw.KeyRight:
		c.AdjustPicture(1, ctrl, shift)
	case glfw.KeyLeft:
		c.AdjustPicture(-1, ctrl, shift)
	case glfw.KeyUp:
		c.AdjustWarp(1)
	case glfw.KeyDown:
		c.AdjustWarp(-1)
	case glfw.KeyPageUp:
		c.ShiftDays(1)
	case glfw.KeyPageDown:
		c.ShiftDays(-1)
	case glfw.KeyF5:
		c.AdjustVignette(-1, 0)
	case glfw.KeyF6:
		c.AdjustVignette(1, 0)
	case glfw.KeyF7:
		c.AdjustVignette(0, -1)
	case glfw.KeyF8:
		c.AdjustVignette(0, 1)
	case glfw.KeyTab:
		c.FocusNext()
	case glfw.KeyBackspace:
		c.Backspace()
	case glfw.KeyDelete:
		c.Delete()
	case glfw.KeyF11:
		a.toggleFullscreen()
	case glfw.KeyEscape:
		a.win.SetShouldClose(true)
	}
}

func (a *app) toggleFullscreen() {
	if a.win.GetMonitor() != nil {
		w := a.windowed
		a.win.SetMonitor(nil, w[0], w[1], w[2], w[3], 0)
		return
	}
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return
	}
	x, y := a.win.GetPos()
	w, h := a.win.GetSize()
	a.windowed = [4]int{x, y, w, h}
	mode := monitor.GetVideoMode()
	a.win.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}
