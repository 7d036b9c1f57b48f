package main

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/swr"
	"github.com/gogpu/swr/internal/config"
	"github.com/gogpu/swr/scene"
)

// maxFrameTime caps dt after hitches.
const maxFrameTime = 0.1

// runWindow opens a resizable window and runs the scene loop until the
// window closes or Escape is pressed.
func runWindow(cfg *config.Config, dev *swr.Device, scenes *scene.Manager) error {
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	a := &app{
		dev:    dev,
		scenes: scenes,
		screen: newScreenSurface(dev.Width(), dev.Height()),
	}
	err := ebiten.RunGame(a)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// app drives the device from ebiten's game loop. Update renders a frame,
// Draw presents it.
type app struct {
	dev    *swr.Device
	scenes *scene.Manager
	screen *screenSurface

	last           time.Time
	cursorX        int
	cursorY        int
	cursorSeen     bool
	presentFailing bool
}

var sceneKeys = map[ebiten.Key]scene.Key{
	ebiten.KeyA: scene.KeyA,
	ebiten.KeyC: scene.KeyC,
	ebiten.KeyO: scene.KeyO,
	ebiten.KeyV: scene.KeyV,
	ebiten.KeyW: scene.KeyW,
}

var mouseButtons = map[ebiten.MouseButton]scene.MouseButton{
	ebiten.MouseButtonLeft:   scene.MouseButtonLeft,
	ebiten.MouseButtonRight:  scene.MouseButtonRight,
	ebiten.MouseButtonMiddle: scene.MouseButtonMiddle,
}

func (a *app) Update() error {
	now := time.Now()
	var dt float32
	if !a.last.IsZero() {
		dt = min(max(float32(now.Sub(a.last).Seconds()), 0), maxFrameTime)
	}
	a.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		a.switchScene(a.scenes.SwitchNext)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		a.switchScene(a.scenes.SwitchPrev)
	}

	s := a.scenes.Current()
	if s == nil {
		return nil
	}
	a.dispatchInput(s)
	renderFrame(a.dev, s, dt)
	return nil
}

func (a *app) switchScene(switchFn func(*swr.Device) bool) {
	if !switchFn(a.dev) {
		return
	}
	if err := activate(a.scenes.Current(), a.dev); err != nil {
		swr.Logger().Error("swrdemo: scene init failed", "scene", a.scenes.CurrentName(), "err", err)
	}
}

func (a *app) dispatchInput(s scene.Scene) {
	for k, sk := range sceneKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.HandleKey(sk)
		}
	}

	x, y := ebiten.CursorPosition()
	for b, sb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			s.HandleMouseButton(scene.MouseButtonEvent{Button: sb, Pressed: true, X: float32(x), Y: float32(y)})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			s.HandleMouseButton(scene.MouseButtonEvent{Button: sb, Pressed: false, X: float32(x), Y: float32(y)})
		}
	}

	if a.cursorSeen && (x != a.cursorX || y != a.cursorY) {
		s.HandleMouseMove(scene.MouseMoveEvent{
			X:  float32(x),
			Y:  float32(y),
			DX: float32(x - a.cursorX),
			DY: float32(y - a.cursorY),
		})
	}
	a.cursorX, a.cursorY, a.cursorSeen = x, y, true
}

func (a *app) Draw(screen *ebiten.Image) {
	// A dropped frame is logged by Present; only report transitions here.
	failing := a.dev.Present(a.screen) != nil
	if failing != a.presentFailing {
		a.presentFailing = failing
		if !failing {
			swr.Logger().Info("swrdemo: presenting again")
		}
	}
	screen.DrawImage(a.screen.img, nil)
}

// Layout keeps the frame at the window size, resizing the device, the
// screen surface and the scene when it changes.
func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.dev.Width(), a.dev.Height()
	}
	if outsideWidth != a.dev.Width() || outsideHeight != a.dev.Height() {
		a.screen.Close()
		a.screen = newScreenSurface(outsideWidth, outsideHeight)
		a.dev.Resize(outsideWidth, outsideHeight)
		if s := a.scenes.Current(); s != nil {
			s.OnResize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}
