// Command swrdemo runs the swr demo scenes in a window, or renders them
// headless to a PNG file.
//
// Keys: Left/Right switch scenes, Escape quits. The scenes add their own
// toggles (W wireframe, C cull, V viewport, A animation, O winding).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/swr"
	"github.com/gogpu/swr/internal/config"
	"github.com/gogpu/swr/scene"
	"github.com/gogpu/swr/surface"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		sceneName  = flag.String("scene", "", "initial scene (Triangle, Cube)")
		width      = flag.Int("width", 0, "frame width")
		height     = flag.Int("height", 0, "frame height")
		headless   = flag.Bool("headless", false, "render without a window and write a PNG")
		frames     = flag.Int("frames", 0, "frames to render in headless mode")
		output     = flag.String("output", "", "PNG output file in headless mode")
		surfaceArg = flag.String("surface", "", "surface backend in headless mode")
		logLevel   = flag.String("log-level", "", "log level (debug, info, warn, error)")
		listSurf   = flag.Bool("list-surfaces", false, "print the surface backends and exit")
	)
	flag.Parse()

	if *listSurf {
		for _, b := range surface.Backends() {
			fmt.Println(b.Name, b.Formats)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}

	// Flags override the file only when given.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneName
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "frames":
			cfg.Headless.Frames = *frames
		case "output":
			cfg.Headless.Output = *output
		case "surface":
			cfg.Headless.Surface = *surfaceArg
		case "log-level":
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(*logLevel)); err != nil {
				fatal(fmt.Errorf("-log-level: %w", err))
			}
			cfg.Log.Level = config.Level(lvl)
		}
	})
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.Level.Level()}))
	slog.SetDefault(logger)
	swr.SetLogger(logger)

	dev := swr.New(cfg.Window.Width, cfg.Window.Height,
		swr.WithConstantBufferSlots(cfg.Device.ConstantBufferSlots))

	scenes := scene.NewManager()
	scene.RegisterBuiltin(scenes)
	if !scenes.SetCurrent(cfg.Scene, dev) {
		fatal(fmt.Errorf("unknown scene %q, have %v", cfg.Scene, scenes.Names()))
	}
	if err := activate(scenes.Current(), dev); err != nil {
		fatal(err)
	}

	if *headless {
		err = runHeadless(cfg, dev, scenes.Current())
	} else {
		err = runWindow(cfg, dev, scenes)
	}
	if err != nil {
		fatal(err)
	}
}

// activate initializes a freshly created scene for the current frame size.
func activate(s scene.Scene, dev *swr.Device) error {
	if err := s.Init(); err != nil {
		return err
	}
	s.OnResize(dev.Width(), dev.Height())
	return nil
}

// renderFrame runs one frame of s into the device buffers.
func renderFrame(dev *swr.Device, s scene.Scene, dt float32) {
	dev.Clear()
	s.PrepareFrame(dt)
	s.RenderFrame()
	s.EndFrame()
}

func fatal(err error) {
	slog.Error("swrdemo: " + err.Error())
	os.Exit(1)
}
