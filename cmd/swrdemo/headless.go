package main

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/swr"
	"github.com/gogpu/swr/internal/config"
	"github.com/gogpu/swr/scene"
	"github.com/gogpu/swr/surface"
)

// runHeadless renders the configured number of frames, presenting each to
// the configured surface backend, and writes the last frame as PNG.
func runHeadless(cfg *config.Config, dev *swr.Device, s scene.Scene) error {
	target, err := surface.Open(cfg.Headless.Surface, surface.Options{
		Width:  dev.Width(),
		Height: dev.Height(),
	})
	if err != nil {
		return err
	}
	defer target.Close()

	dt := float32(cfg.Headless.FrameTime.Duration().Seconds())
	for range cfg.Headless.Frames {
		renderFrame(dev, s, dt)
		if err := dev.Present(target); err != nil {
			return err
		}
	}

	st := dev.Stats()
	slog.Info("swrdemo: rendered",
		"frames", cfg.Headless.Frames,
		"surface", cfg.Headless.Surface,
		"triangles", st.TrianglesSubmitted,
		"culled", st.TrianglesCulled,
		"pixels", st.PixelsShaded,
	)

	img, ok := target.(*surface.ImageSurface)
	if !ok {
		img = surface.NewImageSurface(dev.Width(), dev.Height())
		defer img.Close()
		if err := dev.Present(img); err != nil {
			return err
		}
	}
	if err := img.SavePNG(cfg.Headless.Output); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Headless.Output, err)
	}
	slog.Info("swrdemo: saved", "path", cfg.Headless.Output, "width", dev.Width(), "height", dev.Height())
	return nil
}
