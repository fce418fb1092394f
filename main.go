package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"planetwalk/internal/preview"
	"planetwalk/internal/render"
	"planetwalk/internal/sim"
)

const title = "Planetwalk"

func main() {
	runtime.LockOSThread()

	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	stars := flag.Int("stars", 400, "number of stars in the sky shell")
	seed := flag.Int64("seed", 1, "star field seed")
	snapshot := flag.String("snapshot", "", "write one frame to this PNG and exit (no window)")
	flag.Parse()

	if *snapshot != "" {
		if err := writeSnapshot(*snapshot, *width, *height, *stars, *seed); err != nil {
			log.Fatalln("snapshot failed:", err)
		}
		return
	}

	world := sim.NewWorld()
	input := sim.NewInputState()

	r, err := render.New(render.Config{
		Width:    *width,
		Height:   *height,
		Title:    title,
		Stars:    *stars,
		StarSeed: *seed,
	}, input)
	if err != nil {
		log.Fatalln("failed to start renderer:", err)
	}
	defer r.Terminate()

	lastFpsTime := glfw.GetTime()
	frameCount := 0

	// One tick per displayed frame: sample input, advance the model, draw.
	for !r.ShouldClose() {
		r.PollEvents()
		world.Step(input)
		r.Draw(world)

		// FPS Counter Update (every 1 second)
		frameCount++
		if now := glfw.GetTime(); now-lastFpsTime >= 1.0 {
			r.SetTitle(fmt.Sprintf("%s | FPS: %d", title, frameCount))
			frameCount = 0
			lastFpsTime = now
		}
	}
}

func writeSnapshot(path string, width, height, stars int, seed int64) error {
	world := sim.NewWorld()
	img := preview.Render(world, preview.Options{
		Width:    width,
		Height:   height,
		Stars:    stars,
		StarSeed: seed,
	})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %v", path, err)
	}
	return nil
}
