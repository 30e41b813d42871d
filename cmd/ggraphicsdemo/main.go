// Command ggraphicsdemo renders a scene through the graphics.Graphics
// interface and saves it as PNG.
//
// Without -scene it draws a built-in scene:
//
//	ggraphicsdemo -output demo.png
//	ggraphicsdemo -scene shapes.yaml -width 400 -height 300 -v
package main

import (
	_ "embed"
	"flag"
	"log"
	"log/slog"
	"os"

	graphics "github.com/gogpu/gg-graphics"
	"github.com/gogpu/gg-graphics/backend"
	_ "github.com/gogpu/gg-graphics/backend/raster"
)

//go:embed default.yaml
var defaultScene []byte

func main() {
	var (
		width     = flag.Int("width", 0, "image width (default: scene width or 800)")
		height    = flag.Int("height", 0, "image height (default: scene height or 600)")
		output    = flag.String("output", "demo.png", "output file")
		scenePath = flag.String("scene", "", "YAML scene file (default: built-in scene)")
		name      = flag.String("backend", "raster", "backend name")
		verbose   = flag.Bool("v", false, "log resource creation and font substitution")
	)
	flag.Parse()

	if *verbose {
		graphics.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	w, h := size(*width, scene.Width, 800), size(*height, scene.Height, 600)
	g, err := backend.New(*name, w, h)
	if err != nil {
		log.Fatalf("Failed to create backend: %v (available: %v)", err, backend.Available())
	}

	if err := scene.Render(g); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	fb, ok := g.(backend.FileBackend)
	if !ok {
		log.Fatalf("Backend %q cannot save to a file", *name)
	}
	if err := fb.SaveToFile(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, w, h)
}

func loadScene(path string) (*Scene, error) {
	if path == "" {
		return ParseScene(defaultScene)
	}
	return LoadScene(path)
}

// size picks the first positive value.
func size(flagValue, sceneValue, fallback int) int {
	switch {
	case flagValue > 0:
		return flagValue
	case sceneValue > 0:
		return sceneValue
	}
	return fallback
}
