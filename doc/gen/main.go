// Command gen draws every built-in geometry in a hidden window, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"

	"github.com/go-theft-auto/glshape"
	"github.com/go-theft-auto/glshape/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name      string // filename without extension
	geometry  glshape.Geometry
	wireframe bool
}

func buildScreenshots() []screenshot {
	var shots []screenshot
	for _, g := range glshape.Presets() {
		shots = append(shots,
			screenshot{name: g.Name, geometry: g},
			screenshot{name: g.Name + "_wireframe", geometry: g, wireframe: true},
		)
	}
	return shots
}

func run() error {
	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		log.WithField("file", s.name+".jpg").Info("captured")
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

// capture opens a fresh hidden context per screenshot so polygon mode and
// GL state never leak between captures.
func capture(s screenshot, outDir string) error {
	opts := []glshape.Option{
		glshape.WithTitle("screenshot-gen"),
		glshape.WithHidden(),
		glshape.WithSwapInterval(0),
		glshape.WithClearColor(mgl32.Vec4{0.2, 0.3, 0.3, 1}),
		glshape.WithGeometry(s.geometry),
	}
	if s.wireframe {
		opts = append(opts, glshape.WithWireframe())
	}

	ctx, err := glshape.Open(opengl.NewPlatform(), opengl.NewDevice(), opts...)
	if err != nil {
		return err
	}
	defer ctx.Close()

	if err := ctx.Render(); err != nil {
		return err
	}
	img, err := ctx.Capture()
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
