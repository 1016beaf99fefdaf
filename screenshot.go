package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/hajimehoshi/ebiten/v2"
)

const screenshotDir = "screenshots"

// saveScreenshot copies the frame synchronously and encodes it off the frame loop.
func (g *Game) saveScreenshot(screen *ebiten.Image) {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)

	name := filepath.Join(screenshotDir, fmt.Sprintf("scenelabel-%s.webp", time.Now().Format("20060102-150405.000")))
	go func() {
		if err := writeWebP(name, img); err != nil {
			log.Printf("screenshot: %v", err)
			return
		}
		log.Printf("screenshot: saved %s", name)
	}()
}

func writeWebP(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
