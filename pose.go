package main

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/milk9111/scenelabel/ecs/entity"
	"github.com/milk9111/scenelabel/prefabs"
	"golang.design/x/clipboard"
)

var errNoCamera = errors.New("pose: camera has no transform")

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyCameraPose puts the current camera pose on the clipboard as a yaml
// fragment that can replace the camera block of a scene file.
func (g *Game) copyCameraPose() {
	data, err := g.cameraPoseYAML()
	if err != nil {
		log.Printf("pose: %v", err)
		return
	}

	clipboardOnce.Do(func() { clipboardErr = clipboard.Init() })
	if clipboardErr != nil {
		log.Printf("pose: clipboard unavailable: %v", clipboardErr)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("pose: copied camera pose to clipboard")
}

func (g *Game) cameraPoseYAML() ([]byte, error) {
	pose, ok := entity.CameraPose(g.world, g.scene.Camera, g.spec.Camera)
	if !ok {
		return nil, errNoCamera
	}
	data, err := prefabs.EncodeCamera(pose)
	if err != nil {
		return nil, fmt.Errorf("encode pose: %w", err)
	}
	return data, nil
}
