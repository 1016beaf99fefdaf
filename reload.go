package main

import (
	"log"
	"path/filepath"

	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
	"github.com/milk9111/scenelabel/ecs/entity"
	"github.com/milk9111/scenelabel/prefabs"
)

// pollReload drains pending prefab changes. Only label style, mesh color,
// light and motion are re-applied; the camera keeps its live pose.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("reload: watch error: %v", err)
			}
		default:
		}

		c, ok := g.watcher.Poll()
		if !ok {
			return
		}
		switch {
		case c.Kind == prefabs.SceneChange && c.Name == filepath.Base(g.opts.Scene):
			g.reloadScene()
		case c.Kind == prefabs.ScriptChange && c.Name == filepath.Base(g.spec.Tracked.Motion.Script):
			g.reloadMotion(g.spec.Tracked.Motion)
		}
	}
}

func (g *Game) reloadScene() {
	spec, err := loadSpec(g.opts)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}

	if l, ok := ecs.Get(g.world, g.scene.Label, component.LabelComponent.Kind()); ok {
		entity.ApplyLabelSpec(l, spec.Label)
	}
	if m, ok := ecs.Get(g.world, g.scene.Tracked, component.MeshComponent.Kind()); ok {
		m.Size = spec.Tracked.Mesh.Size
		m.Color = spec.Tracked.Mesh.Color.Or(m.Color)
	}
	if pl, ok := ecs.Get(g.world, g.scene.Light, component.PointLightComponent.Kind()); ok {
		pl.Color = spec.Light.Color.Or(pl.Color)
		pl.Intensity = spec.Light.Intensity
		pl.Ambient = spec.Light.Ambient
	}
	if lt, ok := ecs.Get(g.world, g.scene.Light, component.TransformComponent.Kind()); ok {
		lt.Translation = spec.Light.Position.Vec()
	}
	g.reloadMotion(spec.Tracked.Motion)

	spec.Camera = g.spec.Camera
	g.spec = spec
	log.Printf("reload: applied %s", g.opts.Scene)
}

func (g *Game) reloadMotion(spec prefabs.MotionSpec) {
	driver, err := entity.NewDriver(spec)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	g.motion.SetDriver(driver)
}
