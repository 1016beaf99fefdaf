package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/scenelabel/common"
	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
	"github.com/milk9111/scenelabel/ecs/entity"
	"github.com/milk9111/scenelabel/ecs/system"
	"github.com/milk9111/scenelabel/prefabs"
	"github.com/milk9111/scenelabel/projection"
	"github.com/milk9111/scenelabel/render"
)

type Options struct {
	Scene       string
	Script      string
	FixedCamera bool
	Debug       bool
	Watch       bool
}

type Game struct {
	frames int
	ticks  uint64
	opts   Options

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	world     *ecs.World
	scheduler *ecs.Scheduler
	scene     entity.Scene
	spec      *prefabs.SceneSpec
	motion    *system.MotionSystem
	viewports *projection.Viewports
	renderer  *render.Renderer
	watcher   *prefabs.Watcher

	screenshotPending bool
}

func NewGame(opts Options) (*Game, error) {
	g, err := newSceneGame(opts, NewInputSystem())
	if err != nil {
		return nil, err
	}

	g.renderer, err = render.NewRenderer()
	if err != nil {
		return nil, err
	}

	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		dirs := []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")}
		if filepath.IsAbs(opts.Scene) {
			dirs = append(dirs, filepath.Dir(opts.Scene))
		}
		w, err := prefabs.NewWatcherFor(dirs...)
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// newSceneGame builds the world and its systems. input runs first in the
// input phase and may be nil when nothing samples devices.
func newSceneGame(opts Options, input ecs.System) (*Game, error) {
	spec, err := loadSpec(opts)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	scene, err := entity.BuildScene(world, spec, projection.PrimaryViewport)
	if err != nil {
		return nil, fmt.Errorf("game: build scene: %w", err)
	}

	driver, err := entity.NewDriver(spec.Tracked.Motion)
	if err != nil {
		return nil, fmt.Errorf("game: motion driver: %w", err)
	}

	g := &Game{
		opts:      opts,
		world:     world,
		scene:     scene,
		spec:      spec,
		motion:    system.NewMotionSystem(scene.Tracked, driver),
		viewports: projection.NewViewports(),
	}

	g.scheduler = ecs.NewScheduler()
	g.scheduler.Add(ecs.PhaseInput, input)
	g.scheduler.Add(ecs.PhaseInput, system.NewFlyCameraSystem(scene.Camera))
	g.scheduler.Add(ecs.PhaseMotion, g.motion)
	g.scheduler.Add(ecs.PhaseCamera, system.NewCameraProjectionSystem(scene.Camera, g.viewports))
	g.scheduler.Add(ecs.PhaseLayout, system.NewLabelPositionSystem(scene.Tracked, scene.Camera, scene.Label, g.viewports))

	return g, nil
}

func loadSpec(opts Options) (*prefabs.SceneSpec, error) {
	spec, err := prefabs.LoadScene(opts.Scene)
	if err != nil {
		return nil, err
	}
	if opts.Script != "" {
		spec.Tracked.Motion.Script = opts.Script
	}
	if opts.FixedCamera {
		spec.Camera.Fly.Enabled = false
	}
	return spec, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshotPending = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyCameraPose()
	}
	g.pollReload()

	// elapsed time only advances while unpaused
	g.ticks++
	g.world.Advance(float64(g.ticks) / float64(ebiten.TPS()))
	g.scheduler.Update(g.world)

	return nil
}

func (g *Game) viewportSize() projection.Size {
	if s, ok := g.viewports.Size(projection.PrimaryViewport); ok {
		return s
	}
	return projection.Size{Width: common.BaseWidth, Height: common.BaseHeight}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world, g.scene, g.viewportSize())

	if g.opts.Debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.screenshotPending {
		g.screenshotPending = false
		g.saveScreenshot(screen)
	}
}

func (g *Game) debugText() string {
	f := g.world.Frame()
	s := fmt.Sprintf("Frames: %d    FPS: %.2f    t=%.2fs", g.frames, ebiten.ActualFPS(), f.Elapsed)
	if t, ok := ecs.Get(g.world, g.scene.Tracked, component.TransformComponent.Kind()); ok {
		p := t.Translation
		s += fmt.Sprintf("\nobject: (%.2f, %.2f, %.2f)", p.X(), p.Y(), p.Z())
	}
	if l, ok := ecs.Get(g.world, g.scene.Label, component.LabelComponent.Kind()); ok {
		s += fmt.Sprintf("\nlabel: left=%.1f bottom=%.1f size=%.0fx%.0f visible=%v", l.Left, l.Bottom, l.Width, l.Height, l.Visible)
	}
	return s
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.viewports.Set(projection.PrimaryViewport, projection.Size{Width: common.BaseWidth, Height: common.BaseHeight})
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
