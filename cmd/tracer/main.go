// Command tracer runs the scene without a window and draws the tracked object
// and its label in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
	"github.com/milk9111/scenelabel/ecs/entity"
	"github.com/milk9111/scenelabel/ecs/system"
	"github.com/milk9111/scenelabel/prefabs"
	"github.com/milk9111/scenelabel/projection"
)

func main() {
	sceneName := flag.String("scene", prefabs.DefaultScene, "scene spec in prefabs/ (yaml)")
	script := flag.String("script", "", "tengo motion script, overrides the scene's motion")
	fps := flag.Int("fps", 30, "frames per second")
	duration := flag.Duration("duration", 0, "stop after this long (0 runs until q)")
	flag.Parse()

	if err := run(*sceneName, *script, *fps, *duration); err != nil {
		log.Fatal(err)
	}
}

func run(sceneName, script string, fps int, duration time.Duration) error {
	if fps <= 0 {
		return fmt.Errorf("tracer: fps must be positive, got %d", fps)
	}

	spec, err := prefabs.LoadScene(sceneName)
	if err != nil {
		return err
	}
	if script != "" {
		spec.Tracked.Motion.Script = script
	}

	t, err := newTracer(spec)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return t.loop(screen, fps, duration)
}

// loop redraws at fps until a quit key, or until duration has passed when it
// is positive.
func (t *tracer) loop(screen tcell.Screen, fps int, duration time.Duration) error {
	events := make(chan tcell.Event, 8)
	stop := make(chan struct{})
	defer close(stop)
	go pollEvents(screen, events, stop)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	start := time.Now()
	t.resize(screen.Size())
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
			case *tcell.EventResize:
				t.resize(ev.Size())
				screen.Sync()
			}
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			if duration > 0 && elapsed >= duration {
				return nil
			}
			t.step(elapsed.Seconds())
			t.draw(screen)
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or stop
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, stop <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-stop:
			return
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

type tracer struct {
	world     *ecs.World
	scene     entity.Scene
	scheduler *ecs.Scheduler
	viewports *projection.Viewports
	rows      int
}

func newTracer(spec *prefabs.SceneSpec) (*tracer, error) {
	world := ecs.NewWorld()
	scene, err := entity.BuildScene(world, spec, projection.PrimaryViewport)
	if err != nil {
		return nil, fmt.Errorf("tracer: build scene: %w", err)
	}
	driver, err := entity.NewDriver(spec.Tracked.Motion)
	if err != nil {
		return nil, fmt.Errorf("tracer: motion driver: %w", err)
	}

	t := &tracer{
		world:     world,
		scene:     scene,
		scheduler: ecs.NewScheduler(),
		viewports: projection.NewViewports(),
	}
	t.scheduler.Add(ecs.PhaseMotion, system.NewMotionSystem(scene.Tracked, driver))
	t.scheduler.Add(ecs.PhaseCamera, system.NewCameraProjectionSystem(scene.Camera, t.viewports))
	t.scheduler.Add(ecs.PhaseLayout, system.NewLabelPositionSystem(scene.Tracked, scene.Camera, scene.Label, t.viewports))
	return t, nil
}

// resize registers the terminal as the primary viewport. A cell is about
// twice as tall as it is wide, so each row counts as two vertical units.
func (t *tracer) resize(cols, rows int) {
	t.rows = rows
	t.viewports.Set(projection.PrimaryViewport, terminalViewport(cols, rows))
}

func terminalViewport(cols, rows int) projection.Size {
	return projection.Size{Width: float64(cols), Height: float64(rows * 2)}
}

func (t *tracer) step(elapsed float64) {
	if l, ok := ecs.Get(t.world, t.scene.Label, component.LabelComponent.Kind()); ok {
		l.Width, l.Height = float64(len([]rune(l.Text))), 2
	}
	t.world.Advance(elapsed)
	t.scheduler.Update(t.world)
}

// cell maps a bottom-left based viewport point to a terminal column and row.
func cell(x, y float64, rows int) (col, row int) {
	return int(x), rows - 1 - int(y/2)
}

func (t *tracer) draw(screen tcell.Screen) {
	screen.Clear()
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	bright := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	status := "hidden"
	if p, ok := t.objectScreen(); ok {
		col, row := cell(p[0], p[1], t.rows)
		screen.SetContent(col, row, '■', nil, dim)
	}
	if l, ok := ecs.Get(t.world, t.scene.Label, component.LabelComponent.Kind()); ok && l.Visible {
		col, row := cell(l.Left, l.Bottom+l.Height/2, t.rows)
		for i, r := range []rune(l.Text) {
			screen.SetContent(col+i, row, r, nil, bright)
		}
		status = fmt.Sprintf("left=%.1f bottom=%.1f", l.Left, l.Bottom)
	}

	f := t.world.Frame()
	line := fmt.Sprintf("t=%6.2fs frame=%d label %s  (q to quit)", f.Elapsed, f.Index, status)
	for i, r := range []rune(line) {
		screen.SetContent(i, 0, r, nil, dim)
	}
	screen.Show()
}

func (t *tracer) objectScreen() (p [2]float64, ok bool) {
	tr, ok := ecs.Get(t.world, t.scene.Tracked, component.TransformComponent.Kind())
	if !ok {
		return p, false
	}
	cam, ok := ecs.Get(t.world, t.scene.Camera, component.Camera3DComponent.Kind())
	if !ok {
		return p, false
	}
	camT, ok := ecs.Get(t.world, t.scene.Camera, component.TransformComponent.Kind())
	if !ok {
		return p, false
	}
	v, ok := projection.WorldToScreen(tr.Translation, cam.Projection, camT.Matrix(), cam.Viewport, t.viewports)
	return [2]float64(v), ok
}
