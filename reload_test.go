package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
	"github.com/milk9111/scenelabel/motion"
	"github.com/milk9111/scenelabel/prefabs"
)

// writeScene writes the default scene with the given replacements applied
// and returns its absolute path.
func writeScene(t *testing.T, path string, replace ...string) {
	t.Helper()
	data, err := prefabs.Load(prefabs.DefaultScene)
	if err != nil {
		t.Fatalf("load default scene: %v", err)
	}
	src := string(data)
	for i := 0; i+1 < len(replace); i += 2 {
		if !strings.Contains(src, replace[i]) {
			t.Fatalf("default scene has no %q", replace[i])
		}
		src = strings.ReplaceAll(src, replace[i], replace[i+1])
	}
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
}

func newReloadGame(t *testing.T) (*Game, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	writeScene(t, path)

	g, err := newSceneGame(Options{Scene: path}, nil)
	if err != nil {
		t.Fatalf("newSceneGame: %v", err)
	}
	l, _ := ecs.Get(g.world, g.scene.Label, component.LabelComponent.Kind())
	l.Width, l.Height = 120, 50
	return g, path
}

func trackedAt(t *testing.T, g *Game, elapsed float64) mgl64.Vec3 {
	t.Helper()
	g.world.Advance(elapsed)
	g.motion.Update(g.world)
	tr, ok := ecs.Get(g.world, g.scene.Tracked, component.TransformComponent.Kind())
	if !ok {
		t.Fatal("tracked entity has no transform")
	}
	return tr.Translation
}

func TestReloadSceneAppliesChanges(t *testing.T) {
	g, path := newReloadGame(t)
	camBefore := g.spec.Camera

	writeScene(t, path,
		"text: A Cube", "text: Moved",
		"font_size: 50", "font_size: 32",
		"amplitude: [3, 1, 5]", "amplitude: [1, 2, 3]",
		"eye: [-3, 5, 8]", "eye: [10, 10, 10]",
	)
	g.reloadScene()

	l, _ := ecs.Get(g.world, g.scene.Label, component.LabelComponent.Kind())
	if l.Text != "Moved" || l.FontSize != 32 {
		t.Fatalf("label not reloaded: %+v", l)
	}
	if l.Width != 0 || l.Height != 0 {
		t.Fatalf("expected stale size reset, got %vx%v", l.Width, l.Height)
	}

	want := motion.Lissajous{
		Amplitude: mgl64.Vec3{1, 2, 3},
		Frequency: mgl64.Vec3{3.7, 12, 2.2},
		Phase:     mgl64.Vec3{0, 1.5707963267948966, 0},
	}.At(0.7)
	if got := trackedAt(t, g, 0.7); !got.ApproxEqualThreshold(want, 1e-12) {
		t.Fatalf("tracked at %v, want %v", got, want)
	}

	if g.spec.Camera != camBefore {
		t.Fatalf("reload must keep the live camera, got %+v", g.spec.Camera)
	}
}

func TestReloadSceneRejectsInvalidSpec(t *testing.T) {
	g, path := newReloadGame(t)
	specBefore := g.spec
	posBefore := trackedAt(t, g, 0.7)

	writeScene(t, path,
		"text: A Cube", "text: Broken",
		"amplitude: [3, 1, 5]", "amplitude: [9, 9, 9]",
		"far: 1000", "far: 0.01",
	)
	g.reloadScene()

	if g.spec != specBefore {
		t.Fatal("invalid spec replaced the live one")
	}
	l, _ := ecs.Get(g.world, g.scene.Label, component.LabelComponent.Kind())
	if l.Text != "A Cube" || l.Width != 120 || l.Height != 50 {
		t.Fatalf("label changed by invalid spec: %+v", l)
	}
	if got := trackedAt(t, g, 0.7); got != posBefore {
		t.Fatalf("motion changed by invalid spec: %v, want %v", got, posBefore)
	}
}

func TestPollReloadMatchesSceneName(t *testing.T) {
	g, path := newReloadGame(t)
	writeScene(t, path, "text: A Cube", "text: Polled")

	g.watcher = &prefabs.Watcher{Changes: make(chan prefabs.Change, 2), Errors: make(chan error, 1)}
	g.watcher.Changes <- prefabs.Change{Name: "other.yaml", Kind: prefabs.SceneChange}
	g.pollReload()

	l, _ := ecs.Get(g.world, g.scene.Label, component.LabelComponent.Kind())
	if l.Text != "A Cube" {
		t.Fatalf("unrelated file triggered a reload: %q", l.Text)
	}

	g.watcher.Changes <- prefabs.Change{Name: filepath.Base(path), Kind: prefabs.SceneChange}
	g.pollReload()
	if l.Text != "Polled" {
		t.Fatalf("expected reload on scene edit, got %q", l.Text)
	}
}
