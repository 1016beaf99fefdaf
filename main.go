package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/scenelabel/common"
	"github.com/milk9111/scenelabel/prefabs"
)

func main() {
	scene := flag.String("scene", prefabs.DefaultScene, "scene spec in prefabs/ or an absolute path (yaml)")
	script := flag.String("script", "", "tengo motion script in prefabs/scripts/, overrides the scene's motion")
	fixedCamera := flag.Bool("fixed-camera", false, "disable fly camera controls")
	debug := flag.Bool("debug", false, "show frame and label diagnostics")
	watch := flag.Bool("watch", false, "reload prefabs/ when files change on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("scenelabel")

	game, err := NewGame(Options{
		Scene:       *scene,
		Script:      *script,
		FixedCamera: *fixedCamera,
		Debug:       *debug,
		Watch:       *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
