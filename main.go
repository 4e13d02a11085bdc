package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	profile := flag.String("profile", "default.yaml", "binding profile in prefabs/ (.yaml, .yml or .toml)")
	watch := flag.Bool("watch", false, "reload the profile and hook scripts when they change on disk")
	debug := flag.Bool("debug", false, "log action notifications and show the binding table")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("actionmap")

	game, err := NewGame(Options{Profile: *profile, Watch: *watch, Debug: *debug})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
