package main

import (
	"errors"
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mischieflink/common"
	"github.com/milk9111/mischieflink/level"
	"github.com/milk9111/mischieflink/prefabs"
)

func main() {
	configName := flag.String("level", level.DefaultConfigName, "level config in prefabs/ (on-disk copy wins over the embedded one)")
	debug := flag.Bool("debug", false, "draw wireframes and collider outlines")
	watch := flag.Bool("watch", false, "reload the level when prefabs/ changes on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle("mischief link")
	ebiten.SetTPS(common.TickRate)

	game, err := NewGame(*configName, *debug)
	if err != nil {
		log.Fatal(err)
	}
	if *watch {
		if err := game.Watch(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")); err != nil {
			log.Printf("hot reload disabled: %v", err)
		}
	}

	err = ebiten.RunGame(game)
	_ = game.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
