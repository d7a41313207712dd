package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "map in levels/ (basename, .map optional)")
	watch := flag.Bool("watch", false, "reload prefabs/ when their files change")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal("load game spec", "err", err)
	}
	setupLogging(spec.LogLevel, *debug)

	if *levelName != "" {
		spec.Level = levelFile(*levelName)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowSize(spec.Width, spec.Height)
	ebiten.SetWindowTitle(spec.Title)

	game, err := NewGame(spec, Options{Debug: *debug, Watch: *watch})
	if err != nil {
		log.Fatal("start game", "err", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run game", "err", err)
	}
}

func setupLogging(level string, debug bool) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			log.Warn("unknown log level, using info", "level", level)
		} else {
			lvl = parsed
		}
	}
	if debug {
		lvl = log.DebugLevel
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "platformer",
	}))
}

func levelFile(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".map"
	}
	return name
}
